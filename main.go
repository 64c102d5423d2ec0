package main

import (
	"fmt"
	"os"

	"fashiontally-backend/config"
	"fashiontally-backend/models"
	"fashiontally-backend/routes"
	"fashiontally-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}
	if err := config.InitLogger(); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Order{},
		&models.OrderItem{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.InventoryItem{},
		&models.Transaction{},
		&models.Appointment{},
		&models.LoyaltyMember{},
		&models.Feedback{},
		&models.ReminderLog{},
	)
}

func main() {
	defer config.Log.Sync()

	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
