package routes

import (
	"os"
	"strings"

	"fashiontally-backend/config"
	"fashiontally-backend/controllers"
	"fashiontally-backend/metrics"
	"fashiontally-backend/middleware"
	"fashiontally-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	allowedOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())
	r.Use(metrics.Middleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	api.Use(middleware.Tenant())
	{
		// Team routes
		team := api.Group("/team")
		{
			team.POST("", controllers.InviteTeamMember)
			team.GET("", controllers.GetTeamMembers)
			team.DELETE("/:id", controllers.RemoveTeamMember)
		}

		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		// Order routes
		orders := api.Group("/orders")
		{
			orders.POST("", controllers.CreateOrder)
			orders.GET("", controllers.GetOrders)
			orders.GET("/:id", controllers.GetOrder)
			orders.PUT("/:id", controllers.UpdateOrder)
			orders.DELETE("/:id", controllers.DeleteOrder)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("", controllers.CreateInvoice)
			invoices.GET("", controllers.GetInvoices)
			invoices.GET("/:id", controllers.GetInvoice)
			invoices.PUT("/:id", controllers.UpdateInvoice)
			invoices.DELETE("/:id", controllers.DeleteInvoice)
		}

		// Inventory routes
		inventory := api.Group("/inventory")
		{
			inventory.POST("", controllers.CreateInventoryItem)
			inventory.GET("", controllers.GetInventory)
			inventory.GET("/:id", controllers.GetInventoryItem)
			inventory.PUT("/:id", controllers.UpdateInventoryItem)
			inventory.DELETE("/:id", controllers.DeleteInventoryItem)
		}

		// Transaction routes
		transactions := api.Group("/transactions")
		{
			transactions.POST("", controllers.CreateTransaction)
			transactions.POST("/import", controllers.ImportTransactions)
			transactions.GET("", controllers.GetTransactions)
			transactions.PUT("/:id", controllers.UpdateTransaction)
			transactions.DELETE("/:id", controllers.DeleteTransaction)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.GET("", controllers.GetAppointments)
			appointments.PUT("/:id", controllers.UpdateAppointment)
			appointments.DELETE("/:id", controllers.DeleteAppointment)
		}

		// Loyalty routes
		loyalty := api.Group("/loyalty")
		{
			loyalty.POST("", controllers.CreateLoyaltyMember)
			loyalty.GET("", controllers.GetLoyaltyMembers)
			loyalty.PUT("/:id", controllers.UpdateLoyaltyMember)
			loyalty.DELETE("/:id", controllers.DeleteLoyaltyMember)
		}

		// Feedback routes
		feedback := api.Group("/feedback")
		{
			feedback.POST("", controllers.CreateFeedback)
			feedback.GET("", controllers.GetFeedback)
			feedback.GET("/stats", controllers.GetFeedbackStats)
			feedback.POST("/:id/reply", controllers.ReplyFeedback)
			feedback.DELETE("/:id", controllers.DeleteFeedback)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
		api.GET("/dashboard/chart", controllers.GetDashboardChart)
	}

	return r
}
