// controllers/order.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"fashiontally-backend/config"
	"fashiontally-backend/middleware"
	"fashiontally-backend/models"
	"fashiontally-backend/stats"
	"fashiontally-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderItemInput struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"min=0"`
}

type CreateOrderInput struct {
	Name            string             `json:"name" binding:"required"`
	Category        string             `json:"category"`
	BasePrice       float64            `json:"basePrice" binding:"min=0"`
	AdditionalItems []OrderItemInput   `json:"additionalItems"`
	DepositPaid     float64            `json:"depositPaid" binding:"min=0"`
	DueDate         *time.Time         `json:"dueDate"`
	ClientID        *uuid.UUID         `json:"clientId"`
	ClientName      string             `json:"clientName"`
	ClientEmail     string             `json:"clientEmail"`
	ClientPhone     string             `json:"clientPhone"`
	Measurements    map[string]float64 `json:"measurements"`
}

type UpdateOrderInput struct {
	Name            *string             `json:"name"`
	Category        *string             `json:"category"`
	Status          *string             `json:"status" binding:"omitempty,oneof=Active Archived"`
	BasePrice       *float64            `json:"basePrice" binding:"omitempty,min=0"`
	AdditionalItems *[]OrderItemInput   `json:"additionalItems"`
	DepositPaid     *float64            `json:"depositPaid" binding:"omitempty,min=0"`
	DueDate         *time.Time          `json:"dueDate"`
	Measurements    *map[string]float64 `json:"measurements"`
}

// CreateOrder creates a new order. Price and BalanceDue are computed
// here and stored; reads trust the stored values.
func CreateOrder(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order := models.Order{
		UserEmail:   tenantKey,
		Name:        input.Name,
		Category:    input.Category,
		Status:      "Active",
		BasePrice:   input.BasePrice,
		DepositPaid: input.DepositPaid,
		DueDate:     input.DueDate,
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
		ClientPhone: input.ClientPhone,
	}
	if order.Category == "" {
		order.Category = "General"
	}

	// Copy client contact fields from the client record when linked
	if input.ClientID != nil {
		var client models.Client
		if err := config.DB.Where("user_email = ? AND id = ?", tenantKey, *input.ClientID).
			First(&client).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		order.ClientID = &client.ID
		order.ClientName = client.Name
		order.ClientEmail = client.Email
		order.ClientPhone = client.Phone
	}

	order.Measurements = models.JSONB{}
	for k, v := range input.Measurements {
		order.Measurements[k] = v
	}

	for _, item := range input.AdditionalItems {
		order.AdditionalItems = append(order.AdditionalItems, models.OrderItem{
			Name:  item.Name,
			Price: item.Price,
		})
	}

	totals := stats.ComputeOrderTotals(order.BasePrice, order.AdditionalItems, order.DepositPaid)
	order.Price = totals.TotalAmount
	order.BalanceDue = totals.BalanceDue

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	// Maintain the client's denormalized order count
	if order.ClientID != nil {
		if err := tx.Model(&models.Client{}).Where("id = ?", *order.ClientID).
			Update("total_orders", gorm.Expr("total_orders + ?", 1)).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client stats")
			return
		}
	}

	tx.Commit()

	c.JSON(http.StatusCreated, order)
}

// GetOrders retrieves all orders for the tenant, with the display
// status alongside the stored one.
func GetOrders(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var orders []models.Order
	if err := config.DB.Preload("AdditionalItems").
		Where("user_email = ?", tenantKey).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	out := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		out = append(out, gin.H{
			"order":         o,
			"displayStatus": stats.OrderDisplayStatus(o.Status),
		})
	}

	c.JSON(http.StatusOK, out)
}

// GetOrder retrieves a specific order by ID
func GetOrder(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var order models.Order
	if err := config.DB.Preload("AdditionalItems").
		Where("user_email = ? AND id = ?", tenantKey, orderUUID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":         order,
		"displayStatus": stats.OrderDisplayStatus(order.Status),
	})
}

// UpdateOrder updates an order and recomputes its stored totals when
// any money field changed.
func UpdateOrder(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var input UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var order models.Order
	if err := tx.Preload("AdditionalItems").
		Where("user_email = ? AND id = ?", tenantKey, orderUUID).
		First(&order).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		order.Name = *input.Name
	}
	if input.Category != nil {
		order.Category = *input.Category
	}
	if input.Status != nil {
		order.Status = *input.Status
	}
	if input.BasePrice != nil {
		order.BasePrice = *input.BasePrice
	}
	if input.DepositPaid != nil {
		order.DepositPaid = *input.DepositPaid
	}
	if input.DueDate != nil {
		order.DueDate = input.DueDate
	}
	if input.Measurements != nil {
		order.Measurements = models.JSONB{}
		for k, v := range *input.Measurements {
			order.Measurements[k] = v
		}
	}

	if input.AdditionalItems != nil {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing items")
			return
		}
		order.AdditionalItems = nil
		for _, item := range *input.AdditionalItems {
			order.AdditionalItems = append(order.AdditionalItems, models.OrderItem{
				OrderID: order.ID,
				Name:    item.Name,
				Price:   item.Price,
			})
		}
	}

	if input.BasePrice != nil || input.AdditionalItems != nil || input.DepositPaid != nil {
		totals := stats.ComputeOrderTotals(order.BasePrice, order.AdditionalItems, order.DepositPaid)
		order.Price = totals.TotalAmount
		order.BalanceDue = totals.BalanceDue
	}

	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update order")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, order)
}

// DeleteOrder soft deletes an order
func DeleteOrder(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var order models.Order
	if err := tx.Where("user_email = ? AND id = ?", tenantKey, orderUUID).
		First(&order).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete order items")
		return
	}

	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	if order.ClientID != nil {
		if err := tx.Model(&models.Client{}).Where("id = ?", *order.ClientID).
			Update("total_orders", gorm.Expr("total_orders - ?", 1)).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client stats")
			return
		}
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
