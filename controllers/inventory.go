package controllers

import (
	"errors"
	"net/http"

	"fashiontally-backend/config"
	"fashiontally-backend/metrics"
	"fashiontally-backend/middleware"
	"fashiontally-backend/models"
	"fashiontally-backend/stats"
	"fashiontally-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateInventoryItemInput struct {
	Name         string  `json:"name" binding:"required"`
	SKU          string  `json:"sku"`
	Category     string  `json:"category"`
	SupplierName string  `json:"supplierName"`
	Quantity     int     `json:"quantity" binding:"min=0"`
	Unit         string  `json:"unit"`
	Price        float64 `json:"price" binding:"min=0"`
	ReorderPoint int     `json:"reorderPoint" binding:"min=0"`
}

type UpdateInventoryItemInput struct {
	Name         *string  `json:"name"`
	SKU          *string  `json:"sku"`
	Category     *string  `json:"category"`
	SupplierName *string  `json:"supplierName"`
	Quantity     *int     `json:"quantity" binding:"omitempty,min=0"`
	Unit         *string  `json:"unit"`
	Price        *float64 `json:"price" binding:"omitempty,min=0"`
	ReorderPoint *int     `json:"reorderPoint" binding:"omitempty,min=0"`
}

// CreateInventoryItem creates a stock item. Status is classified here
// and stored, never derived on read.
func CreateInventoryItem(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var input CreateInventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item := models.InventoryItem{
		UserEmail:    tenantKey,
		Name:         input.Name,
		SKU:          input.SKU,
		Category:     input.Category,
		SupplierName: input.SupplierName,
		Quantity:     input.Quantity,
		Unit:         input.Unit,
		Price:        input.Price,
		ReorderPoint: input.ReorderPoint,
	}
	if item.Category == "" {
		item.Category = "General"
	}
	if item.Unit == "" {
		item.Unit = "pcs"
	}
	item.Status = stats.ClassifyStock(item.Quantity, item.ReorderPoint)

	if err := config.DB.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create inventory item")
		return
	}

	refreshLowStockGauge(tenantKey)

	c.JSON(http.StatusCreated, item)
}

// GetInventory retrieves all stock items for the tenant, plus the
// low-stock alert count for the banner badge.
func GetInventory(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var items []models.InventoryItem
	if err := config.DB.Where("user_email = ?", tenantKey).
		Order("name ASC").
		Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve inventory")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":         items,
		"lowStockCount": stats.LowStockAlertCount(items),
	})
}

// GetInventoryItem retrieves a specific stock item by ID
func GetInventoryItem(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	var item models.InventoryItem
	if err := config.DB.Where("user_email = ? AND id = ?", tenantKey, itemUUID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Inventory item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateInventoryItem updates a stock item and reclassifies its status
// whenever quantity or reorder point changed.
func UpdateInventoryItem(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	var input UpdateInventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var item models.InventoryItem
	if err := config.DB.Where("user_email = ? AND id = ?", tenantKey, itemUUID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Inventory item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.SKU != nil {
		item.SKU = *input.SKU
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.SupplierName != nil {
		item.SupplierName = *input.SupplierName
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.Price != nil {
		item.Price = *input.Price
	}

	if input.Quantity != nil || input.ReorderPoint != nil {
		if input.Quantity != nil {
			item.Quantity = *input.Quantity
		}
		if input.ReorderPoint != nil {
			item.ReorderPoint = *input.ReorderPoint
		}
		item.Status = stats.ClassifyStock(item.Quantity, item.ReorderPoint)
	}

	if err := config.DB.Save(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update inventory item")
		return
	}

	refreshLowStockGauge(tenantKey)

	c.JSON(http.StatusOK, item)
}

// DeleteInventoryItem soft deletes a stock item
func DeleteInventoryItem(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	var item models.InventoryItem
	if err := config.DB.Where("user_email = ? AND id = ?", tenantKey, itemUUID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Inventory item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete inventory item")
		return
	}

	refreshLowStockGauge(tenantKey)

	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully"})
}

func refreshLowStockGauge(tenantKey string) {
	var items []models.InventoryItem
	if err := config.DB.Where("user_email = ?", tenantKey).Find(&items).Error; err != nil {
		return
	}
	metrics.LowStockGauge.WithLabelValues(tenantKey).Set(float64(stats.LowStockAlertCount(items)))
}
