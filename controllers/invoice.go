// controllers/invoice.go
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

// InvoiceItemInput defines the structure for an invoice line item
type InvoiceItemInput struct {
	Description     string     `json:"description" binding:"required"`
	Quantity        int        `json:"quantity" binding:"min=1"`
	Price           float64    `json:"price" binding:"min=0"`
	InventoryItemID *uuid.UUID `json:"inventoryItemId"`
}

// CreateInvoiceInput defines the expected JSON structure for creating an invoice
type CreateInvoiceInput struct {
	ClientID        *uuid.UUID         `json:"clientId"`
	ClientName      string             `json:"clientName"`
	ClientEmail     string             `json:"clientEmail"`
	ClientPhone     string             `json:"clientPhone"`
	Items           []InvoiceItemInput `json:"items" binding:"required,min=1"`
	DiscountPercent float64            `json:"discountPercent" binding:"min=0"`
	TaxRatePercent  float64            `json:"taxRatePercent" binding:"min=0"`
	Status          string             `json:"status" binding:"omitempty,oneof=Paid Unpaid PartiallyPaid"`
	PaidAmount      float64            `json:"paidAmount" binding:"min=0"`
	DueDate         *time.Time         `json:"dueDate"`
	Notes           string             `json:"notes"`
}

// UpdateInvoiceInput defines the expected JSON structure for updating an invoice
type UpdateInvoiceInput struct {
	Items           *[]InvoiceItemInput `json:"items"`
	DiscountPercent *float64            `json:"discountPercent" binding:"omitempty,min=0"`
	TaxRatePercent  *float64            `json:"taxRatePercent" binding:"omitempty,min=0"`
	Status          *string             `json:"status" binding:"omitempty,oneof=Paid Unpaid PartiallyPaid"`
	PaidAmount      *float64            `json:"paidAmount" binding:"omitempty,min=0"`
	DueDate         *time.Time          `json:"dueDate"`
	Notes           *string             `json:"notes"`
}

// CreateInvoice creates a new invoice. Totals are computed once here
// and stored; the invoice write, inventory draw-down and client spend
// update run in a single transaction so a crash can't leave an invoice
// without its side effects.
func CreateInvoice(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	invoice := models.Invoice{
		UserEmail:       tenantKey,
		ClientName:      input.ClientName,
		ClientEmail:     input.ClientEmail,
		ClientPhone:     input.ClientPhone,
		DiscountPercent: input.DiscountPercent,
		TaxRatePercent:  input.TaxRatePercent,
		Status:          input.Status,
		PaidAmount:      input.PaidAmount,
		DueDate:         input.DueDate,
		CreatedDate:     time.Now(),
		Notes:           input.Notes,
	}
	if invoice.Status == "" {
		invoice.Status = "Unpaid"
	}

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
		invoice.ClientID = &client.ID
		invoice.ClientName = client.Name
		invoice.ClientEmail = client.Email
		invoice.ClientPhone = client.Phone
	}

	if invoice.ClientName == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Client name is required")
		return
	}

	for _, item := range input.Items {
		invoice.Items = append(invoice.Items, models.InvoiceItem{
			Description:     item.Description,
			Quantity:        item.Quantity,
			Price:           item.Price,
			InventoryItemID: item.InventoryItemID,
		})
	}

	totals := stats.ComputeInvoiceTotals(invoice.Items, invoice.DiscountPercent, invoice.TaxRatePercent)
	invoice.Subtotal = totals.Subtotal
	invoice.DiscountAmount = totals.DiscountAmount
	invoice.TaxAmount = totals.TaxAmount
	invoice.Amount = totals.Total

	invoice.InvoiceNumber = "INV-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6)

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	// Draw down stock for line items linked to inventory, reclassifying
	// status from the new quantity
	for _, item := range invoice.Items {
		if item.InventoryItemID == nil {
			continue
		}
		var stock models.InventoryItem
		if err := tx.Where("user_email = ? AND id = ?", tenantKey, *item.InventoryItemID).
			First(&stock).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Inventory item not found: "+item.InventoryItemID.String())
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}

		stock.Quantity -= item.Quantity
		stock.Status = stats.ClassifyStock(stock.Quantity, stock.ReorderPoint)

		if err := tx.Save(&stock).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update inventory")
			return
		}
	}

	// Maintain the client's denormalized spend from what was paid
	if invoice.ClientID != nil && invoice.PaidAmount > 0 {
		if err := tx.Model(&models.Client{}).Where("id = ?", *invoice.ClientID).
			Update("total_spent", gorm.Expr("total_spent + ?", invoice.PaidAmount)).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client stats")
			return
		}
	}

	tx.Commit()

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoices retrieves all invoices for the tenant
func GetInvoices(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var invoices []models.Invoice
	if err := config.DB.Preload("Items").
		Where("user_email = ?", tenantKey).
		Order("created_date DESC").
		Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// GetInvoice retrieves a specific invoice by ID. Stored totals are
// returned verbatim, never recomputed.
func GetInvoice(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var invoice models.Invoice
	if err := config.DB.Preload("Items").
		Where("user_email = ? AND id = ?", tenantKey, invoiceUUID).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice updates an existing invoice, recomputing stored totals
// when items, discount or tax changed.
func UpdateInvoice(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var input UpdateInvoiceInput
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

	var invoice models.Invoice
	if err := tx.Preload("Items").
		Where("user_email = ? AND id = ?", tenantKey, invoiceUUID).
		First(&invoice).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	oldPaid := invoice.PaidAmount

	if input.Items != nil {
		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing items")
			return
		}
		invoice.Items = nil
		for _, item := range *input.Items {
			invoice.Items = append(invoice.Items, models.InvoiceItem{
				InvoiceID:       invoice.ID,
				Description:     item.Description,
				Quantity:        item.Quantity,
				Price:           item.Price,
				InventoryItemID: item.InventoryItemID,
			})
		}
	}

	if input.DiscountPercent != nil {
		invoice.DiscountPercent = *input.DiscountPercent
	}
	if input.TaxRatePercent != nil {
		invoice.TaxRatePercent = *input.TaxRatePercent
	}

	if input.Items != nil || input.DiscountPercent != nil || input.TaxRatePercent != nil {
		totals := stats.ComputeInvoiceTotals(invoice.Items, invoice.DiscountPercent, invoice.TaxRatePercent)
		invoice.Subtotal = totals.Subtotal
		invoice.DiscountAmount = totals.DiscountAmount
		invoice.TaxAmount = totals.TaxAmount
		invoice.Amount = totals.Total
	}

	if input.Status != nil {
		invoice.Status = *input.Status
	}
	if input.PaidAmount != nil {
		invoice.PaidAmount = *input.PaidAmount
	}
	if input.DueDate != nil {
		invoice.DueDate = input.DueDate
	}
	if input.Notes != nil {
		invoice.Notes = *input.Notes
	}

	if err := tx.Save(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	// Keep the client's denormalized spend in step with payment changes
	if invoice.ClientID != nil && invoice.PaidAmount != oldPaid {
		if err := tx.Model(&models.Client{}).Where("id = ?", *invoice.ClientID).
			Update("total_spent", gorm.Expr("total_spent + ?", invoice.PaidAmount-oldPaid)).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client stats")
			return
		}
	}

	tx.Commit()

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice soft deletes an invoice and rolls its paid amount out
// of the client's spend.
func DeleteInvoice(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var invoice models.Invoice
	if err := tx.Where("user_email = ? AND id = ?", tenantKey, invoiceUUID).
		First(&invoice).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice items")
		return
	}

	if err := tx.Delete(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}

	if invoice.ClientID != nil && invoice.PaidAmount > 0 {
		if err := tx.Model(&models.Client{}).Where("id = ?", *invoice.ClientID).
			Update("total_spent", gorm.Expr("total_spent - ?", invoice.PaidAmount)).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client stats")
			return
		}
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}
