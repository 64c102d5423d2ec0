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

type CreateTransactionInput struct {
	Description string     `json:"description" binding:"required"`
	Amount      float64    `json:"amount" binding:"required,min=0"`
	Type        string     `json:"type" binding:"required,oneof=Income Expense"`
	Category    string     `json:"category"`
	Date        *time.Time `json:"date"`
}

type UpdateTransactionInput struct {
	Description *string    `json:"description"`
	Amount      *float64   `json:"amount" binding:"omitempty,min=0"`
	Type        *string    `json:"type" binding:"omitempty,oneof=Income Expense"`
	Category    *string    `json:"category"`
	Date        *time.Time `json:"date"`
}

// CreateTransaction records an income or expense entry
func CreateTransaction(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var input CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	txn := models.Transaction{
		UserEmail:   tenantKey,
		Description: input.Description,
		Amount:      input.Amount,
		Type:        input.Type,
		Category:    input.Category,
		Date:        input.Date,
	}
	if txn.Category == "" {
		txn.Category = "General"
	}

	if err := config.DB.Create(&txn).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, txn)
}

// ImportTransactions accepts loosely-shaped records exported from
// older books and normalizes each into a strict transaction. Records
// never fail individually; malformed fields fall back to defaults.
func ImportTransactions(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var raw []map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	now := time.Now()
	imported := make([]models.Transaction, 0, len(raw))
	for _, record := range raw {
		txn := stats.NormalizeTransaction(record, now)
		txn.UserEmail = tenantKey
		imported = append(imported, txn)
	}

	if len(imported) == 0 {
		c.JSON(http.StatusOK, gin.H{"imported": 0})
		return
	}

	if err := config.DB.Create(&imported).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to import transactions")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"imported": len(imported)})
}

// GetTransactions retrieves all transactions for the tenant
func GetTransactions(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var transactions []models.Transaction
	if err := config.DB.Where("user_email = ?", tenantKey).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// UpdateTransaction updates an existing transaction
func UpdateTransaction(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	txnUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	var input UpdateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var txn models.Transaction
	if err := config.DB.Where("user_email = ? AND id = ?", tenantKey, txnUUID).
		First(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Description != nil {
		txn.Description = *input.Description
	}
	if input.Amount != nil {
		txn.Amount = *input.Amount
	}
	if input.Type != nil {
		txn.Type = *input.Type
	}
	if input.Category != nil {
		txn.Category = *input.Category
	}
	if input.Date != nil {
		txn.Date = input.Date
	}

	if err := config.DB.Save(&txn).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, txn)
}

// DeleteTransaction soft deletes a transaction
func DeleteTransaction(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	txnUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	var txn models.Transaction
	if err := config.DB.Where("user_email = ? AND id = ?", tenantKey, txnUUID).
		First(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&txn).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
