package controllers

import (
	"errors"
	"net/http"

	"fashiontally-backend/config"
	"fashiontally-backend/middleware"
	"fashiontally-backend/models"
	"fashiontally-backend/stats"
	"fashiontally-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateFeedbackInput struct {
	ClientName    string `json:"clientName" binding:"required"`
	ClientEmail   string `json:"clientEmail"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment"`
	ProductName   string `json:"productName"`
	OrderNumber   string `json:"orderNumber"`
	InvoiceNumber string `json:"invoiceNumber"`
	IsPublic      bool   `json:"isPublic"`
}

type ReplyFeedbackInput struct {
	Reply string `json:"reply" binding:"required"`
}

// CreateFeedback records a client review
func CreateFeedback(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var input CreateFeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	feedback := models.Feedback{
		UserEmail:     tenantKey,
		ClientName:    input.ClientName,
		ClientEmail:   input.ClientEmail,
		Rating:        input.Rating,
		Comment:       input.Comment,
		ProductName:   input.ProductName,
		OrderNumber:   input.OrderNumber,
		InvoiceNumber: input.InvoiceNumber,
		Status:        "New",
		IsPublic:      input.IsPublic,
	}

	if err := config.DB.Create(&feedback).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create feedback")
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

// GetFeedback retrieves all feedback for the tenant
func GetFeedback(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var feedback []models.Feedback
	if err := config.DB.Where("user_email = ?", tenantKey).
		Order("created_at DESC").
		Find(&feedback).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve feedback")
		return
	}

	c.JSON(http.StatusOK, feedback)
}

// GetFeedbackStats computes the review summary for the tenant
func GetFeedbackStats(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var feedback []models.Feedback
	if err := config.DB.Where("user_email = ?", tenantKey).Find(&feedback).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve feedback")
		return
	}

	c.JSON(http.StatusOK, stats.ComputeFeedbackStats(feedback))
}

// ReplyFeedback attaches a shop reply to a review and marks it replied
func ReplyFeedback(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	feedbackUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid feedback ID format")
		return
	}

	var input ReplyFeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var feedback models.Feedback
	if err := config.DB.Where("user_email = ? AND id = ?", tenantKey, feedbackUUID).
		First(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Feedback not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	feedback.Reply = input.Reply
	feedback.Status = "Replied"

	if err := config.DB.Save(&feedback).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save reply")
		return
	}

	c.JSON(http.StatusOK, feedback)
}

// DeleteFeedback soft deletes a review
func DeleteFeedback(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	feedbackUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid feedback ID format")
		return
	}

	var feedback models.Feedback
	if err := config.DB.Where("user_email = ? AND id = ?", tenantKey, feedbackUUID).
		First(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Feedback not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&feedback).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted successfully"})
}
