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

type CreateLoyaltyMemberInput struct {
	Name   string   `json:"name" binding:"required"`
	Email  string   `json:"email"`
	Level  string   `json:"level" binding:"omitempty,oneof=Bronze Silver Gold Platinum"`
	Points int      `json:"points" binding:"min=0"`
	Tags   []string `json:"tags"`
}

type UpdateLoyaltyMemberInput struct {
	Name       *string   `json:"name"`
	Email      *string   `json:"email"`
	Level      *string   `json:"level" binding:"omitempty,oneof=Bronze Silver Gold Platinum"`
	Points     *int      `json:"points" binding:"omitempty,min=0"`
	TotalSpent *float64  `json:"totalSpent" binding:"omitempty,min=0"`
	Tags       *[]string `json:"tags"`
}

// CreateLoyaltyMember enrolls a client in the loyalty program
func CreateLoyaltyMember(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var input CreateLoyaltyMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	now := time.Now()
	member := models.LoyaltyMember{
		UserEmail:    tenantKey,
		Name:         input.Name,
		Email:        input.Email,
		Level:        input.Level,
		Points:       input.Points,
		Tags:         models.StringArray(input.Tags),
		LastActivity: &now,
	}
	if member.Level == "" {
		member.Level = "Bronze"
	}
	if member.Tags == nil {
		member.Tags = models.StringArray{}
	}

	if err := config.DB.Create(&member).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create loyalty member")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"member": member,
		"tier":   stats.TierMeta(member.Level),
	})
}

// GetLoyaltyMembers lists members with their tier display metadata
func GetLoyaltyMembers(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var members []models.LoyaltyMember
	if err := config.DB.Where("user_email = ?", tenantKey).
		Order("points DESC").
		Find(&members).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve loyalty members")
		return
	}

	out := make([]gin.H, 0, len(members))
	for _, m := range members {
		out = append(out, gin.H{
			"member": m,
			"tier":   stats.TierMeta(m.Level),
		})
	}

	c.JSON(http.StatusOK, out)
}

// UpdateLoyaltyMember updates a member's profile, level or points
func UpdateLoyaltyMember(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	memberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	var input UpdateLoyaltyMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var member models.LoyaltyMember
	if err := config.DB.Where("user_email = ? AND id = ?", tenantKey, memberUUID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Loyalty member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.Email != nil {
		member.Email = *input.Email
	}
	if input.Level != nil {
		member.Level = *input.Level
	}
	if input.Points != nil {
		member.Points = *input.Points
	}
	if input.TotalSpent != nil {
		member.TotalSpent = *input.TotalSpent
	}
	if input.Tags != nil {
		member.Tags = models.StringArray(*input.Tags)
	}

	now := time.Now()
	member.LastActivity = &now

	if err := config.DB.Save(&member).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update loyalty member")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"member": member,
		"tier":   stats.TierMeta(member.Level),
	})
}

// DeleteLoyaltyMember soft deletes a loyalty member
func DeleteLoyaltyMember(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	memberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	var member models.LoyaltyMember
	if err := config.DB.Where("user_email = ? AND id = ?", tenantKey, memberUUID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Loyalty member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&member).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete loyalty member")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Loyalty member deleted successfully"})
}
