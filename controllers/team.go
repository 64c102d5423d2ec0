package controllers

import (
	"errors"
	"net/http"

	"fashiontally-backend/config"
	"fashiontally-backend/middleware"
	"fashiontally-backend/models"
	"fashiontally-backend/tenancy"
	"fashiontally-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InviteTeamMemberInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
}

// InviteTeamMember creates a sub-account whose data operations resolve
// to the inviting admin's tenant. Only main admins may invite; a team
// member inviting further members would re-root the chain, so it is
// rejected outright.
func InviteTeamMember(c *gin.Context) {
	account := currentAccount(c)
	if account == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Account not found in context")
		return
	}

	if !tenancy.IsMainAdmin(account) {
		utils.RespondWithError(c, http.StatusForbidden, "Only the main admin can invite team members")
		return
	}

	var input InviteTeamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existingUser models.User
	result := config.DB.Where("email = ?", input.Email).First(&existingUser)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	member := models.User{
		Email:     input.Email,
		Name:      input.Name,
		Password:  input.Password, // Hashed in BeforeCreate hook
		Phone:     input.Phone,
		IsAdmin:   true,
		InvitedBy: tenancy.ResolveTenantKey(account),
		IsActive:  true,
	}

	if err := config.DB.Create(&member).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create team member")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        member.ID,
		"email":     member.Email,
		"name":      member.Name,
		"invitedBy": member.InvitedBy,
	})
}

// GetTeamMembers lists the sub-accounts bound to this tenant.
func GetTeamMembers(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var members []models.User
	if err := config.DB.Where("invited_by = ?", tenantKey).Find(&members).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve team members")
		return
	}

	out := make([]gin.H, 0, len(members))
	for _, m := range members {
		out = append(out, gin.H{
			"id":        m.ID,
			"email":     m.Email,
			"name":      m.Name,
			"phone":     m.Phone,
			"isActive":  m.IsActive,
			"lastLogin": m.LastLogin,
		})
	}

	c.JSON(http.StatusOK, out)
}

// RemoveTeamMember deactivates a sub-account of this tenant.
func RemoveTeamMember(c *gin.Context) {
	account := currentAccount(c)
	if account == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Account not found in context")
		return
	}
	if !tenancy.IsMainAdmin(account) {
		utils.RespondWithError(c, http.StatusForbidden, "Only the main admin can remove team members")
		return
	}

	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	var member models.User
	if err := config.DB.Where("id = ? AND invited_by = ?", memberID, tenantKey).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Team member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Model(&member).Update("is_active", false).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to remove team member")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team member removed"})
}

func currentAccount(c *gin.Context) *tenancy.Account {
	v, exists := c.Get("account")
	if !exists {
		return nil
	}
	account, ok := v.(*tenancy.Account)
	if !ok {
		return nil
	}
	return account
}
