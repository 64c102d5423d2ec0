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

type CreateAppointmentInput struct {
	ClientName  string    `json:"clientName" binding:"required"`
	ClientPhone string    `json:"clientPhone"`
	Date        time.Time `json:"date" binding:"required"`
	Time        string    `json:"time"`
	Purpose     string    `json:"purpose"`
	Duration    int       `json:"duration" binding:"omitempty,min=5"`
	Location    string    `json:"location"`
}

type UpdateAppointmentInput struct {
	ClientName  *string    `json:"clientName"`
	ClientPhone *string    `json:"clientPhone"`
	Date        *time.Time `json:"date"`
	Time        *string    `json:"time"`
	Purpose     *string    `json:"purpose"`
	Duration    *int       `json:"duration" binding:"omitempty,min=5"`
	Status      *string    `json:"status" binding:"omitempty,oneof=Scheduled Completed Cancelled"`
	Location    *string    `json:"location"`
}

// CreateAppointment schedules a new appointment
func CreateAppointment(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appointment := models.Appointment{
		UserEmail:   tenantKey,
		ClientName:  input.ClientName,
		ClientPhone: input.ClientPhone,
		Date:        input.Date,
		Time:        input.Time,
		Purpose:     input.Purpose,
		Duration:    input.Duration,
		Status:      "Scheduled",
		Location:    input.Location,
	}
	if appointment.Duration == 0 {
		appointment.Duration = 30
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments retrieves all appointments for the tenant with their
// display status labels
func GetAppointments(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var appointments []models.Appointment
	if err := config.DB.Where("user_email = ?", tenantKey).
		Order("date ASC").
		Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	out := make([]gin.H, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, gin.H{
			"appointment":   a,
			"displayStatus": stats.AppointmentDisplayStatus(a.Status),
		})
	}

	c.JSON(http.StatusOK, out)
}

// UpdateAppointment updates an existing appointment
func UpdateAppointment(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("user_email = ? AND id = ?", tenantKey, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ClientName != nil {
		appointment.ClientName = *input.ClientName
	}
	if input.ClientPhone != nil {
		appointment.ClientPhone = *input.ClientPhone
	}
	if input.Date != nil {
		appointment.Date = *input.Date
	}
	if input.Time != nil {
		appointment.Time = *input.Time
	}
	if input.Purpose != nil {
		appointment.Purpose = *input.Purpose
	}
	if input.Duration != nil {
		appointment.Duration = *input.Duration
	}
	if input.Status != nil {
		appointment.Status = *input.Status
	}
	if input.Location != nil {
		appointment.Location = *input.Location
	}

	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment soft deletes an appointment
func DeleteAppointment(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("user_email = ? AND id = ?", tenantKey, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
