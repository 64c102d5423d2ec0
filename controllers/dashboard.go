package controllers

import (
	"net/http"
	"time"

	"fashiontally-backend/config"
	"fashiontally-backend/middleware"
	"fashiontally-backend/models"
	"fashiontally-backend/stats"
	"fashiontally-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview returns the headline figures for the dashboard:
// entity counts, this month's financials and the low-stock alert badge.
// Rows are fetched tenant-scoped and everything derived runs through
// the pure stats transforms.
func GetDashboardOverview(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	var totalClients int64
	config.DB.Model(&models.Client{}).Where("user_email = ? AND deleted_at IS NULL", tenantKey).Count(&totalClients)

	var activeOrders int64
	config.DB.Model(&models.Order{}).Where("user_email = ? AND status = ? AND deleted_at IS NULL", tenantKey, "Active").Count(&activeOrders)

	var totalInvoices int64
	config.DB.Model(&models.Invoice{}).Where("user_email = ? AND deleted_at IS NULL", tenantKey).Count(&totalInvoices)

	var unpaidInvoices int64
	config.DB.Model(&models.Invoice{}).Where("user_email = ? AND status != ? AND deleted_at IS NULL", tenantKey, "Paid").Count(&unpaidInvoices)

	var upcomingAppointments int64
	config.DB.Model(&models.Appointment{}).
		Where("user_email = ? AND status = ? AND date >= ? AND deleted_at IS NULL",
			tenantKey, "Scheduled", utils.BeginningOfDay(time.Now())).
		Count(&upcomingAppointments)

	var transactions []models.Transaction
	if err := config.DB.Where("user_email = ?", tenantKey).Find(&transactions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	var items []models.InventoryItem
	if err := config.DB.Where("user_email = ?", tenantKey).Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve inventory")
		return
	}

	financials := stats.ComputeDashboardStats(transactions, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"totalClients":         totalClients,
		"activeOrders":         activeOrders,
		"totalInvoices":        totalInvoices,
		"unpaidInvoices":       unpaidInvoices,
		"upcomingAppointments": upcomingAppointments,
		"financials":           financials,
		"lowStockCount":        stats.LowStockAlertCount(items),
	})
}

// GetDashboardChart returns the time-bucketed income/expense series
// for the finance chart. An empty dataset still yields the full bucket
// skeleton so the chart renders a zero baseline.
func GetDashboardChart(c *gin.Context) {
	tenantKey, ok := middleware.TenantKey(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Tenant not resolved")
		return
	}

	rangeMode := c.DefaultQuery("range", stats.RangeAll)
	switch rangeMode {
	case stats.RangeThisMonth, stats.RangeLast30, stats.RangeLast90, stats.RangeAll:
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid range")
		return
	}

	var transactions []models.Transaction
	if err := config.DB.Where("user_email = ?", tenantKey).Find(&transactions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"range":   rangeMode,
		"buckets": stats.BuildChartSeries(transactions, rangeMode, time.Now()),
	})
}
