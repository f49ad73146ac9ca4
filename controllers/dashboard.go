package controllers

import (
	"net/http"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardOverview struct {
	TotalCustomers       int64                `json:"totalCustomers"`
	TotalStaff           int64                `json:"totalStaff"`
	TodayReservations    []models.Reservation `json:"todayReservations"`
	HighRiskReservations []models.Reservation `json:"highRiskReservations"`
}

type DashboardController struct {
	db *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{db: db}
}

// GetDashboardOverview summarises today's bookings and flagged customers
func (ctrl *DashboardController) GetDashboardOverview(c *gin.Context) {
	var overview DashboardOverview

	ctrl.db.Model(&models.Customer{}).Count(&overview.TotalCustomers)
	ctrl.db.Model(&models.Staff{}).Count(&overview.TotalStaff)

	dayStart := utils.BeginningOfDay(time.Now())
	dayEnd := dayStart.AddDate(0, 0, 1)

	err := ctrl.db.Preload("Customer").Preload("Staff").
		Where("date_time >= ? AND date_time < ?", dayStart, dayEnd).
		Order("date_time asc").
		Find(&overview.TodayReservations).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	// Upcoming confirmed bookings flagged HIGH at booking time
	err = ctrl.db.Preload("Customer").Preload("Staff").
		Where("status = ? AND risk_level = ? AND date_time >= ?",
			models.StatusConfirmed, models.RiskHigh, dayStart).
		Order("date_time asc").
		Limit(10).
		Find(&overview.HighRiskReservations).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, overview)
}
