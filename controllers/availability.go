// controllers/availability.go
package controllers

import (
	"net/http"
	"time"

	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityController struct {
	service *services.AvailabilityService
}

func NewAvailabilityController(service *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{service: service}
}

// GetAvailability returns a staff member's slots for one day, each marked
// free or occupied
func (ctrl *AvailabilityController) GetAvailability(c *gin.Context) {
	staffID, err := uuid.Parse(c.Query("staffId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "staffId is required")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "date is required (YYYY-MM-DD)")
		return
	}

	availability, err := ctrl.service.ListAvailability(staffID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}
