// controllers/slot.go
package controllers

import (
	"net/http"
	"time"

	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateSlotsInput defines the expected JSON structure for declaring a
// staff member's working window, expanded into 30 minute slots.
type CreateSlotsInput struct {
	StaffID   uuid.UUID `json:"staffId" binding:"required"`
	Date      string    `json:"date" binding:"required"`      // "2006-01-02"
	StartTime string    `json:"startTime" binding:"required"` // "15:04"
	EndTime   string    `json:"endTime" binding:"required"`
}

type SlotController struct {
	service *services.SlotService
}

func NewSlotController(service *services.SlotService) *SlotController {
	return &SlotController{service: service}
}

// CreateSlots expands a time range into slots and stores the ones that do
// not exist yet
func (ctrl *SlotController) CreateSlots(c *gin.Context) {
	var input CreateSlotsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	startTimes, err := services.GenerateSlotTimes(input.Date, input.StartTime, input.EndTime, time.Local)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	count, err := ctrl.service.CreateSlots(input.StaffID, startTimes)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "count": count})
}

// GetSlots lists a staff member's slots within an optional date range
func (ctrl *SlotController) GetSlots(c *gin.Context) {
	staffID, err := uuid.Parse(c.Query("staffId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "staffId is required")
		return
	}

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from timestamp")
			return
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to timestamp")
			return
		}
		to = &t
	}

	slots, err := ctrl.service.ListSlots(staffID, from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}

// DeleteSlot removes a single declared slot
func (ctrl *SlotController) DeleteSlot(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid slot ID format")
		return
	}

	if err := ctrl.service.DeleteSlot(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slot deleted successfully"})
}
