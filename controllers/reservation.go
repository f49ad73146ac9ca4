// controllers/reservation.go
package controllers

import (
	"net/http"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateReservationInput defines the expected JSON structure for creating
// a reservation. Slot bookings send slotStartTimes (with staffId), walk-in
// style bookings send a plain dateTime.
type CreateReservationInput struct {
	CustomerName   string      `json:"customerName" binding:"required"`
	CustomerPhone  string      `json:"customerPhone" binding:"required"`
	StaffID        *uuid.UUID  `json:"staffId"`
	SlotStartTimes []time.Time `json:"slotStartTimes"`
	DateTime       *time.Time  `json:"dateTime"`
	Menu           string      `json:"menu" binding:"required"`
	Note           string      `json:"note"`
}

// UpdateReservationInput defines the expected JSON structure for updating
// a reservation
type UpdateReservationInput struct {
	CustomerName   string      `json:"customerName" binding:"required"`
	CustomerPhone  string      `json:"customerPhone" binding:"required"`
	StaffID        *uuid.UUID  `json:"staffId"`
	SlotStartTimes []time.Time `json:"slotStartTimes"`
	DateTime       *time.Time  `json:"dateTime"`
	Menu           string      `json:"menu" binding:"required"`
	Note           string      `json:"note"`
}

// UpdateStatusInput defines the expected JSON structure for a status change
type UpdateStatusInput struct {
	Status models.ReservationStatus `json:"status" binding:"required"`
}

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

// CreateReservation books a new reservation
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var input CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.CustomerPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	reservation, err := ctrl.service.Create(services.CreateReservationInput{
		CustomerName:   input.CustomerName,
		CustomerPhone:  input.CustomerPhone,
		StaffID:        input.StaffID,
		SlotStartTimes: input.SlotStartTimes,
		DateTime:       input.DateTime,
		Menu:           input.Menu,
		Note:           input.Note,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "reservation": reservation})
}

// GetReservations lists reservations, optionally filtered by status and
// date range
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	var filter services.ReservationFilter

	if status := c.Query("status"); status != "" {
		reservationStatus := models.ReservationStatus(status)
		if !reservationStatus.Valid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown status: "+status)
			return
		}
		filter.Status = &reservationStatus
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from timestamp")
			return
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to timestamp")
			return
		}
		filter.To = &t
	}

	reservations, err := ctrl.service.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// GetReservation retrieves a specific reservation by ID
func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	reservation, err := ctrl.service.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// UpdateReservation edits an existing reservation
func (ctrl *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	var input UpdateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.CustomerPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	reservation, err := ctrl.service.Update(id, services.UpdateReservationInput{
		CustomerName:   input.CustomerName,
		CustomerPhone:  input.CustomerPhone,
		StaffID:        input.StaffID,
		SlotStartTimes: input.SlotStartTimes,
		DateTime:       input.DateTime,
		Menu:           input.Menu,
		Note:           input.Note,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reservation": reservation})
}

// UpdateReservationStatus transitions a reservation's status
func (ctrl *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	reservation, err := ctrl.service.TransitionStatus(id, input.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reservation": reservation})
}

// DeleteReservation hard-deletes a reservation
func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	if err := ctrl.service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
}
