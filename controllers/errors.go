package controllers

import (
	"errors"
	"log"
	"net/http"

	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps domain errors from the services layer to HTTP
// responses. Anything unrecognised is treated as a storage failure.
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr *services.ValidationError
		notFoundErr   *services.NotFoundError
		conflictErr   *services.ConflictError
	)

	switch {
	case errors.Is(err, services.ErrEmptySelection) || errors.Is(err, services.ErrInvalidRange):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &validationErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid input",
			"fieldErrors": gin.H{
				validationErr.Field: []string{validationErr.Message},
			},
		})
	case errors.As(err, &notFoundErr):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &conflictErr):
		body := gin.H{"success": false, "error": conflictErr.Message}
		if conflictErr.ReservationID != nil {
			body["conflictingReservationId"] = conflictErr.ReservationID
		}
		c.AbortWithStatusJSON(http.StatusConflict, body)
	default:
		log.Printf("service error: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}
