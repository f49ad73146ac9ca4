package controllers

import (
	"errors"
	"net/http"

	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateStaffInput defines the expected JSON structure for creating a staff member
type CreateStaffInput struct {
	Name string `json:"name" binding:"required"`
}

// UpdateStaffInput defines the expected JSON structure for updating a staff member
type UpdateStaffInput struct {
	Name string `json:"name" binding:"required"`
}

type StaffController struct {
	db *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{db: db}
}

// CreateStaff registers a new staff member
func (ctrl *StaffController) CreateStaff(c *gin.Context) {
	var input CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	staff := models.Staff{Name: input.Name}
	if err := ctrl.db.Create(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create staff")
		return
	}

	c.JSON(http.StatusCreated, staff)
}

// GetStaffList lists staff members, optionally matching by name
func (ctrl *StaffController) GetStaffList(c *gin.Context) {
	query := ctrl.db.Order("created_at desc")

	if q := c.Query("q"); q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}

	var staff []models.Staff
	if err := query.Find(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// GetStaff retrieves a staff member with their reservations
func (ctrl *StaffController) GetStaff(c *gin.Context) {
	staffUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	var staff models.Staff
	err = ctrl.db.
		Preload("Reservations", func(db *gorm.DB) *gorm.DB {
			return db.Order("date_time desc")
		}).
		First(&staff, "id = ?", staffUUID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, staff)
}

// UpdateStaff renames a staff member
func (ctrl *StaffController) UpdateStaff(c *gin.Context) {
	staffUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	var input UpdateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var staff models.Staff
	if err := ctrl.db.First(&staff, "id = ?", staffUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	staff.Name = input.Name
	if err := ctrl.db.Save(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update staff")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// DeleteStaff removes a staff member. Their reservations are detached,
// not deleted; their slots go with them.
func (ctrl *StaffController) DeleteStaff(c *gin.Context) {
	staffUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	err = ctrl.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Reservation{}).
			Where("staff_id = ?", staffUUID).
			Update("staff_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.StaffSlot{}, "staff_id = ?", staffUUID).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Staff{}, "id = ?", staffUUID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete staff")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff deleted successfully"})
}
