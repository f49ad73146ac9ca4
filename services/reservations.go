package services

import (
	"errors"
	"time"

	"salonbook-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservationService orchestrates the reservation lifecycle: booking,
// edits, status transitions and the customer counter updates they imply.
type ReservationService struct {
	db           *gorm.DB
	availability *AvailabilityService
	now          func() time.Time
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{
		db:           db,
		availability: NewAvailabilityService(db),
		now:          time.Now,
	}
}

// CreateReservationInput carries a booking request. Either SlotStartTimes
// (slot flow, staff required) or DateTime (plain flow) must be set.
type CreateReservationInput struct {
	CustomerName   string
	CustomerPhone  string
	StaffID        *uuid.UUID
	SlotStartTimes []time.Time
	DateTime       *time.Time
	Menu           string
	Note           string
}

// UpdateReservationInput carries an edit to an existing reservation.
// Customer fields always update the linked customer in place.
type UpdateReservationInput struct {
	CustomerName   string
	CustomerPhone  string
	StaffID        *uuid.UUID
	SlotStartTimes []time.Time
	DateTime       *time.Time
	Menu           string
	Note           string
}

// ReservationFilter narrows List; nil fields apply no constraint.
type ReservationFilter struct {
	Status *models.ReservationStatus
	From   *time.Time
	To     *time.Time
}

// Create books a reservation. The customer is resolved by phone number:
// an existing phone keeps its counters and only has its name refreshed, a
// new phone creates a customer with zero counters. The stored risk is a
// snapshot of the customer's counters at this moment.
func (s *ReservationService) Create(input CreateReservationInput) (*models.Reservation, error) {
	if !models.ValidMenu(input.Menu) {
		return nil, &ValidationError{Field: "menu", Message: "unknown menu"}
	}

	var dateTime time.Time
	duration := int(SlotDuration.Minutes())

	switch {
	case len(input.SlotStartTimes) > 0:
		if input.StaffID == nil {
			return nil, &ValidationError{Field: "staffId", Message: "staff is required for slot bookings"}
		}
		if err := s.availability.ValidateBookingSlots(*input.StaffID, input.SlotStartTimes, nil); err != nil {
			return nil, err
		}
		dateTime = earliest(input.SlotStartTimes)
		duration = len(input.SlotStartTimes) * int(SlotDuration.Minutes())
	case input.DateTime != nil:
		// Plain datetime flow: minimum duration, no overlap check.
		dateTime = *input.DateTime
	default:
		return nil, &ValidationError{Field: "dateTime", Message: "either slotStartTimes or dateTime is required"}
	}

	customer, err := s.upsertCustomerByPhone(input.CustomerName, input.CustomerPhone)
	if err != nil {
		return nil, err
	}

	risk := CalculateRisk(riskInputFor(customer), s.now())

	reservation := models.Reservation{
		CustomerID: customer.ID,
		StaffID:    input.StaffID,
		DateTime:   dateTime,
		Duration:   duration,
		Menu:       input.Menu,
		Note:       input.Note,
		Status:     models.StatusConfirmed,
		RiskScore:  risk.Score,
		RiskLevel:  risk.Level,
	}
	if err := s.db.Create(&reservation).Error; err != nil {
		return nil, err
	}
	return s.Get(reservation.ID)
}

// Update edits a reservation's customer fields, schedule and menu. The
// risk snapshot is recomputed from the customer's current counters, never
// re-derived from the edit itself; counters only move in TransitionStatus.
func (s *ReservationService) Update(id uuid.UUID, input UpdateReservationInput) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.First(&reservation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "reservation", ID: id}
		}
		return nil, err
	}

	if !models.ValidMenu(input.Menu) {
		return nil, &ValidationError{Field: "menu", Message: "unknown menu"}
	}

	// Validate the schedule before writing anything so a rejected edit
	// leaves no partial state behind.
	switch {
	case len(input.SlotStartTimes) > 0:
		staffID := input.StaffID
		if staffID == nil {
			staffID = reservation.StaffID
		}
		if staffID == nil {
			return nil, &ValidationError{Field: "staffId", Message: "staff is required for slot bookings"}
		}
		if err := s.availability.ValidateBookingSlots(*staffID, input.SlotStartTimes, &reservation.ID); err != nil {
			return nil, err
		}
		reservation.StaffID = staffID
		reservation.DateTime = earliest(input.SlotStartTimes)
		reservation.Duration = len(input.SlotStartTimes) * int(SlotDuration.Minutes())
	case input.DateTime != nil:
		reservation.DateTime = *input.DateTime
		if input.StaffID != nil {
			reservation.StaffID = input.StaffID
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Customer{}).
			Where("id = ?", reservation.CustomerID).
			Updates(map[string]interface{}{
				"name":  input.CustomerName,
				"phone": input.CustomerPhone,
			}).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &ConflictError{Message: "phone number already registered to another customer"}
			}
			return err
		}

		var customer models.Customer
		if err := tx.First(&customer, "id = ?", reservation.CustomerID).Error; err != nil {
			return err
		}
		risk := CalculateRisk(riskInputFor(&customer), s.now())

		reservation.Menu = input.Menu
		reservation.Note = input.Note
		reservation.RiskScore = risk.Score
		reservation.RiskLevel = risk.Level

		return tx.Save(&reservation).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(reservation.ID)
}

// TransitionStatus moves a reservation to newStatus, applying the counter
// effect of entering the new status. Leaving a status never reverses its
// effect: moving COMPLETED back to CONFIRMED keeps the counted visit.
// A same-status transition mutates no counters but still refreshes the
// stored risk snapshot, so repeating it is idempotent.
func (s *ReservationService) TransitionStatus(id uuid.UUID, newStatus models.ReservationStatus) (*models.Reservation, error) {
	if !newStatus.Valid() {
		return nil, &ValidationError{Field: "status", Message: "unknown status"}
	}

	var reservation models.Reservation
	if err := s.db.First(&reservation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "reservation", ID: id}
		}
		return nil, err
	}

	if reservation.Status != newStatus {
		if updates := counterUpdates(newStatus, s.now()); updates != nil {
			err := s.db.Model(&models.Customer{}).
				Where("id = ?", reservation.CustomerID).
				Updates(updates).Error
			if err != nil {
				return nil, err
			}
		}
	}

	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", reservation.CustomerID).Error; err != nil {
		return nil, err
	}
	risk := CalculateRisk(riskInputFor(&customer), s.now())

	err := s.db.Model(&reservation).Updates(map[string]interface{}{
		"status":     newStatus,
		"risk_score": risk.Score,
		"risk_level": risk.Level,
	}).Error
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete hard-deletes a reservation. Counters are never reversed.
func (s *ReservationService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Reservation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "reservation", ID: id}
	}
	return nil
}

func (s *ReservationService) Get(id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.Preload("Customer").Preload("Staff").First(&reservation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "reservation", ID: id}
		}
		return nil, err
	}
	return &reservation, nil
}

func (s *ReservationService) List(filter ReservationFilter) ([]models.Reservation, error) {
	query := s.db.Preload("Customer").Preload("Staff")
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.From != nil {
		query = query.Where("date_time >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date_time <= ?", *filter.To)
	}

	var reservations []models.Reservation
	if err := query.Order("date_time asc").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// counterUpdates is the customer counter ledger: the column updates that
// entering newStatus applies to the owning customer, or nil when the
// status carries no counter effect. Increments are store-level
// expressions so concurrent transitions cannot under-count, and counters
// only ever move forward.
func counterUpdates(newStatus models.ReservationStatus, now time.Time) map[string]interface{} {
	switch newStatus {
	case models.StatusCompleted:
		return map[string]interface{}{
			"visit_count":   gorm.Expr("visit_count + 1"),
			"last_visit_at": now,
		}
	case models.StatusCancelled:
		return map[string]interface{}{
			"cancel_count": gorm.Expr("cancel_count + 1"),
		}
	case models.StatusNoShow:
		return map[string]interface{}{
			"no_show_count": gorm.Expr("no_show_count + 1"),
		}
	}
	return nil
}

// upsertCustomerByPhone resolves the booking customer by phone number.
func (s *ReservationService) upsertCustomerByPhone(name, phone string) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.First(&customer, "phone = ?", phone).Error
	switch {
	case err == nil:
		if customer.Name != name {
			if err := s.db.Model(&customer).Update("name", name).Error; err != nil {
				return nil, err
			}
			customer.Name = name
		}
		return &customer, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		customer = models.Customer{Name: name, Phone: phone}
		if err := s.db.Create(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost a race with a concurrent booking for the same phone.
				return nil, &ConflictError{Message: "phone number already registered"}
			}
			return nil, err
		}
		return &customer, nil
	default:
		return nil, err
	}
}

func riskInputFor(customer *models.Customer) RiskInput {
	return RiskInput{
		CancelCount: customer.CancelCount,
		NoShowCount: customer.NoShowCount,
		VisitCount:  customer.VisitCount,
		LastVisitAt: customer.LastVisitAt,
	}
}

func earliest(times []time.Time) time.Time {
	result := times[0]
	for _, t := range times[1:] {
		if t.Before(result) {
			result = t
		}
	}
	return result
}
