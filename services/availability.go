package services

import (
	"fmt"
	"sort"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SlotAvailability pairs a declared slot with its derived occupancy.
type SlotAvailability struct {
	SlotID   uuid.UUID `json:"slotId"`
	StartAt  time.Time `json:"startAt"`
	Occupied bool      `json:"occupied"`
}

// maxReservationSpan bounds how far back a reservation can start and
// still reach into a given day. Durations are slot-count multiples of 30
// minutes within a working day, so one day is a safe ceiling.
const maxReservationSpan = 24 * time.Hour

// AvailabilityService derives free/occupied state for a staff member's
// slots and validates candidate bookings against existing reservations.
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// ListAvailability returns the staff member's declared slots for one day,
// ascending by start, each marked occupied when an existing reservation
// interval covers its start instant.
func (s *AvailabilityService) ListAvailability(staffID uuid.UUID, date time.Time) ([]SlotAvailability, error) {
	dayStart := utils.BeginningOfDay(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var slots []models.StaffSlot
	if err := s.db.
		Where("staff_id = ? AND start_at >= ? AND start_at < ?", staffID, dayStart, dayEnd).
		Order("start_at asc").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	var reservations []models.Reservation
	if err := s.db.
		Where("staff_id = ? AND date_time >= ? AND date_time < ?",
			staffID, dayStart.Add(-maxReservationSpan), dayEnd).
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return markOccupied(slots, reservations), nil
}

// ValidateBookingSlots checks a candidate slot selection against the staff
// member's existing reservations, ignoring the reservation being edited
// when excludeReservationID is set. The effective booking interval is
// [earliest slot, latest slot + 30min).
func (s *AvailabilityService) ValidateBookingSlots(staffID uuid.UUID, slotTimes []time.Time, excludeReservationID *uuid.UUID) error {
	start, end, err := bookingInterval(slotTimes)
	if err != nil {
		return err
	}

	reservations, err := s.staffReservations(staffID, excludeReservationID)
	if err != nil {
		return err
	}

	if conflict := findConflict(reservations, start, end); conflict != nil {
		return &ConflictError{
			Message:       fmt.Sprintf("time slot already booked from %s", conflict.DateTime.Format("2006-01-02 15:04")),
			ReservationID: &conflict.ID,
		}
	}
	return nil
}

// bookingInterval computes the half-open interval a slot selection spans.
// Selections with gaps are rejected: duration is derived from the slot
// count, and a gapped selection would misstate the actual span.
func bookingInterval(slotTimes []time.Time) (start, end time.Time, err error) {
	if len(slotTimes) == 0 {
		return start, end, ErrEmptySelection
	}

	sorted := make([]time.Time, len(slotTimes))
	copy(sorted, slotTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	for i := 1; i < len(sorted); i++ {
		if !sorted[i].Equal(sorted[i-1].Add(SlotDuration)) {
			return start, end, &ValidationError{
				Field:   "slotStartTimes",
				Message: "selected slots must be consecutive 30 minute blocks",
			}
		}
	}

	return sorted[0], sorted[len(sorted)-1].Add(SlotDuration), nil
}

// findConflict returns the first reservation whose interval intersects
// [start, end), or nil when none does.
func findConflict(reservations []models.Reservation, start, end time.Time) *models.Reservation {
	for i := range reservations {
		r := &reservations[i]
		if r.DateTime.Before(end) && start.Before(r.EndTime()) {
			return r
		}
	}
	return nil
}

// markOccupied flags each slot whose start falls inside any reservation's
// half-open interval.
func markOccupied(slots []models.StaffSlot, reservations []models.Reservation) []SlotAvailability {
	availability := make([]SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		availability = append(availability, SlotAvailability{
			SlotID:   slot.ID,
			StartAt:  slot.StartAt,
			Occupied: coveringReservation(reservations, slot.StartAt) != nil,
		})
	}
	return availability
}

// coveringReservation returns the first reservation whose interval
// contains instant, or nil.
func coveringReservation(reservations []models.Reservation, instant time.Time) *models.Reservation {
	for i := range reservations {
		r := &reservations[i]
		if !instant.Before(r.DateTime) && instant.Before(r.EndTime()) {
			return r
		}
	}
	return nil
}

func (s *AvailabilityService) staffReservations(staffID uuid.UUID, excludeID *uuid.UUID) ([]models.Reservation, error) {
	query := s.db.Where("staff_id = ?", staffID)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}
