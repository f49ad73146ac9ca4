package services

import (
	"errors"
	"time"

	"salonbook-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SlotDuration is the fixed length of one bookable slot.
const SlotDuration = 30 * time.Minute

// GenerateSlotTimes expands a working window into slot start instants,
// stepping 30 minutes from startTime (inclusive) to endTime (exclusive).
// date is "2006-01-02", startTime and endTime are "15:04".
func GenerateSlotTimes(date, startTime, endTime string, loc *time.Location) ([]time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: "invalid date"}
	}
	startMin, err := minuteOfDay(startTime)
	if err != nil {
		return nil, &ValidationError{Field: "startTime", Message: "invalid time"}
	}
	endMin, err := minuteOfDay(endTime)
	if err != nil {
		return nil, &ValidationError{Field: "endTime", Message: "invalid time"}
	}

	var slots []time.Time
	for m := startMin; m < endMin; m += 30 {
		slots = append(slots, day.Add(time.Duration(m)*time.Minute))
	}
	if len(slots) == 0 {
		return nil, ErrInvalidRange
	}
	return slots, nil
}

func minuteOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// SlotService manages a staff member's declared availability slots.
type SlotService struct {
	db *gorm.DB
}

func NewSlotService(db *gorm.DB) *SlotService {
	return &SlotService{db: db}
}

// CreateSlots inserts one slot row per start instant. Rows that already
// exist for the same (staff, startAt) pair are skipped, not errors.
// Returns the number of rows actually inserted.
func (s *SlotService) CreateSlots(staffID uuid.UUID, startTimes []time.Time) (int, error) {
	if len(startTimes) == 0 {
		return 0, ErrInvalidRange
	}

	var staff models.Staff
	if err := s.db.First(&staff, "id = ?", staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, &NotFoundError{Entity: "staff", ID: staffID}
		}
		return 0, err
	}

	slots := make([]models.StaffSlot, 0, len(startTimes))
	for _, startAt := range startTimes {
		slots = append(slots, models.StaffSlot{StaffID: staffID, StartAt: startAt})
	}

	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "staff_id"}, {Name: "start_at"}},
		DoNothing: true,
	}).Create(&slots)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

// ListSlots returns a staff member's slots ascending by start, optionally
// bounded to [from, to].
func (s *SlotService) ListSlots(staffID uuid.UUID, from, to *time.Time) ([]models.StaffSlot, error) {
	query := s.db.Where("staff_id = ?", staffID)
	if from != nil {
		query = query.Where("start_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("start_at <= ?", *to)
	}

	var slots []models.StaffSlot
	if err := query.Order("start_at asc").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (s *SlotService) DeleteSlot(id uuid.UUID) error {
	result := s.db.Delete(&models.StaffSlot{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "slot", ID: id}
	}
	return nil
}
