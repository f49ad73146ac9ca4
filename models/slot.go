package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffSlot is one declared 30-minute availability granule for one staff
// member. Occupancy is not stored here; it is derived by overlap against
// reservations.
type StaffSlot struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StaffID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_staff_start,priority:1" json:"staffId"`
	StartAt time.Time `gorm:"not null;uniqueIndex:idx_staff_start,priority:2" json:"startAt"`

	CreatedAt time.Time `json:"createdAt"`
}

func (s *StaffSlot) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
