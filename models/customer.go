package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"not null" json:"name"`
	Phone string    `gorm:"not null;uniqueIndex" json:"phone"`

	// Behaviour counters, mutated only by reservation status transitions.
	VisitCount  int        `gorm:"not null;default:0" json:"visitCount"`
	CancelCount int        `gorm:"not null;default:0" json:"cancelCount"`
	NoShowCount int        `gorm:"not null;default:0" json:"noShowCount"`
	LastVisitAt *time.Time `json:"lastVisitAt"`

	Reservations []Reservation `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"reservations,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (cu *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if cu.ID == uuid.Nil {
		cu.ID = uuid.New()
	}
	return
}
