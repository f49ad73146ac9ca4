package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCompleted ReservationStatus = "COMPLETED"
	StatusCancelled ReservationStatus = "CANCELLED"
	StatusNoShow    ReservationStatus = "NO_SHOW"
)

// Valid reports whether s is one of the known reservation statuses.
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

type Reservation struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index;not null" json:"customerId"`
	StaffID    *uuid.UUID `gorm:"type:uuid;index" json:"staffId"`

	DateTime time.Time `gorm:"not null;index" json:"dateTime"`
	Duration int       `gorm:"not null;default:30" json:"duration"` // minutes, multiple of 30
	Menu     string    `gorm:"not null" json:"menu"`
	Note     string    `json:"note"`

	Status ReservationStatus `gorm:"type:varchar(20);not null;default:'CONFIRMED'" json:"status"`

	// Risk snapshot taken from the customer's counters at write time.
	RiskScore int       `gorm:"not null;default:0" json:"riskScore"`
	RiskLevel RiskLevel `gorm:"type:varchar(10);not null;default:'LOW'" json:"riskLevel"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Staff    *Staff   `gorm:"foreignKey:StaffID" json:"staff,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

// EndTime returns the exclusive end of the reservation interval
// [DateTime, DateTime+Duration).
func (r *Reservation) EndTime() time.Time {
	return r.DateTime.Add(time.Duration(r.Duration) * time.Minute)
}
