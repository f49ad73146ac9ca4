// models/reminder_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderLog records one delivery attempt of a reservation reminder.
type ReminderLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReservationID uuid.UUID `gorm:"type:uuid;index;not null" json:"reservationId"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`
	Message       string    `gorm:"type:text" json:"message"`
	Status        string    `gorm:"type:varchar(20)" json:"status"`  // sent, failed
	ErrorMessage  string    `gorm:"type:text" json:"errorMessage"`
	Channel       string    `gorm:"type:varchar(20)" json:"channel"` // sms
	SentAt        time.Time `json:"sentAt"`

	CreatedAt time.Time `json:"createdAt"`
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
