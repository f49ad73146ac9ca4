package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Staff struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"not null" json:"name"`

	Slots []StaffSlot `gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE" json:"slots,omitempty"`

	// Deleting a staff member detaches their reservations, never removes them.
	Reservations []Reservation `gorm:"foreignKey:StaffID;constraint:OnDelete:SET NULL" json:"reservations,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (st *Staff) BeforeCreate(tx *gorm.DB) (err error) {
	if st.ID == uuid.Nil {
		st.ID = uuid.New()
	}
	return
}
