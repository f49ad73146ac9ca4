package services

import (
	"testing"
	"time"

	"salonbook-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the scheduling schema
// migrated, so service behaviour can be exercised end to end.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Customer{},
		&models.Staff{},
		&models.StaffSlot{},
		&models.Reservation{},
		&models.ReminderLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// newTestReservationService builds a reservation service with a frozen
// clock so risk snapshots are deterministic.
func newTestReservationService(db *gorm.DB, now time.Time) *ReservationService {
	s := NewReservationService(db)
	s.now = func() time.Time { return now }
	return s
}
