package services

import (
	"errors"
	"testing"
	"time"

	"salonbook-backend/models"

	"github.com/google/uuid"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 1, hour, min, 0, 0, time.UTC)
}

func reservationAt(start time.Time, durationMinutes int) models.Reservation {
	return models.Reservation{
		ID:       uuid.New(),
		DateTime: start,
		Duration: durationMinutes,
	}
}

func TestBookingInterval(t *testing.T) {
	start, end, err := bookingInterval([]time.Time{at(10, 30), at(10, 0), at(11, 0)})
	if err != nil {
		t.Fatalf("bookingInterval() error = %v", err)
	}
	if !start.Equal(at(10, 0)) {
		t.Errorf("start = %v, want %v", start, at(10, 0))
	}
	if !end.Equal(at(11, 30)) {
		t.Errorf("end = %v, want %v", end, at(11, 30))
	}
}

func TestBookingIntervalEmptySelection(t *testing.T) {
	if _, _, err := bookingInterval(nil); !errors.Is(err, ErrEmptySelection) {
		t.Errorf("error = %v, want ErrEmptySelection", err)
	}
}

func TestBookingIntervalRejectsGaps(t *testing.T) {
	_, _, err := bookingInterval([]time.Time{at(10, 0), at(11, 0)})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("gapped selection: error = %v, want ValidationError", err)
	}

	// Duplicate instants are also not a contiguous run
	_, _, err = bookingInterval([]time.Time{at(10, 0), at(10, 0)})
	if !errors.As(err, &validationErr) {
		t.Errorf("duplicate selection: error = %v, want ValidationError", err)
	}
}

func TestFindConflict(t *testing.T) {
	existing := reservationAt(at(10, 0), 60) // [10:00, 11:00)

	tests := []struct {
		name         string
		start, end   time.Time
		wantConflict bool
	}{
		{"identical interval", at(10, 0), at(11, 0), true},
		{"overlaps the front", at(9, 30), at(10, 30), true},
		{"overlaps the back", at(10, 30), at(11, 30), true},
		{"contained inside", at(10, 0), at(10, 30), true},
		{"contains the existing", at(9, 0), at(12, 0), true},
		{"touches the end exactly", at(11, 0), at(11, 30), false},
		{"touches the start exactly", at(9, 0), at(10, 0), false},
		{"well clear", at(13, 0), at(14, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflict := findConflict([]models.Reservation{existing}, tt.start, tt.end)
			if got := conflict != nil; got != tt.wantConflict {
				t.Errorf("findConflict(%v, %v) conflict = %v, want %v", tt.start, tt.end, got, tt.wantConflict)
			}
			if conflict != nil && conflict.ID != existing.ID {
				t.Errorf("conflict ID = %v, want %v", conflict.ID, existing.ID)
			}
		})
	}
}

// A booking over [10:00, 11:00) conflicts with a selection of the 10:00
// and 10:30 slots; excluding that reservation (editing it) clears the
// conflict.
func TestFindConflictAfterExclusion(t *testing.T) {
	existing := reservationAt(at(10, 0), 60)

	start, end, err := bookingInterval([]time.Time{at(10, 0), at(10, 30)})
	if err != nil {
		t.Fatalf("bookingInterval() error = %v", err)
	}

	if findConflict([]models.Reservation{existing}, start, end) == nil {
		t.Error("expected a conflict against the existing reservation")
	}

	// ValidateBookingSlots filters the edited reservation out of the
	// comparison set before calling findConflict; an empty set must pass.
	if findConflict(nil, start, end) != nil {
		t.Error("expected no conflict once the edited reservation is excluded")
	}
}

func TestMarkOccupied(t *testing.T) {
	slots := []models.StaffSlot{
		{ID: uuid.New(), StartAt: at(9, 30)},
		{ID: uuid.New(), StartAt: at(10, 0)},
		{ID: uuid.New(), StartAt: at(10, 30)},
		{ID: uuid.New(), StartAt: at(11, 0)},
	}
	reservations := []models.Reservation{reservationAt(at(10, 0), 60)} // [10:00, 11:00)

	availability := markOccupied(slots, reservations)
	if len(availability) != len(slots) {
		t.Fatalf("markOccupied() returned %d entries, want %d", len(availability), len(slots))
	}

	wantOccupied := []bool{false, true, true, false}
	for i, want := range wantOccupied {
		if availability[i].Occupied != want {
			t.Errorf("slot %v occupied = %v, want %v", availability[i].StartAt, availability[i].Occupied, want)
		}
		if !availability[i].StartAt.Equal(slots[i].StartAt) {
			t.Errorf("slot order changed at index %d", i)
		}
	}
}

func TestCoveringReservation(t *testing.T) {
	r := reservationAt(at(10, 0), 30)

	if coveringReservation([]models.Reservation{r}, at(10, 0)) == nil {
		t.Error("interval start should be covered")
	}
	if coveringReservation([]models.Reservation{r}, at(10, 30)) != nil {
		t.Error("interval end is exclusive and should not be covered")
	}
}

func TestListAvailabilityBoundsToRequestedDay(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	staff := models.Staff{Name: "鈴木"}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("creating staff: %v", err)
	}
	customer := models.Customer{Name: "田中 花子", Phone: "090-1111-2222"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("creating customer: %v", err)
	}

	day := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	first := day.Add(10 * time.Hour)
	second := first.Add(30 * time.Minute)

	for _, startAt := range []time.Time{first, second, first.AddDate(0, 0, 1)} {
		slot := models.StaffSlot{StaffID: staff.ID, StartAt: startAt}
		if err := db.Create(&slot).Error; err != nil {
			t.Fatalf("creating slot: %v", err)
		}
	}

	// Same clock time one week earlier: must not shadow this day's slots.
	for _, r := range []models.Reservation{
		{CustomerID: customer.ID, StaffID: &staff.ID, DateTime: first, Duration: 30, Menu: "カット", Status: models.StatusConfirmed},
		{CustomerID: customer.ID, StaffID: &staff.ID, DateTime: second.AddDate(0, 0, -7), Duration: 30, Menu: "カット", Status: models.StatusCompleted},
	} {
		reservation := r
		if err := db.Create(&reservation).Error; err != nil {
			t.Fatalf("creating reservation: %v", err)
		}
	}

	availability, err := svc.ListAvailability(staff.ID, day)
	if err != nil {
		t.Fatalf("ListAvailability() error = %v", err)
	}

	if len(availability) != 2 {
		t.Fatalf("len(availability) = %d, want the day's 2 slots", len(availability))
	}
	if !availability[0].Occupied {
		t.Errorf("slot %v occupied = false, want true", availability[0].StartAt)
	}
	if availability[1].Occupied {
		t.Errorf("slot %v occupied = true, want false", availability[1].StartAt)
	}
}
