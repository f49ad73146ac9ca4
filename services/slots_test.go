package services

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateSlotTimes(t *testing.T) {
	slots, err := GenerateSlotTimes("2025-03-01", "09:00", "17:00", time.UTC)
	if err != nil {
		t.Fatalf("GenerateSlotTimes() error = %v", err)
	}

	if len(slots) != 16 {
		t.Fatalf("GenerateSlotTimes() returned %d slots, want 16", len(slots))
	}

	first := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	if !slots[0].Equal(first) {
		t.Errorf("first slot = %v, want %v", slots[0], first)
	}

	last := time.Date(2025, 3, 1, 16, 30, 0, 0, time.UTC)
	if !slots[len(slots)-1].Equal(last) {
		t.Errorf("last slot = %v, want %v", slots[len(slots)-1], last)
	}

	for i := 1; i < len(slots); i++ {
		if got := slots[i].Sub(slots[i-1]); got != SlotDuration {
			t.Errorf("spacing between slot %d and %d = %v, want %v", i-1, i, got, SlotDuration)
		}
	}
}

func TestGenerateSlotTimesEmptyRange(t *testing.T) {
	if _, err := GenerateSlotTimes("2025-03-01", "09:00", "09:00", time.UTC); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("equal start and end: error = %v, want ErrInvalidRange", err)
	}

	if _, err := GenerateSlotTimes("2025-03-01", "17:00", "09:00", time.UTC); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("end before start: error = %v, want ErrInvalidRange", err)
	}
}

func TestGenerateSlotTimesMalformedInput(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		start     string
		end       string
		wantField string
	}{
		{"bad date", "03-01-2025", "09:00", "17:00", "date"},
		{"bad start", "2025-03-01", "9am", "17:00", "startTime"},
		{"bad end", "2025-03-01", "09:00", "25:00", "endTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSlotTimes(tt.date, tt.start, tt.end, time.UTC)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", validationErr.Field, tt.wantField)
			}
		})
	}
}

func TestGenerateSlotTimesPartialHour(t *testing.T) {
	slots, err := GenerateSlotTimes("2025-03-01", "09:00", "10:15", time.UTC)
	if err != nil {
		t.Fatalf("GenerateSlotTimes() error = %v", err)
	}

	// 09:00, 09:30, 10:00 — the window is exclusive of the end time
	if len(slots) != 3 {
		t.Errorf("GenerateSlotTimes() returned %d slots, want 3", len(slots))
	}
}
