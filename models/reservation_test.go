package models

import (
	"testing"
	"time"
)

func TestReservationStatusValid(t *testing.T) {
	for _, status := range []ReservationStatus{StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow} {
		if !status.Valid() {
			t.Errorf("ReservationStatus(%q).Valid() = false, want true", status)
		}
	}

	if ReservationStatus("PENDING").Valid() {
		t.Error(`ReservationStatus("PENDING").Valid() = true, want false`)
	}
	if ReservationStatus("").Valid() {
		t.Error(`ReservationStatus("").Valid() = true, want false`)
	}
}

func TestReservationEndTime(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	reservation := Reservation{DateTime: start, Duration: 90}

	want := time.Date(2025, 3, 1, 11, 30, 0, 0, time.UTC)
	if got := reservation.EndTime(); !got.Equal(want) {
		t.Errorf("Reservation.EndTime() = %v, want %v", got, want)
	}
}

func TestValidMenu(t *testing.T) {
	if !ValidMenu("カット") {
		t.Error(`ValidMenu("カット") = false, want true`)
	}
	if !ValidMenu("カット+カラー") {
		t.Error(`ValidMenu("カット+カラー") = false, want true`)
	}
	if ValidMenu("マッサージ") {
		t.Error(`ValidMenu("マッサージ") = true, want false`)
	}
	if ValidMenu("") {
		t.Error(`ValidMenu("") = true, want false`)
	}
}
