package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"090-1234-5678", true},
		{"09012345678", true},
		{"0312345678", true},
		{" 090-1234-5678 ", true},
		{"", false},
		{"---", false},
		{"090 1234 5678", false},
		{"+819012345678", false},
		{"phone", false},
	}

	for _, tt := range tests {
		if got := ValidatePhone(tt.phone); got != tt.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}
