package services

import (
	"errors"
	"testing"
	"time"

	apperrors "task-list.com/task-list/internal/errors"
)

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		in   string
		want *time.Time
	}{
		{"", nil},
		{"  ", nil},
		{"2025-01-31", at(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))},
		{"2025-01-31T09:30", at(time.Date(2025, 1, 31, 9, 30, 0, 0, time.UTC))},
		{"2025-01-31T09:30:15", at(time.Date(2025, 1, 31, 9, 30, 15, 0, time.UTC))},
		{"2025-01-31T09:30:15Z", at(time.Date(2025, 1, 31, 9, 30, 15, 0, time.UTC))},
		{"2025-01-31T09:30:15.250+02:00", at(time.Date(2025, 1, 31, 7, 30, 15, 250000000, time.UTC))},
	}

	for _, tt := range tests {
		got, err := ParseDueDate(tt.in)
		if err != nil {
			t.Errorf("ParseDueDate(%q) error = %v", tt.in, err)
			continue
		}
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("ParseDueDate(%q) = %v, want nil", tt.in, got)
		case tt.want != nil && (got == nil || !got.Equal(*tt.want)):
			t.Errorf("ParseDueDate(%q) = %v, want %v", tt.in, got, tt.want)
		case got != nil && got.Location() != time.UTC:
			t.Errorf("ParseDueDate(%q) location = %v, want UTC", tt.in, got.Location())
		}
	}
}

func TestParseDueDate_Invalid(t *testing.T) {
	for _, in := range []string{"tomorrow", "31/01/2025", "2025-13-01"} {
		if _, err := ParseDueDate(in); !errors.Is(err, apperrors.ErrInvalidDueDate) {
			t.Errorf("ParseDueDate(%q): expected ErrInvalidDueDate, got %v", in, err)
		}
	}
}

func at(t time.Time) *time.Time { return &t }
