package model

import (
	"testing"

	"task-list.com/task-list/internal/constants"
)

func TestTaskPatchEmpty(t *testing.T) {
	done := true
	high := constants.PriorityHigh

	tests := []struct {
		name  string
		patch TaskPatch
		want  bool
	}{
		{"zero", TaskPatch{}, true},
		{"completion", TaskPatch{IsCompleted: &done}, false},
		{"priority", TaskPatch{Priority: &high}, false},
		{"clear due date", TaskPatch{DueDate: &DatePatch{}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.patch.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}
