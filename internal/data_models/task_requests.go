package dto

import (
	"bytes"
	"encoding/json"
)

type CreateTaskRequest struct {
	Title    string  `json:"title"`
	Priority *string `json:"priority"`
	DueDate  *string `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title       *string        `json:"title"`
	IsCompleted *bool          `json:"is_completed"`
	Priority    *string        `json:"priority"`
	DueDate     OptionalString `json:"due_date"`
}

// ReorderTasksRequest keeps orderedIds raw so a non-array payload can be
// reported as such instead of as a generic decode failure.
type ReorderTasksRequest struct {
	OrderedIDs json.RawMessage `json:"orderedIds"`
}

type DeleteTaskResponse struct {
	Message string `json:"msg"`
	Task    any    `json:"task"`
}

type MessageResponse struct {
	Message string `json:"msg"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// OptionalString distinguishes an absent field from an explicit null.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}
