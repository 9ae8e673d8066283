package errors

import "net/http"

var ErrInvalidPriority = &Exception{
	Message:    "priority must be one of LOW, MEDIUM, HIGH",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidDueDate = &Exception{
	Message:    "due_date must be a date (YYYY-MM-DD) or RFC 3339 timestamp",
	StatusCode: http.StatusBadRequest,
}
