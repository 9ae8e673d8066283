package errors

import "net/http"

var ErrInvalidTaskID = &Exception{
	Message:    "invalid task id",
	StatusCode: http.StatusBadRequest,
}
