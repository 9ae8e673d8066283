package errors

import "net/http"

var ErrOrderedIDsNotArray = &Exception{
	Message:    "orderedIds must be an array",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidOrderedID = &Exception{
	Message:    "orderedIds must contain task ids",
	StatusCode: http.StatusBadRequest,
}

var ErrDuplicateOrderedID = &Exception{
	Message:    "orderedIds must not contain duplicates",
	StatusCode: http.StatusBadRequest,
}

var ErrUnknownOrderedID = &Exception{
	Message:    "orderedIds references a task that does not exist",
	StatusCode: http.StatusBadRequest,
}
