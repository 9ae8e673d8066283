package validators

import (
	"strconv"

	apperrors "task-list.com/task-list/internal/errors"
)

// ParseTaskID parses a path id; only positive base-10 integers are ids.
func ParseTaskID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidTaskID
	}
	return id, nil
}
