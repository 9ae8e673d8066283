package validators

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	apperrors "task-list.com/task-list/internal/errors"
)

// ParseOrderedIDs decodes the orderedIds payload. Elements may be JSON
// integers or numeric strings.
func ParseOrderedIDs(raw json.RawMessage) ([]int64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, apperrors.ErrOrderedIDsNotArray
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, apperrors.ErrOrderedIDsNotArray
	}

	ids := make([]int64, 0, len(elems))
	for _, elem := range elems {
		id, err := parseOrderedID(elem)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseOrderedID(elem json.RawMessage) (int64, error) {
	var text string
	if err := json.Unmarshal(elem, &text); err != nil {
		var num json.Number
		dec := json.NewDecoder(bytes.NewReader(elem))
		dec.UseNumber()
		if err := dec.Decode(&num); err != nil {
			return 0, apperrors.ErrInvalidOrderedID
		}
		text = num.String()
	}

	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidOrderedID
	}
	return id, nil
}
