package constants

import "strings"

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

const DefaultPriority = PriorityMedium

// legacy clients still send the Indonesian labels
var priorityAliases = map[string]Priority{
	"LOW":    PriorityLow,
	"MEDIUM": PriorityMedium,
	"HIGH":   PriorityHigh,
	"RENDAH": PriorityLow,
	"SEDANG": PriorityMedium,
	"TINGGI": PriorityHigh,
}

// ParsePriority normalizes a priority label to its canonical upper-case form.
func ParsePriority(raw string) (Priority, bool) {
	p, ok := priorityAliases[strings.ToUpper(strings.TrimSpace(raw))]
	return p, ok
}
