// Package store implements the in-memory task store: three fixed priority
// tiers holding task labels in insertion order.
package store

import (
	"fmt"
	"strings"
)

// Priority is one of the three fixed task tiers.
type Priority string

const (
	High   Priority = "High"
	Medium Priority = "Medium"
	Low    Priority = "Low"
)

// Tiers returns all priorities in display order.
func Tiers() []Priority {
	return []Priority{High, Medium, Low}
}

// ParsePriority parses a string into a Priority, case-insensitive and
// trimmed. Anything outside the three tiers is an error.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return High, nil
	case "medium":
		return Medium, nil
	case "low":
		return Low, nil
	default:
		return "", fmt.Errorf("invalid priority: %q", s)
	}
}

// String returns the display name of the priority.
func (p Priority) String() string {
	return string(p)
}
