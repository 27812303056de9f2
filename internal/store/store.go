package store

import (
	"errors"
	"sort"
	"strings"
)

// ErrEmptyLabel is returned by Add for labels that are empty after trimming.
var ErrEmptyLabel = errors.New("task label is empty")

// Section is one non-empty tier prepared for display or export: the tier
// plus a copy of its labels sorted lexicographically ascending.
type Section struct {
	Tier   Priority
	Labels []string
}

// Store holds task labels bucketed by priority. Labels keep insertion order;
// sorting happens only when sections are read. One store lives for one run.
type Store struct {
	tasks map[Priority][]string
}

// New returns a store with all three tiers present and empty.
func New() *Store {
	return &Store{tasks: map[Priority][]string{
		High:   {},
		Medium: {},
		Low:    {},
	}}
}

// Add appends label to the given tier. The label is trimmed first; an empty
// result is rejected and the store stays unchanged. Returns the trimmed
// label that was stored.
func (s *Store) Add(label string, p Priority) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", ErrEmptyLabel
	}
	s.tasks[p] = append(s.tasks[p], label)
	return label, nil
}

// Complete removes the first exact match for label, scanning tiers in
// High, Medium, Low order. At most one occurrence is removed even if
// duplicates exist elsewhere. Reports the tier the label was removed from,
// or false if no tier contains it.
func (s *Store) Complete(label string) (Priority, bool) {
	label = strings.TrimSpace(label)

	// Compute the match location first, then splice.
	var tier Priority
	idx := -1
	for _, t := range Tiers() {
		for i, l := range s.tasks[t] {
			if l == label {
				tier, idx = t, i
				break
			}
		}
		if idx >= 0 {
			break
		}
	}
	if idx < 0 {
		return "", false
	}

	s.tasks[tier] = append(s.tasks[tier][:idx], s.tasks[tier][idx+1:]...)
	return tier, true
}

// Sections returns the non-empty tiers in display order, each with a sorted
// copy of its labels. The stored slices are never reordered.
func (s *Store) Sections() []Section {
	var sections []Section
	for _, tier := range Tiers() {
		if len(s.tasks[tier]) == 0 {
			continue
		}
		labels := make([]string, len(s.tasks[tier]))
		copy(labels, s.tasks[tier])
		sort.Strings(labels)
		sections = append(sections, Section{Tier: tier, Labels: labels})
	}
	return sections
}

// Empty reports whether no tier holds any task.
func (s *Store) Empty() bool {
	return s.Count() == 0
}

// Count returns the total number of tasks across all tiers.
func (s *Store) Count() int {
	n := 0
	for _, labels := range s.tasks {
		n += len(labels)
	}
	return n
}
