package testutil

import (
	"testing"

	"triage/internal/store"
)

// SeededStore builds a store from per-tier label lists, failing the test on
// invalid input.
func SeededStore(t *testing.T, tasks map[store.Priority][]string) *store.Store {
	t.Helper()

	st := store.New()
	for tier, labels := range tasks {
		for _, label := range labels {
			if _, err := st.Add(label, tier); err != nil {
				t.Fatalf("seed %q: %v", label, err)
			}
		}
	}
	return st
}
