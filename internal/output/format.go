// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"

	"triage/internal/store"
)

const (
	// TierSeparator is the separator line for tier sections.
	TierSeparator = "------------"
)

// FormatTierHeader formats a priority tier section header.
func FormatTierHeader(w io.Writer, tier store.Priority) {
	fmt.Fprintln(w, TierSeparator)
	fmt.Fprintln(w, tier.String())
	fmt.Fprintln(w, TierSeparator)
}

// FormatTask formats a task line within a tier section.
// Format: "{N:>4}  {LABEL}\n" (4-wide right-aligned number, two spaces, label)
func FormatTask(w io.Writer, num int, label string) {
	fmt.Fprintf(w, "%4d  %s\n", num, label)
}

// WriteSections writes every section as a tier header followed by its tasks,
// preserving the order the store produced.
func WriteSections(w io.Writer, sections []store.Section) {
	for _, sec := range sections {
		FormatTierHeader(w, sec.Tier)
		for i, label := range sec.Labels {
			FormatTask(w, i+1, label)
		}
	}
}
