package export

import (
	"fmt"
	"strings"

	"triage/internal/store"
)

// Markdown renders the default export document: a top-level heading, one
// subheading per non-empty tier, one list line per task.
type Markdown struct{}

// Render implements Renderer.
func (Markdown) Render(title string, sections []store.Section) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", title)
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n## %s\n\n", sec.Tier)
		for _, label := range sec.Labels {
			fmt.Fprintf(&b, "- %s\n", label)
		}
	}
	return []byte(b.String()), nil
}
