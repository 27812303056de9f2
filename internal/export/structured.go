package export

import (
	"encoding/csv"
	"encoding/json"
	"strings"

	"triage/internal/store"
)

// JSON renders the sections as an indented JSON document.
type JSON struct{}

type jsonDocument struct {
	Title    string        `json:"title"`
	Sections []jsonSection `json:"sections"`
}

type jsonSection struct {
	Priority string   `json:"priority"`
	Tasks    []string `json:"tasks"`
}

// Render implements Renderer.
func (JSON) Render(title string, sections []store.Section) ([]byte, error) {
	doc := jsonDocument{Title: title, Sections: []jsonSection{}}
	for _, sec := range sections {
		doc.Sections = append(doc.Sections, jsonSection{
			Priority: sec.Tier.String(),
			Tasks:    sec.Labels,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// CSV renders one priority,task row per task, tier order preserved.
type CSV struct{}

// Render implements Renderer.
func (CSV) Render(title string, sections []store.Section) ([]byte, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"priority", "task"})
	for _, sec := range sections {
		for _, label := range sec.Labels {
			_ = w.Write([]string{sec.Tier.String(), label})
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}
