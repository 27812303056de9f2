// Package config holds per-run settings shared by all commands.
package config

const (
	// DefaultExportFile is the export destination used when none is given.
	DefaultExportFile = "tasks.md"

	// ExportTitle is the top-level heading of every exported document.
	ExportTitle = "Tasks"
)

// Config holds run settings.
type Config struct {
	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}
