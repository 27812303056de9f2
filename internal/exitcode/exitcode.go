// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, invalid priority, not found).
	UserError = 1

	// ExportError indicates a failure writing the export document.
	ExportError = 2
)
