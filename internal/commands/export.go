package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"triage/internal/config"
	"triage/internal/exitcode"
	"triage/internal/export"
	"triage/internal/store"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	out string
}

// SetOut sets the destination path (for testing).
func (c *ExportCmd) SetOut(path string) {
	c.out = path
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Export tasks to a document" }
func (c *ExportCmd) Usage() string     { return "triage export [--out <path>]" }
func (c *ExportCmd) NeedsStore() bool  { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.out, "out", config.DefaultExportFile, "")
	fs.StringVar(&c.out, "o", config.DefaultExportFile, "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintln(errOut, "error: export takes no arguments")
		return exitcode.UserError
	}
	return runExport(cfg, st, c.out, out, errOut)
}

// runExport renders the current sections to the destination, choosing the
// document format from the file extension. Shared by the export command and
// the session export phase.
func runExport(cfg *config.Config, st *store.Store, path string, out, errOut io.Writer) int {
	if strings.TrimSpace(path) == "" {
		path = config.DefaultExportFile
	}

	if err := export.WriteFile(path, config.ExportTitle, st.Sections()); err != nil {
		fmt.Fprintf(errOut, "error: export failed: %v\n", err)
		return exitcode.ExportError
	}

	log.Debugf("exported %d tasks to %s", st.Count(), path)
	if !cfg.Quiet {
		fmt.Fprintf(out, "exported %d tasks to %s\n", st.Count(), path)
	}
	return exitcode.Success
}
