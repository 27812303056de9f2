package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"triage/internal/config"
	"triage/internal/exitcode"
	"triage/internal/output"
	"triage/internal/store"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return nil }
func (c *ListCmd) Synopsis() string  { return "List tasks grouped by priority" }
func (c *ListCmd) Usage() string     { return "triage list" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintln(errOut, "error: list takes no arguments")
		return exitcode.UserError
	}
	return runList(cfg, st, out)
}

// runList prints every non-empty tier in High, Medium, Low order with its
// labels sorted alphabetically. Empty tiers are omitted; an empty store
// prints a no-tasks line instead of tier headers.
func runList(cfg *config.Config, st *store.Store, out io.Writer) int {
	sections := st.Sections()
	if len(sections) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}
	output.WriteSections(out, sections)
	return exitcode.Success
}
