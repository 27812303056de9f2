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
	"triage/internal/store"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	priority string
}

// SetPriority sets the priority flag value (for testing).
func (c *AddCmd) SetPriority(p string) {
	c.priority = p
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a task to a priority tier" }
func (c *AddCmd) Usage() string {
	return "triage add [--priority <high|medium|low>] <label...>"
}
func (c *AddCmd) NeedsStore() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.priority, "priority", "medium", "")
	fs.StringVar(&c.priority, "p", "medium", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task label required")
		return exitcode.UserError
	}
	return runAdd(cfg, st, strings.Join(args, " "), c.priority, out, errOut)
}

// runAdd is the shared implementation for the add command and the session
// add phase. Failures are reported and leave the store unchanged.
func runAdd(cfg *config.Config, st *store.Store, label, priority string, out, errOut io.Writer) int {
	tier, err := store.ParsePriority(priority)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	added, err := st.Add(label, tier)
	if err != nil {
		fmt.Fprintln(errOut, "error: task label required")
		return exitcode.UserError
	}

	log.Debugf("added %q to %s", added, tier)
	if !cfg.Quiet {
		fmt.Fprintf(out, "added %q to %s\n", added, tier)
	}
	return exitcode.Success
}
