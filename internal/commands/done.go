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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed (removes it)" }
func (c *DoneCmd) Usage() string     { return "triage done <label...>" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	label := strings.Join(args, " ")
	if strings.TrimSpace(label) == "" {
		fmt.Fprintln(errOut, "error: task label required")
		return exitcode.UserError
	}
	return runComplete(cfg, st, label, out, errOut)
}

// runComplete removes the first exact match for label, scanning tiers in
// High, Medium, Low order. Shared by the done command and the session
// complete phase. A miss is reported and leaves the store unchanged.
func runComplete(cfg *config.Config, st *store.Store, label string, out, errOut io.Writer) int {
	label = strings.TrimSpace(label)

	tier, ok := st.Complete(label)
	if !ok {
		fmt.Fprintf(errOut, "error: task not found: %s\n", label)
		return exitcode.UserError
	}

	log.Debugf("completed %q in %s", label, tier)
	if !cfg.Quiet {
		fmt.Fprintf(out, "completed %q (%s)\n", label, tier)
	}
	return exitcode.Success
}
