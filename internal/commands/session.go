package commands

import (
	"bufio"
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
	Register(&SessionCmd{})
}

// SessionCmd implements the interactive session: collect tasks, list them,
// offer complete/list cycles, then export once. Running triage with no
// arguments starts a session.
type SessionCmd struct {
	out string
}

// SetOut sets the export destination path (for testing).
func (c *SessionCmd) SetOut(path string) {
	c.out = path
}

func (c *SessionCmd) Name() string      { return "session" }
func (c *SessionCmd) Aliases() []string { return nil }
func (c *SessionCmd) Synopsis() string  { return "Interactively add, complete and export tasks" }
func (c *SessionCmd) Usage() string     { return "triage session [--out <path>]" }
func (c *SessionCmd) NeedsStore() bool  { return true }

func (c *SessionCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.out, "out", config.DefaultExportFile, "")
	fs.StringVar(&c.out, "o", config.DefaultExportFile, "")
}

func (c *SessionCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintln(errOut, "error: session takes no arguments")
		return exitcode.UserError
	}

	lines := bufio.NewScanner(in)

	if !addPhase(ctx, cfg, st, lines, out, errOut) {
		// Input ended during task collection: skip the remaining phases.
		return exitcode.Success
	}

	runList(cfg, st, out)

	if !completePhase(ctx, cfg, st, lines, out, errOut) {
		return exitcode.Success
	}

	return runExport(cfg, st, c.out, out, errOut)
}

// prompt writes the prompt text and reads one input line. ok is false when
// input is exhausted or the context is cancelled.
func prompt(ctx context.Context, lines *bufio.Scanner, out io.Writer, text string) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}
	fmt.Fprint(out, text)
	if !lines.Scan() {
		return "", false
	}
	return lines.Text(), true
}

// addPhase collects tasks until the user enters "q" at the label prompt.
// Invalid entries are reported and skipped; the loop keeps going. Returns
// false when input ended before the user finished.
func addPhase(ctx context.Context, cfg *config.Config, st *store.Store, lines *bufio.Scanner, out, errOut io.Writer) bool {
	for {
		label, ok := prompt(ctx, lines, out, "task (q to finish): ")
		if !ok {
			log.Debug("input ended during task collection")
			return false
		}
		if strings.TrimSpace(label) == "q" {
			return true
		}

		priority, ok := prompt(ctx, lines, out, "priority [high/medium/low]: ")
		if !ok {
			log.Debug("input ended during task collection")
			return false
		}
		if strings.TrimSpace(priority) == "" {
			priority = "medium"
		}

		runAdd(cfg, st, label, priority, out, errOut)
	}
}

// completePhase offers complete/list cycles until the user declines.
// Returns false when input ended mid-cycle.
func completePhase(ctx context.Context, cfg *config.Config, st *store.Store, lines *bufio.Scanner, out, errOut io.Writer) bool {
	for {
		answer, ok := prompt(ctx, lines, out, "complete a task? [y/N]: ")
		if !ok {
			return false
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			return true
		}

		label, ok := prompt(ctx, lines, out, "task label: ")
		if !ok {
			return false
		}

		runComplete(cfg, st, label, out, errOut)
		runList(cfg, st, out)
	}
}
