package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"triage/internal/config"
	"triage/internal/exitcode"
	"triage/internal/store"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "triage help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  triage                                                    Start an interactive session
  triage session [common flags] [--out <path>]
  triage add [common flags] [--priority <high|medium|low>] <label...>
  triage list [common flags]
  triage done [common flags] <label...>
  triage complete [common flags] <label...>                 Alias for done
  triage export [common flags] [--out <path>]
  triage help
  triage version

The export format is chosen by the destination extension:
  .md (default), .pdf, .json, .csv

Common flags:
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
