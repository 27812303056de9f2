package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"triage/internal/commands"
	"triage/internal/config"
	"triage/internal/exitcode"
	"triage/internal/store"
)

// runSession runs the session command with scripted input and a temp export
// destination. Returns stdout, stderr, the exit code and the export path.
func runSession(t *testing.T, input string) (stdout, stderr string, code int, exportPath string) {
	t.Helper()

	exportPath = filepath.Join(t.TempDir(), "tasks.md")
	cmd := &commands.SessionCmd{}
	cmd.SetOut(exportPath)

	var outBuf, errBuf bytes.Buffer
	cfg := &config.Config{}

	code = cmd.Run(context.Background(), cfg, store.New(), nil, strings.NewReader(input), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code, exportPath
}

func TestSession_FullFlow(t *testing.T) {
	input := strings.Join([]string{
		"Write report", "high",
		"Buy milk", "low",
		"Call bank", "HIGH",
		"q",
		"y", "Buy milk",
		"n",
	}, "\n") + "\n"

	stdout, stderr, code, exportPath := runSession(t, input)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr: %q)", exitcode.Success, code, stderr)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "completed \"Buy milk\" (Low)") {
		t.Errorf("expected completion report, got:\n%s", stdout)
	}

	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("expected export file: %v", err)
	}
	want := `# Tasks

## High

- Call bank
- Write report
`
	if string(data) != want {
		t.Errorf("export mismatch\nWant:\n%s\nGot:\n%s", want, data)
	}
}

func TestSession_ListBetweenPhases(t *testing.T) {
	input := "Write report\nhigh\nq\nn\n"

	stdout, _, code, _ := runSession(t, input)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "High\n") || !strings.Contains(stdout, "   1  Write report\n") {
		t.Errorf("expected listing after add phase, got:\n%s", stdout)
	}
}

func TestSession_EmptyPriorityDefaultsToMedium(t *testing.T) {
	input := "Buy milk\n\nq\nn\n"

	stdout, stderr, code, _ := runSession(t, input)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr: %q)", exitcode.Success, code, stderr)
	}
	if !strings.Contains(stdout, "added \"Buy milk\" to Medium") {
		t.Errorf("expected default medium tier, got:\n%s", stdout)
	}
}

func TestSession_InvalidEntriesReportedAndSkipped(t *testing.T) {
	input := strings.Join([]string{
		"   ", "high", // empty label
		"Fix roof", "urgent", // bad priority
		"q",
	}, "\n") + "\n"

	stdout, stderr, code, exportPath := runSession(t, input)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stderr, "task label required") {
		t.Errorf("expected empty-label report, got %q", stderr)
	}
	if !strings.Contains(stderr, "invalid priority") {
		t.Errorf("expected invalid-priority report, got %q", stderr)
	}
	if !strings.Contains(stdout, "no tasks found") {
		t.Errorf("expected empty listing, got:\n%s", stdout)
	}
	// Input ended before the complete phase finished: no export.
	if _, err := os.Stat(exportPath); !os.IsNotExist(err) {
		t.Error("expected no export file")
	}
}

func TestSession_EOFDuringAddSkipsRemainingPhases(t *testing.T) {
	input := "Write report\nhigh\n"

	stdout, _, code, exportPath := runSession(t, input)

	if code != exitcode.Success {
		t.Fatalf("expected graceful exit, got %d", code)
	}
	if strings.Contains(stdout, "complete a task?") {
		t.Error("complete phase should have been skipped")
	}
	if _, err := os.Stat(exportPath); !os.IsNotExist(err) {
		t.Error("export should have been skipped")
	}
}

func TestSession_EOFDuringCompleteSkipsExport(t *testing.T) {
	input := "Write report\nhigh\nq\ny\n"

	_, _, code, exportPath := runSession(t, input)

	if code != exitcode.Success {
		t.Fatalf("expected graceful exit, got %d", code)
	}
	if _, err := os.Stat(exportPath); !os.IsNotExist(err) {
		t.Error("export should have been skipped")
	}
}

func TestSession_CancelledContext(t *testing.T) {
	exportPath := filepath.Join(t.TempDir(), "tasks.md")
	cmd := &commands.SessionCmd{}
	cmd.SetOut(exportPath)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var outBuf, errBuf bytes.Buffer
	code := cmd.Run(ctx, &config.Config{}, store.New(), nil, strings.NewReader("Write report\nhigh\n"), &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Fatalf("expected graceful exit, got %d", code)
	}
	if _, err := os.Stat(exportPath); !os.IsNotExist(err) {
		t.Error("export should have been skipped")
	}
}

func TestSession_RejectsArguments(t *testing.T) {
	cmd := &commands.SessionCmd{}

	var outBuf, errBuf bytes.Buffer
	code := cmd.Run(context.Background(), &config.Config{}, store.New(), []string{"extra"}, strings.NewReader(""), &outBuf, &errBuf)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if errBuf.String() != "error: session takes no arguments\n" {
		t.Errorf("unexpected stderr: %q", errBuf.String())
	}
}
