// Package controller provides output adapters for displaying
// synchronization progress and results.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/archdoc/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	// ModeRun displays per-file progress while files are rewritten.
	ModeRun StartMode = iota
	// ModePlan displays the dry-run plan table.
	ModePlan
)

// StartOption is a functional option for the Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	total int
}

// WithRunMode sets the UI to run mode with the expected file count.
func WithRunMode(total int) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
		c.total = total
	}
}

// WithPlanMode sets the UI to plan (dry-run) mode.
func WithPlanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePlan
	}
}

// UI defines the interface for displaying synchronization output.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for the UI to finish rendering.
	DisplayFileResult(result m.FileResult)
	DisplaySummary(summary m.Summary)
	DisplayPlan(results []m.FileResult) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is an interactive terminal. Returns
// false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
