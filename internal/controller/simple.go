package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/archdoc/internal/model"
)

// SimpleUI implements UI using cobra Command's Println. It is the
// non-interactive fallback used when output is piped.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait blocks until the UI is done; a no-op for plain text output.
func (s *SimpleUI) Wait() {}

// DisplayFileResult prints a single line for files that were updated or
// failed. Unchanged files stay silent.
func (s *SimpleUI) DisplayFileResult(result m.FileResult) {
	switch result.Outcome {
	case m.OutcomeChanged:
		s.cmd.Printf("Updated: %s\n", result.Path)
	case m.OutcomeFailed:
		s.cmd.Printf("Error processing %s: %v\n", result.Path, result.Err)
	case m.OutcomeUnchanged:
	}
}

// DisplaySummary prints the end-of-run counts.
func (s *SimpleUI) DisplaySummary(summary m.Summary) {
	s.cmd.Printf("Scanned %d files. Updated %d files.\n", summary.Scanned, summary.Changed)

	if summary.Failed > 0 {
		s.cmd.Printf("%d files could not be processed.\n", summary.Failed)
	}
}

// DisplayPlan renders the dry-run table: every candidate file and the
// action a real run would take.
func (s *SimpleUI) DisplayPlan(results []m.FileResult) error {
	if len(results) == 0 {
		s.cmd.Println("No source files found")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Action"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	pending := 0

	for _, result := range results {
		table.Append([]string{string(result.Path), planAction(result)})

		if result.Outcome == m.OutcomeChanged {
			pending++
		}
	}

	table.Render()

	s.cmd.Print(tableBuffer.String())
	s.cmd.Printf("\n%d of %d files need updating\n", pending, len(results))

	return nil
}

func planAction(result m.FileResult) string {
	switch result.Outcome {
	case m.OutcomeChanged:
		return "update"
	case m.OutcomeFailed:
		return fmt.Sprintf("error: %v", result.Err)
	case m.OutcomeUnchanged:
	}

	return "ok"
}
