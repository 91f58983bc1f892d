package controller

import (
	"bytes"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/archdoc/internal/model"
)

// TUI implements UI with a Bubble Tea program. Used when stdout is an
// interactive terminal.
type TUI struct {
	out     io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a TUI writing to the provided writer.
func NewTUI(out io.Writer) *TUI {
	return &TUI{out: out}
}

// Start launches the Bubble Tea program. Plan mode renders a static
// table instead, so no program is started for it.
func (t *TUI) Start(options ...StartOption) error {
	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	if cfg.mode == ModePlan {
		return nil
	}

	t.program = tea.NewProgram(newRunModel(cfg.total), tea.WithOutput(t.out))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// Close stops the program if it is still running.
func (t *TUI) Close() {
	if t.program != nil {
		t.program.Quit()
	}
}

// Wait blocks until the program has finished rendering its final view.
func (t *TUI) Wait() {
	if t.done != nil {
		<-t.done
	}
}

// DisplayFileResult forwards a per-file result into the running program.
func (t *TUI) DisplayFileResult(result m.FileResult) {
	if t.program != nil {
		t.program.Send(fileResultMsg(result))
	}
}

// DisplaySummary forwards the final counts; the program quits after
// rendering them.
func (t *TUI) DisplaySummary(summary m.Summary) {
	if t.program != nil {
		t.program.Send(summaryMsg(summary))
	}
}

// DisplayPlan renders the dry-run table directly; plan output is static
// and needs no live program.
func (t *TUI) DisplayPlan(results []m.FileResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(t.out, "No source files found")
		return err
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

	if _, err := t.out.Write(tableBuffer.Bytes()); err != nil {
		return err
	}

	_, err := fmt.Fprintf(t.out, "\n%d of %d files need updating\n", pending, len(results))

	return err
}
