package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/archdoc/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// runModel renders live progress for a synchronization run: a spinner
// with the file currently being processed, a progress bar and running
// counts. It quits once the summary message arrives.
type runModel struct {
	total   int
	done    int
	changed int
	failed  int
	current string

	summary *m.Summary

	spinner  spinner.Model
	progress progress.Model
}

func newRunModel(total int) runModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	return runModel{
		total:    total,
		spinner:  sp,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

func (r runModel) Init() tea.Cmd {
	return r.spinner.Tick
}

func (r runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return r, tea.Quit
		}

		return r, nil

	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > 0 {
			r.progress.Width = width
		}

		return r, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)

		return r, cmd

	case progress.FrameMsg:
		updated, cmd := r.progress.Update(msg)
		r.progress = updated.(progress.Model)

		return r, cmd

	case fileResultMsg:
		r.done++
		r.current = string(msg.Path)

		switch msg.Outcome {
		case m.OutcomeChanged:
			r.changed++
		case m.OutcomeFailed:
			r.failed++
		case m.OutcomeUnchanged:
		}

		return r, r.progress.SetPercent(r.percent())

	case summaryMsg:
		summary := m.Summary(msg)
		r.summary = &summary

		return r, tea.Quit
	}

	return r, nil
}

func (r runModel) View() string {
	title := titleStyle.Render("archdoc")

	if r.summary != nil {
		line := fmt.Sprintf("Scanned %d files. Updated %d files.", r.summary.Scanned, r.summary.Changed)
		if r.summary.Failed > 0 {
			line += failedStyle.Render(fmt.Sprintf(" %d failed.", r.summary.Failed))
		}

		return fmt.Sprintf("%s\n%s\n", title, summaryStyle.Render(line))
	}

	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", r.spinner.View(), currentStyle.Render(r.current)))
	b.WriteString(r.progress.View())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(
		"%d/%d files  %s  %s\n",
		r.done,
		r.total,
		changedStyle.Render(fmt.Sprintf("%d updated", r.changed)),
		failedStyle.Render(fmt.Sprintf("%d failed", r.failed)),
	))

	return b.String()
}

func (r runModel) percent() float64 {
	if r.total <= 0 {
		return 1
	}

	return float64(r.done) / float64(r.total)
}
