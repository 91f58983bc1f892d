// Package domain contains the header synchronization core and the
// workflow orchestrating it across a file tree.
package domain

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/archdoc/internal/adapter"
	"github.com/mouse-blink/archdoc/internal/controller"
	m "github.com/mouse-blink/archdoc/internal/model"
)

const outFilePerm os.FileMode = 0o644

// RunArgs configures a synchronization run.
type RunArgs struct {
	Paths   []m.Path
	Exclude []string
	Threads int
	// DryRun reports what would change without writing anything.
	DryRun bool
	// LicenseOnly prepends missing license headers and leaves doc
	// blocks alone.
	LicenseOnly bool
}

// PlanArgs configures a dry-run listing.
type PlanArgs struct {
	Paths       []m.Path
	Exclude     []string
	LicenseOnly bool
}

// Workflow defines the synchronization operations behind the CLI.
type Workflow interface {
	Run(args RunArgs) error
	Plan(args PlanArgs) error
}

type workflow struct {
	fs       adapter.SourceFSAdapter
	ui       controller.UI
	classify LayerFunc
	resolve  ReferenceFunc
}

// NewWorkflow creates a Workflow with the provided adapters and
// classification tables.
func NewWorkflow(fs adapter.SourceFSAdapter, ui controller.UI, classify LayerFunc, resolve ReferenceFunc) Workflow {
	return &workflow{
		fs:       fs,
		ui:       ui,
		classify: classify,
		resolve:  resolve,
	}
}

// Run synchronizes every candidate file under the provided paths.
// Per-file read/write failures are reported and counted but never abort
// the run; only setup errors (bad root, bad exclude pattern) do.
func (w *workflow) Run(args RunArgs) error {
	paths, err := w.fs.Get(args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithRunMode(len(paths))); err != nil {
		return err
	}
	defer w.ui.Close()

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	results := make(chan m.FileResult)

	go func() {
		var g errgroup.Group

		g.SetLimit(threads)

		for _, path := range paths {
			path := path
			g.Go(func() error {
				results <- w.processFile(path, args.DryRun, args.LicenseOnly)
				return nil
			})
		}

		_ = g.Wait()
		close(results)
	}()

	summary := m.Summary{Scanned: len(paths)}

	for result := range results {
		switch result.Outcome {
		case m.OutcomeChanged:
			summary.Changed++
		case m.OutcomeFailed:
			summary.Failed++
		case m.OutcomeUnchanged:
		}

		w.ui.DisplayFileResult(result)
	}

	w.ui.DisplaySummary(summary)
	w.ui.Wait()

	return nil
}

// Plan computes results for every candidate file without writing and
// displays them as a table.
func (w *workflow) Plan(args PlanArgs) error {
	paths, err := w.fs.Get(args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithPlanMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	results := make([]m.FileResult, 0, len(paths))
	for _, path := range paths {
		results = append(results, w.processFile(path, true, args.LicenseOnly))
	}

	return w.ui.DisplayPlan(results)
}

// processFile runs the per-file pipeline: read, synchronize, and write
// back when the text changed. Failures are absorbed into the result so
// one bad file never stops the others.
func (w *workflow) processFile(path m.Path, dryRun, licenseOnly bool) m.FileResult {
	content, err := w.fs.ReadFile(path)
	if err != nil {
		return m.FileResult{Path: path, Outcome: m.OutcomeFailed, Err: fmt.Errorf("read: %w", err)}
	}

	file := m.SourceFile{Path: path, Text: string(content)}

	var result m.FileResult
	if licenseOnly {
		result = AddLicense(file.Path, file.Text)
	} else {
		result = Synchronize(file.Path, file.Text, w.classify, w.resolve)
	}

	if result.Outcome == m.OutcomeChanged && !dryRun {
		if err := w.fs.WriteFile(path, []byte(result.NewText), outFilePerm); err != nil {
			return m.FileResult{Path: path, Outcome: m.OutcomeFailed, Err: fmt.Errorf("write: %w", err)}
		}
	}

	return result
}
