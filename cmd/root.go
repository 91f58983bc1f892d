// Package cmd provides the root command and CLI setup for archdoc.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/archdoc/internal/adapter"
	"github.com/mouse-blink/archdoc/internal/controller"
	"github.com/mouse-blink/archdoc/internal/domain"
	m "github.com/mouse-blink/archdoc/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	workflow = domain.NewWorkflow(
		fsAdapter,
		ui,
		domain.NewLayerClassifier(domain.DefaultLayerRules, domain.DefaultLayer),
		domain.NewReferenceResolver(domain.DefaultReferenceRules),
	)
}

var parallelFlag int
var excludeFlags []string
var dryRunFlag bool
var licenseOnlyFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archdoc [paths...]",
		Short: "License and architecture header synchronizer",
		Long: `Archdoc keeps source files annotated with a copyright/SPDX license
header and a module-level architecture doc block (layer classification
plus related architecture decision records). Re-running is always safe:
already annotated files are left untouched and partially annotated
files are completed in place.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./cortex/...   recursively scan the cortex directory
  - ./a ./b        scan multiple directories`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Run(domain.RunArgs{
				Paths:       parsePaths(args),
				Exclude:     excludeFlags,
				Threads:     parallelFlag,
				DryRun:      dryRunFlag,
				LicenseOnly: licenseOnlyFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "report what would change without writing")
	cmd.Flags().BoolVar(&licenseOnlyFlag, "license-only", false, "only add missing license headers")

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		args = []string{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
