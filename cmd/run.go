package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/archdoc/internal/domain"
)

const runLongDescription = `Annotate source files in place.

Every candidate file gets a license header (if missing) and an
architecture doc block describing its layer and related architecture
decision records. Files that already carry both are left byte-for-byte
untouched. Failures on individual files are reported and skipped; the
rest of the run continues.`

var runParallelFlag int
var runExcludeFlags []string
var runDryRunFlag bool
var runLicenseOnlyFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Annotate source files in place",
		Long:  runLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Run(domain.RunArgs{
				Paths:       parsePaths(args),
				Exclude:     runExcludeFlags,
				Threads:     runParallelFlag,
				DryRun:      runDryRunFlag,
				LicenseOnly: runLicenseOnlyFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.Flags().StringArrayVarP(&runExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().BoolVarP(&runDryRunFlag, "dry-run", "n", false, "report what would change without writing")
	cmd.Flags().BoolVar(&runLicenseOnlyFlag, "license-only", false, "only add missing license headers")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
