package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/archdoc/internal/controller"
	"github.com/mouse-blink/archdoc/internal/domain"
)

const listLongDescription = `List candidate source files and the action a run would take on each
(ok, update, or error). Nothing is written. Output is a plain table so
it can be piped.`

var listExcludeFlags []string
var listLicenseOnlyFlag bool

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List files and pending annotation actions",
		Long:  listLongDescription,
		RunE: func(c *cobra.Command, args []string) error {
			// Plan output is meant for piping, so it always uses the
			// plain text UI.
			planWorkflow := domain.NewWorkflow(
				fsAdapter,
				controller.NewSimpleUI(c),
				domain.NewLayerClassifier(domain.DefaultLayerRules, domain.DefaultLayer),
				domain.NewReferenceResolver(domain.DefaultReferenceRules),
			)

			return planWorkflow.Plan(domain.PlanArgs{
				Paths:       parsePaths(args),
				Exclude:     listExcludeFlags,
				LicenseOnly: listLicenseOnlyFlag,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().BoolVar(&listLicenseOnlyFlag, "license-only", false, "only check for missing license headers")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
