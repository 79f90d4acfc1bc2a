package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/drivkit/internal/config"
)

var developmentCmd = &cobra.Command{
	Use:   "development",
	Short: "Switch the package to a development version",
	Long: `Bump the package to the next development (pre-release) version and
set up the matching milestone.`,
	Example: `  # Next development version
  drivkit development

  # Explicit target
  drivkit development --target-version 2.2.0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolved(cmd, config.CommandIdentity{Name: config.CommandDevelopment}, buildRawInput(cmd))
	},
}

func init() {
	f := developmentCmd.Flags()
	f.String("target-version", "", "explicit development version")
	f.Bool("no-milestones", false, "skip milestone management")
	rootCmd.AddCommand(developmentCmd)
}
