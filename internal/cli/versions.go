package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/drivkit/internal/config"
)

var versionsCmd = &cobra.Command{
	Use:   "versions [subcommand]",
	Short: "Inspect and align workspace package versions",
	Long: `Report the versions of every workspace package, or align internal
dependency ranges with the checked-out versions.`,
	Example: `  # Report versions
  drivkit versions

  # Align internal dependency ranges
  drivkit versions align`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := buildRawInput(cmd)
		if len(args) > 0 {
			raw["subcommand"] = args[0]
		}
		return runResolved(cmd, config.CommandIdentity{Name: config.CommandVersions}, raw)
	},
}

func init() {
	versionsCmd.Flags().StringSlice("directories", nil, "workspace package directories")
	rootCmd.AddCommand(versionsCmd)
}
