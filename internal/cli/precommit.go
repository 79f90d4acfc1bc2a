package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/drivkit/internal/config"
)

var precommitCmd = &cobra.Command{
	Use:   "precommit",
	Short: "Run the pre-commit review of the working tree",
	Long: `Review the working tree before committing: lint the diff against
the configured exclusions and flag anything that should not land.`,
	Example: `  drivkit precommit`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolved(cmd, config.CommandIdentity{Name: config.CommandPrecommit}, buildRawInput(cmd))
	},
}

func init() {
	precommitCmd.Flags().Bool("sendit", false, "apply suggested fixes without confirmation")
	rootCmd.AddCommand(precommitCmd)
}
