package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/drivkit/internal/config"
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Generate release notes and cut a release",
	Long: `Generate release notes from the commit range and cut a release
against the target branch.`,
	Example: `  # Release the current branch against main
  drivkit release --to main

  # Summarize a specific range
  drivkit release --from v1.2.0 --to main`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolved(cmd, config.CommandIdentity{Name: config.CommandRelease}, buildRawInput(cmd))
	},
}

func init() {
	f := releaseCmd.Flags()
	f.String("from", "", "start of the release range (default: last release tag)")
	f.String("to", "", "release target branch")
	f.String("merge-method", "", "merge method: merge | squash | rebase")
	f.Bool("no-milestones", false, "skip milestone management")
	f.String("context", "", "extra context for the model")
	f.Int("message-limit", 0, "commit-history entries fed to the model")
	rootCmd.AddCommand(releaseCmd)
}
