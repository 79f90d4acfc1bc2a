package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/drivkit/internal/config"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the package through the release pipeline",
	Long: `Run the publish pipeline: dependency updates, version bump, pull
request, merge, and registry publish.`,
	Example: `  # Publish with squash merges
  drivkit publish --merge-method squash

  # Publish a specific version
  drivkit publish --target-version 2.1.0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolved(cmd, config.CommandIdentity{Name: config.CommandPublish}, buildRawInput(cmd))
	},
}

func init() {
	f := publishCmd.Flags()
	f.String("merge-method", "", "merge method: merge | squash | rebase")
	f.StringSlice("dependency-update-patterns", nil, "package patterns updated before publishing")
	f.StringSlice("required-env-vars", nil, "environment variables that must be set to publish")
	f.Bool("link-workspace-packages", false, "link workspace packages during the publish build")
	f.String("target-version", "", "explicit version to publish")
	f.Bool("no-milestones", false, "skip milestone management")
	f.Bool("sendit", false, "publish without confirmation")
	rootCmd.AddCommand(publishCmd)
}
