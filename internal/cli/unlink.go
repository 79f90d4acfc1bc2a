package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/drivkit/internal/config"
)

var unlinkCmd = &cobra.Command{
	Use:   "unlink [package]",
	Short: "Restore registry dependencies for linked packages",
	Long: `Undo 'drivkit link': restore registry dependencies for packages
linked under the configured scope roots. An optional positional argument
limits unlinking to one package.`,
	Example: `  # Unlink everything
  drivkit unlink --scope-roots '{"@myorg": "../myorg"}'

  # Unlink one package and clean its node_modules
  drivkit unlink @myorg/core --clean-node-modules`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := config.ResolvePackageIdentity(config.CommandUnlink, args)
		return runResolved(cmd, id, buildRawInput(cmd))
	},
}

func init() {
	f := unlinkCmd.Flags()
	f.String("scope-roots", "", `JSON object mapping package scopes to directories, e.g. '{"@myorg":"../myorg"}'`)
	f.String("workspace-file", "", "workspace definition file")
	f.Bool("clean-node-modules", false, "remove node_modules after unlinking")
	rootCmd.AddCommand(unlinkCmd)
}
