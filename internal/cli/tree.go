package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/drivkit/internal/config"
)

var treeCmd = &cobra.Command{
	Use:   "tree [built-in] [package]",
	Short: "Run a built-in command across every workspace package",
	Long: `Walk the workspace dependency tree and run a built-in command in
each package, in dependency order.

The first positional argument names the built-in to run (commit, publish,
link, unlink, development, updates, pull). A second positional argument
scopes the run to one package and its dependents.`,
	Example: `  # Commit every package with outstanding changes
  drivkit tree commit

  # Publish starting from one package
  drivkit tree publish @myorg/core`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := config.ResolveTreeIdentity(args)
		if err != nil {
			return err
		}
		return runResolved(cmd, id, buildRawInput(cmd))
	},
}

func init() {
	f := treeCmd.Flags()
	f.StringSlice("directories", nil, "workspace package directories")
	f.String("directory", "", "single workspace package directory")
	f.String("start-from", "", "skip packages before this one in dependency order")
	f.String("cmd", "", "arbitrary shell command to run per package")
	f.Bool("parallel", false, "run independent packages in parallel")
	f.Bool("continue", false, "resume a previously interrupted tree run")
	rootCmd.AddCommand(treeCmd)
}
