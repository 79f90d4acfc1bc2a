package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/drivkit/internal/config"
)

var linkCmd = &cobra.Command{
	Use:   "link [package]",
	Short: "Link local workspace packages into node_modules",
	Long: `Replace registry dependencies with local checkouts discovered under
the configured scope roots. An optional positional argument limits linking
to one package.`,
	Example: `  # Link everything under @myorg from a sibling checkout
  drivkit link --scope-roots '{"@myorg": "../myorg"}'

  # Link a single package
  drivkit link @myorg/core --scope-roots '{"@myorg": "../myorg"}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := config.ResolvePackageIdentity(config.CommandLink, args)
		return runResolved(cmd, id, buildRawInput(cmd))
	},
}

func init() {
	f := linkCmd.Flags()
	f.String("scope-roots", "", `JSON object mapping package scopes to directories, e.g. '{"@myorg":"../myorg"}'`)
	f.StringSlice("externals", nil, "extra package names to link outside the scope roots")
	rootCmd.AddCommand(linkCmd)
}
