// Package cli implements the drivkit command surface. Each subcommand
// collects its flags into the flat raw input, resolves the layered
// configuration once, and hands the result to the dispatch layer.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/drivkit/internal/config"
	"github.com/raveheart1/drivkit/internal/errors"
)

var (
	initConfigFlag  bool
	checkConfigFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "drivkit [command]",
	Short: "AI-assisted git workflow automation",
	Long: `drivkit automates git workflows with AI-generated commit messages,
release notes, and reviews across single repositories and multi-package
workspaces.

Configuration is resolved once per invocation with the following priority
(highest to lowest):
  1. CLI flags
  2. Environment variables (DRIVKIT_*)
  3. Hierarchically discovered config files (.drivkit/config.yaml)
  4. Built-in defaults`,
	Example: `  # Generate and create a commit from the staged diff
  drivkit commit --cached

  # Cut a release against main
  drivkit release --to main

  # Run commit across every workspace package
  drivkit tree commit

  # Write a starter config file
  drivkit --init-config`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if initConfigFlag {
			return runInitConfig(cmd)
		}
		if checkConfigFlag {
			return runCheckConfig(cmd)
		}
		if len(args) == 0 {
			return cmd.Help()
		}
		// Known commands dispatch as subcommands; anything that lands here
		// failed the allow-list.
		_, err := config.ValidateCommand(args[0])
		return err
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("model", "", "model used for generated messages")
	pf.BoolP("verbose", "v", false, "verbose progress output")
	pf.Bool("debug", false, "debug logging")
	pf.Bool("dry-run", false, "print actions without performing them")
	pf.String("config-dir", "", "config directory (replaces hierarchical discovery)")
	pf.String("output-dir", "", "directory for generated artifacts")
	pf.String("preferences-dir", "", "directory holding user preference documents")
	pf.StringSlice("context-directories", nil, "extra directories to feed model context")
	pf.StringSlice("excluded-patterns", nil, "paths excluded from diffs and trees")
	pf.StringSlice("exclude", nil, "alias for --excluded-patterns")
	pf.StringSlice("excluded-paths", nil, "alias for --exclude")
	pf.Int("max-output-tokens", 0, "model output token limit")
	pf.Float64("temperature", 0, "model sampling temperature (0-2)")
	pf.String("reasoning-level", "", "model reasoning effort: low | medium | high")

	rootCmd.Flags().BoolVar(&initConfigFlag, "init-config", false, "write a starter config file and exit")
	rootCmd.Flags().BoolVar(&checkConfigFlag, "check-config", false, "validate discovered config files and exit")
}

// runInitConfig handles the init-config meta state. It bypasses the
// credential resolver and the merge pipeline entirely.
func runInitConfig(cmd *cobra.Command) error {
	configDir, _ := cmd.Flags().GetString("config-dir")
	path, err := config.InitConfig(configDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote config template: %s\n", path)
	return nil
}

// runCheckConfig handles the check-config meta state: file validation only,
// no credential required.
func runCheckConfig(cmd *cobra.Command) error {
	configDir, _ := cmd.Flags().GetString("config-dir")
	report, err := config.CheckConfig(config.DiscoverOptions{
		ConfigDirOverride: configDir,
		WarningWriter:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(report.Files) == 0 {
		fmt.Fprintln(out, "No config files found; built-in defaults apply.")
	}
	for _, f := range report.Files {
		fmt.Fprintf(out, "Loaded: %s\n", f)
	}
	fmt.Fprintf(out, "Configuration OK (model: %s)\n", report.Config.Model)
	return nil
}

// Execute runs the CLI and returns the error, formatted to stderr. The
// hosting process maps it to an exit code via ExitCode; nothing here
// terminates the process.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		errors.PrintError(toCLIError(err))
	}
	return err
}

// SetArgs overrides os.Args for tests.
func SetArgs(args []string) {
	rootCmd.SetArgs(args)
}
