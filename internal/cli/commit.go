package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/drivkit/internal/config"
)

var commitCmd = &cobra.Command{
	Use:   "commit [direction]",
	Short: "Generate a commit message and create the commit",
	Long: `Generate a commit message from the current diff and create the commit.

An optional positional argument steers the generated message. Text piped on
stdin always wins over the positional argument.`,
	Example: `  # Commit the staged diff
  drivkit commit --cached

  # Steer the message
  drivkit commit "focus on the config refactor"

  # Steer via stdin
  git log -1 --format=%B | drivkit commit`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := buildRawInput(cmd)
		piped, err := readPipedInput()
		if err != nil {
			return err
		}
		if piped != nil {
			raw["pipedInput"] = *piped
		}
		if len(args) > 0 {
			raw["direction"] = args[0]
		}
		return runResolved(cmd, config.CommandIdentity{Name: config.CommandCommit}, raw)
	},
}

func init() {
	f := commitCmd.Flags()
	f.Bool("add", false, "stage modified files before committing")
	f.Bool("cached", false, "diff the index instead of the worktree")
	f.Bool("sendit", false, "commit without confirmation")
	f.Bool("skip-file-check", false, "skip the staged-file sanity check")
	f.String("context", "", "extra context for the model")
	f.Int("message-limit", 0, "commit-history entries fed to the model")
	rootCmd.AddCommand(commitCmd)
}
