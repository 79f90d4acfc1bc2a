package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/drivkit/internal/config"
)

var reviewCmd = &cobra.Command{
	Use:   "review [note]",
	Short: "Review a note against repository context",
	Long: `Review a free-form note against the repository's recent history,
diffs, release notes, and open issues.

Text piped on stdin always wins over the positional note.`,
	Example: `  # Review a note
  drivkit review "should we split the parser package?"

  # Review piped text
  pbpaste | drivkit review`,
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
			raw["note"] = args[0]
		}
		return runResolved(cmd, config.CommandIdentity{Name: config.CommandReview}, raw)
	},
}

func init() {
	f := reviewCmd.Flags()
	f.Bool("sendit", false, "file resulting issues without confirmation")
	f.String("context", "", "extra context for the model")
	f.Int("message-limit", 0, "commit-history entries fed to the model")
	addReviewContextFlags(f)
	rootCmd.AddCommand(reviewCmd)
}
