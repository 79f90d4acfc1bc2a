package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/drivkit/internal/config"
)

var audioReviewCmd = &cobra.Command{
	Use:   "audio-review",
	Short: "Review a dictated note against repository context",
	Long: `Transcribe an audio file and review the transcript against the
repository's recent history, like 'drivkit review'.`,
	Example: `  # Review a recorded note
  drivkit audio-review --file thoughts.m4a`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolved(cmd, config.CommandIdentity{Name: config.CommandAudioReview}, buildRawInput(cmd))
	},
}

func init() {
	f := audioReviewCmd.Flags()
	f.String("file", "", "audio file to transcribe")
	f.Bool("keep-temp", false, "keep intermediate transcription files")
	f.String("directory", "", "directory of audio files to review")
	addReviewContextFlags(f)
	rootCmd.AddCommand(audioReviewCmd)
}
