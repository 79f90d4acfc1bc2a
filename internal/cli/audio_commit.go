package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/drivkit/internal/config"
)

var audioCommitCmd = &cobra.Command{
	Use:   "audio-commit",
	Short: "Dictate commit direction from an audio file",
	Long: `Transcribe an audio file and use the transcript to steer the commit
message, then commit like 'drivkit commit'.`,
	Example: `  # Use a recorded note
  drivkit audio-commit --file note.m4a`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolved(cmd, config.CommandIdentity{Name: config.CommandAudioCommit}, buildRawInput(cmd))
	},
}

func init() {
	f := audioCommitCmd.Flags()
	f.String("file", "", "audio file to transcribe")
	f.Bool("keep-temp", false, "keep intermediate transcription files")
	rootCmd.AddCommand(audioCommitCmd)
}
