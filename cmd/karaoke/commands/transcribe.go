package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <track>",
	Short: "Print the normalized transcript of a track in the work dir",
	Long: `Transcribe runs speech-to-text on a track (a work-dir-relative path)
and prints the normalized transcript: lowercased, punctuation stripped,
numbers spelled out. Results are cached per take; repeating the command
does not call the transcription API again.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		engine, _, closer, err := newEngine(ctx)
		if err != nil {
			return err
		}
		defer closer()

		text, err := engine.Transcript(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transcribeCmd)
}
