package commands

import (
	"github.com/spf13/cobra"

	"github.com/jhuang314/telegramkaraoke/pkg/cli"
)

var extractOutput string

var extractCmd = &cobra.Command{
	Use:   "extract <track>",
	Short: "Extract and cache the feature record of a track",
	Long: `Extract computes the feature record of a track (a work-dir-relative
path): tempo, duration, pitch statistics, and the normalized transcript.
The record is cached under the track's identity; a second run returns the
cached record without touching the audio or the transcription API.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		engine, _, closer, err := newEngine(ctx)
		if err != nil {
			return err
		}
		defer closer()

		rec, err := engine.Extract(ctx, args[0])
		if err != nil {
			return err
		}
		return cli.Output(rec, cli.OutputOptions{Format: cli.OutputFormat(extractOutput)})
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "yaml", "output format (yaml, json)")
	rootCmd.AddCommand(extractCmd)
}
