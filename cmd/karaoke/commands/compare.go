package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhuang314/telegramkaraoke/pkg/cli"
	"github.com/jhuang314/telegramkaraoke/pkg/karaoke"
)

var compareSong string

var compareCmd = &cobra.Command{
	Use:   "compare [reference] <candidate>",
	Short: "Score a performance against a reference recording",
	Long: `Compare extracts features for the reference and candidate tracks in
parallel and prints the composite score out of 100000. Lyrics carry most
of the weight; pitch and tempo the rest. A take less than half the
reference's length (or vice versa) scores 0.

The reference is either an explicit track path or, with --song, the
built-in reference recording of a catalog song.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ref, cand string
		switch {
		case compareSong != "" && len(args) == 1:
			song, ok := karaoke.LookupSong(compareSong)
			if !ok {
				return fmt.Errorf("unknown song %q; run 'karaoke songs' for the catalog", compareSong)
			}
			ref, cand = song.Reference, args[0]
		case compareSong == "" && len(args) == 2:
			ref, cand = args[0], args[1]
		default:
			return fmt.Errorf("pass either --song and a candidate, or a reference and a candidate")
		}

		ctx := cmd.Context()
		engine, _, closer, err := newEngine(ctx)
		if err != nil {
			return err
		}
		defer closer()

		score, err := engine.Compare(ctx, ref, cand)
		if err != nil {
			return err
		}

		styles := cli.NewStyles(cli.DefaultTheme)
		fmt.Println(styles.RenderScore(score, karaoke.MaxScore))
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVarP(&compareSong, "song", "s", "", "score against a built-in song's reference recording")
	rootCmd.AddCommand(compareCmd)
}
