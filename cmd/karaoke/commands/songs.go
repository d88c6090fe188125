package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhuang314/telegramkaraoke/pkg/cli"
	"github.com/jhuang314/telegramkaraoke/pkg/karaoke"
)

var songsCmd = &cobra.Command{
	Use:   "songs [title]",
	Short: "List the built-in songs or show one song's lyrics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		styles := cli.NewStyles(cli.DefaultTheme)

		if len(args) == 1 {
			song, ok := karaoke.LookupSong(args[0])
			if !ok {
				return fmt.Errorf("unknown song %q; run 'karaoke songs' for the catalog", args[0])
			}
			fmt.Println(styles.Title.Render(song.Title))
			fmt.Println(styles.Help.Render("reference: " + song.Reference))
			for i, line := range song.Lyrics {
				fmt.Printf("%s %s\n", styles.Help.Render(fmt.Sprintf("%2d.", i+1)), line)
			}
			return nil
		}

		var pairs [][2]string
		for _, song := range karaoke.Songs() {
			pairs = append(pairs, [2]string{song.Title, fmt.Sprintf("%d lines", song.Lines())})
		}
		fmt.Print(styles.RenderKV(pairs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(songsCmd)
}
