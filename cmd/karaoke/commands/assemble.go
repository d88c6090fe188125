package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jhuang314/telegramkaraoke/pkg/cli"
	"github.com/jhuang314/telegramkaraoke/pkg/storage"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble <clip.ogg> [clip.ogg ...]",
	Short: "Glue per-line voice clips into one combined take",
	Long: `Assemble imports the given Ogg Opus voice clips into the work dir
under a fresh take identity, concatenates them in argument order with no
gaps, and writes the combined take next to them. The printed path is what
'karaoke compare' scores.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		engine, store, closer, err := newEngine(ctx)
		if err != nil {
			return err
		}
		defer closer()

		// One take identity groups the clips and their combined result,
		// so they share a transcript cache entry.
		take := strings.ReplaceAll(uuid.NewString(), "-", "")
		clips := make([]string, 0, len(args))
		for i, local := range args {
			dst := fmt.Sprintf("voice/%s_%d%s", take, i+1, filepath.Ext(local))
			if err := importFile(ctx, store, local, dst); err != nil {
				return err
			}
			clips = append(clips, dst)
		}

		out, err := engine.Assemble(ctx, clips)
		if err != nil {
			return err
		}
		cli.PrintSuccess("assembled %d clips into %s", len(clips), out)
		return nil
	},
}

// importFile copies a local file into the artifact store.
func importFile(ctx context.Context, store storage.FileStore, local, dst string) error {
	src, err := os.Open(local)
	if err != nil {
		return fmt.Errorf("open clip: %w", err)
	}
	defer src.Close()

	w, err := store.Write(ctx, dst)
	if err != nil {
		return fmt.Errorf("import %s: %w", local, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		w.Close()
		return fmt.Errorf("import %s: %w", local, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("import %s: %w", local, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(assembleCmd)
}
