// Package main is the entry point for the karaoke CLI.
//
// Usage:
//
//	karaoke [flags] <command> [args]
//
// Commands:
//
//	songs      - List built-in songs and their lyrics
//	assemble   - Glue per-line voice clips into one combined take
//	transcribe - Print the normalized transcript of a track
//	extract    - Extract and cache a track's feature record
//	compare    - Score a performance against a reference recording
//	config     - Configuration management (init, show)
//	version    - Show version information
package main

import (
	"os"

	"github.com/jhuang314/telegramkaraoke/cmd/karaoke/commands"
	"github.com/jhuang314/telegramkaraoke/pkg/cli"
)

func main() {
	if err := commands.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
