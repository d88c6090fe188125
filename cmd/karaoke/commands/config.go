package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhuang314/telegramkaraoke/cmd/karaoke/internal/config"
	"github.com/jhuang314/telegramkaraoke/pkg/cli"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if configPath != "" {
			cfg.Path = configPath
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		cli.PrintSuccess("wrote %s", cfg.Path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		if _, statErr := os.Stat(cfg.Path); statErr != nil {
			fmt.Fprintf(os.Stderr, "(no config file at %s, showing defaults)\n", cfg.Path)
		}
		return cli.Output(cfg, cli.OutputOptions{Format: cli.FormatYAML})
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
