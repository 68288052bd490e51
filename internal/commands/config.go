package commands

import (
	"fmt"

	"github.com/gerunddev/evned/internal/config"
	"github.com/gerunddev/evned/styles"
	"github.com/spf13/cobra"
)

// configCmd shows where the configuration lives and what it holds
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the configuration file and its settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config file: %s\n", config.ConfigPath())

		token := styles.DimStyle.Render("(not set)")
		if cfg.Token != "" {
			token = cfg.MaskedToken()
		}
		editorCmd := styles.DimStyle.Render("(not set)")
		if cfg.Editor != "" {
			editorCmd = cfg.Editor
		}

		fmt.Fprintf(out, "  token:   %s\n", token)
		fmt.Fprintf(out, "  editor:  %s\n", editorCmd)
		fmt.Fprintf(out, "  service: %s\n", cfg.BaseURL())
		if cfg.LogFile != "" {
			fmt.Fprintf(out, "  log:     %s\n", cfg.LogFile)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
