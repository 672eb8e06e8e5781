package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ideaspaper/xcurl/pkg/highlight"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List highlight themes",
	Long: `List the themes available for syntax highlighting. The current theme is
marked with *. Select one with --theme or the "theme" config key.`,
	Args: cobra.NoArgs,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	for _, name := range highlight.Default().Themes() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", printMarker(name == cfg.Theme), name)
	}
	return nil
}
