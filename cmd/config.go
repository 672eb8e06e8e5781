package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ideaspaper/xcurl/internal/filesystem"
	"github.com/ideaspaper/xcurl/internal/terminal"
	"github.com/ideaspaper/xcurl/pkg/config"
	"github.com/ideaspaper/xcurl/pkg/errors"
	"github.com/ideaspaper/xcurl/pkg/highlight"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cfg.Path())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configShowCmd, configPathCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	text, err := cfg.ToYAML()
	if err != nil {
		return err
	}
	if terminal.ColorMode(os.Stdout, !cfg.ShowColors) {
		if text, err = highlight.Highlight(text, "yaml", cfg.Theme); err != nil {
			return err
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := cfg.Path()
	if filesystem.Exists(filesystem.Default, path) && !forceInit {
		return errors.NewConfigError("config", path, "file exists (use --force to overwrite)")
	}

	fresh := config.DefaultConfig()
	fresh.SetPath(path)
	if err := fresh.Save(); err != nil {
		return err
	}
	successColor.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	return nil
}
