package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ideaspaper/xcurl/internal/terminal"
	"github.com/ideaspaper/xcurl/pkg/config"
	"github.com/ideaspaper/xcurl/pkg/errors"
	"github.com/ideaspaper/xcurl/pkg/highlight"
)

var (
	// Global flags
	cfgFile     string
	verbose     bool
	noColor     bool
	themeName   string
	profileName string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "xcurl",
	Short: "A friendly command-line HTTP client",
	Long: `xcurl sends HTTP requests built from a URL and key/value tokens and
prints the response with syntax highlighting.

Tokens:
  key:value    request header (ct is short for content-type)
  key==value   query parameter
  key=value    body field

Examples:
  # GET with a query parameter
  xcurl get httpbin.org/get page==2

  # POST a JSON body with a header
  xcurl post httpbin.org/post name=bob x-token:abc

  # Send a form instead of JSON
  xcurl post httpbin.org/post --form name=bob

  # Show the request without sending it
  xcurl put example.test/items/1 name=bob --offline

  # Run a request from the "dev" profile
  xcurl profile run dev list`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.xcurl/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "highlight theme (see 'xcurl themes')")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "profile whose common headers and query apply")

	_ = rootCmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return highlight.Default().Themes(), cobra.ShellCompDirectiveNoFileComp
	})
}

// loadConfig loads the config file and applies the global flags over it.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadConfigFromFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	if themeName != "" {
		cfg.Theme = themeName
	}
	if noColor {
		cfg.ShowColors = false
	}
	if err := highlight.ValidateTheme(cfg.Theme); err != nil {
		return nil, err
	}

	setColors(terminal.ColorMode(os.Stderr, !cfg.ShowColors))
	infof("config: %s", cfg.Path())
	return cfg, nil
}
