package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ideaspaper/xcurl/internal/filesystem"
	"github.com/ideaspaper/xcurl/internal/terminal"
	"github.com/ideaspaper/xcurl/pkg/config"
	"github.com/ideaspaper/xcurl/pkg/errors"
	"github.com/ideaspaper/xcurl/pkg/highlight"
	"github.com/ideaspaper/xcurl/pkg/params"
	"github.com/ideaspaper/xcurl/pkg/profile"
	"github.com/ideaspaper/xcurl/pkg/tui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Work with request profiles",
	Long: `Profiles are YAML files in ~/.xcurl (or the configured profileDir) holding
named requests and the headers and query they share:

  common:
    headers: {x-token: abc}
    query: {page: 1}
  requests:
    list:
      url: example.test/items
    create:
      method: POST
      url: example.test/items
      body: {name: bob}`,
}

var profileListCmd = &cobra.Command{
	Use:   "list [profile]",
	Short: "List available profiles, or the requests in one profile",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show <profile>",
	Short: "Print a profile as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

var profileRunCmd = &cobra.Command{
	Use:   "run <profile> [request] [TOKENS...]",
	Short: "Send a request defined in a profile",
	Long: `Send a named request from a profile. Extra tokens are merged over the
profile values. Without a request name an interactive selector is shown.

Examples:
  xcurl profile run dev list
  xcurl profile run dev create name=alice --offline
  xcurl profile run dev`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProfileRun,
}

func init() {
	profileCmd.AddCommand(profileListCmd, profileShowCmd, profileRunCmd)
	addRequestFlags(profileRunCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		return listRequests(cmd, cfg, args[0])
	}
	dir, err := profileDir(cfg)
	if err != nil {
		return err
	}

	names, err := profile.List(filesystem.Default, dir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "No profiles found in %s\n", dir)
		return nil
	}

	headerColor.Fprintf(cmd.OutOrStdout(), "Profiles in %s:\n", dir)
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", printMarker(name == profileName), name)
	}
	return nil
}

func listRequests(cmd *cobra.Command, cfg *config.Config, name string) error {
	p, err := loadProfile(cfg, name)
	if err != nil {
		return err
	}

	width := 0
	for _, n := range p.Names() {
		width = max(width, len(n))
	}
	for _, n := range p.Names() {
		r := p.Requests[n]
		method := r.MethodOrDefault()
		fmt.Fprintf(cmd.OutOrStdout(), "%-*s  %s %s\n", width, n, getMethodColor(method).Sprintf("%-7s", method), r.URL)
	}
	return nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := loadProfile(cfg, args[0])
	if err != nil {
		return err
	}

	text, err := p.ToYAML()
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

func runProfileRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := loadProfile(cfg, args[0])
	if err != nil {
		return err
	}

	var name string
	var tokens []string
	if len(args) > 1 {
		name, tokens = args[1], args[2:]
	} else {
		if name, err = selectRequest(p, cfg.ShowColors); err != nil {
			return err
		}
	}

	req, err := p.Lookup(name)
	if err != nil {
		return err
	}
	defaults, err := p.Defaults(name)
	if err != nil {
		return err
	}
	infof("request %s: %s %s", name, req.MethodOrDefault(), req.URL)

	base := layerDefaults(params.Defaults{Headers: cfg.HeaderDefaults()}, defaults)
	return execute(cmd, cfg, req.MethodOrDefault(), req.URL, tokens, base)
}

// profileDir is the directory holding profile files.
func profileDir(cfg *config.Config) (string, error) {
	path, err := cfg.ProfilePath("_")
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}

func selectRequest(p *profile.Profile, showColors bool) (string, error) {
	if !terminal.IsTerminal(os.Stdin) || !terminal.IsTerminal(os.Stderr) {
		return "", errors.NewConfigError("request", "", "name required when not running in a terminal")
	}

	names := p.Names()
	choices := make([]tui.Choice, len(names))
	for i, n := range names {
		r := p.Requests[n]
		choices[i] = tui.Choice{Name: n, Method: r.MethodOrDefault(), URL: r.URL}
	}

	idx, err := tui.Run(choices, terminal.ColorMode(os.Stderr, !showColors), os.Stdin, os.Stderr)
	if err != nil {
		return "", err
	}
	return names[idx], nil
}
