package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ideaspaper/xcurl/internal/filesystem"
	"github.com/ideaspaper/xcurl/pkg/profile"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for xcurl.

To load completions:

Bash:
  $ source <(xcurl completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ xcurl completion bash > /etc/bash_completion.d/xcurl
  # macOS:
  $ xcurl completion bash > $(brew --prefix)/etc/bash_completion.d/xcurl

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ xcurl completion zsh > "${fpath[1]}/_xcurl"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ xcurl completion fish | source

  # To load completions for each session, execute once:
  $ xcurl completion fish > ~/.config/fish/completions/xcurl.fish

PowerShell:
  PS> xcurl completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> xcurl completion powershell > xcurl.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)

	profileShowCmd.ValidArgsFunction = completeProfiles
	profileRunCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		switch len(args) {
		case 0:
			return completeProfiles(cmd, args, toComplete)
		case 1:
			return completeRequests(args[0])
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	_ = rootCmd.RegisterFlagCompletionFunc("profile", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completeProfiles(cmd, nil, toComplete)
	})
}

// completeProfiles lists profile names in the profile directory.
func completeProfiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	dir, err := profileDir(cfg)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names, err := profile.List(filesystem.Default, dir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeRequests lists request names with their method and URL as the
// description.
func completeRequests(profileName string) ([]string, cobra.ShellCompDirective) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	p, err := loadProfile(cfg, profileName)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var out []string
	for _, name := range p.Names() {
		r := p.Requests[name]
		out = append(out, name+"\t"+r.MethodOrDefault()+" "+r.URL)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
