package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ideaspaper/xcurl/internal/constants"
	"github.com/ideaspaper/xcurl/internal/filesystem"
	"github.com/ideaspaper/xcurl/internal/terminal"
	"github.com/ideaspaper/xcurl/pkg/client"
	"github.com/ideaspaper/xcurl/pkg/config"
	"github.com/ideaspaper/xcurl/pkg/errors"
	"github.com/ideaspaper/xcurl/pkg/executor"
	"github.com/ideaspaper/xcurl/pkg/output"
	"github.com/ideaspaper/xcurl/pkg/params"
	"github.com/ideaspaper/xcurl/pkg/profile"
)

var (
	methodFlag    string
	formFlag      bool
	multipartFlag bool
	offlineFlag   bool
	timeoutFlag   time.Duration
)

// httpCmd sends a request with the method given by --method
var httpCmd = &cobra.Command{
	Use:   "http URL [TOKENS...]",
	Short: "Send a request with any method",
	Long: `Send an HTTP request. The method defaults to GET and can be set with --method.

Examples:
  xcurl http -m OPTIONS example.test/items
  xcurl http -m POST example.test/items name=bob`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(cmd, strings.ToUpper(methodFlag), args)
	},
}

func newMethodCommand(method string) *cobra.Command {
	name := strings.ToLower(method)
	return &cobra.Command{
		Use:   name + " URL [TOKENS...]",
		Short: fmt.Sprintf("Send a %s request", method),
		Example: fmt.Sprintf("  xcurl %s example.test/items x-token:abc page==2 name=bob", name),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, method, args)
		},
	}
}

func init() {
	commands := []*cobra.Command{httpCmd}
	for _, m := range []string{
		constants.MethodGET, constants.MethodPOST, constants.MethodPUT,
		constants.MethodDELETE, constants.MethodPATCH, constants.MethodHEAD,
	} {
		commands = append(commands, newMethodCommand(m))
	}

	httpCmd.Flags().StringVarP(&methodFlag, "method", "m", constants.MethodGET, "HTTP method")
	for _, c := range commands {
		addRequestFlags(c)
		rootCmd.AddCommand(c)
	}
}

// addRequestFlags registers the flags shared by every command that sends
// a request.
func addRequestFlags(c *cobra.Command) {
	c.Flags().BoolVarP(&formFlag, "form", "F", false, "send body fields as application/x-www-form-urlencoded")
	c.Flags().BoolVarP(&multipartFlag, "multipart", "f", false, "send body fields as multipart/form-data")
	c.Flags().BoolVar(&offlineFlag, "offline", false, "print the request instead of sending it")
	c.Flags().DurationVar(&timeoutFlag, "timeout", 0, "request timeout, e.g. 5s (overrides config)")
}

func runRequest(cmd *cobra.Command, method string, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	defaults := params.Defaults{Headers: cfg.HeaderDefaults()}
	if profileName != "" {
		p, err := loadProfile(cfg, profileName)
		if err != nil {
			return err
		}
		defaults = layerDefaults(defaults, p.CommonDefaults())
	}

	return execute(cmd, cfg, method, args[0], args[1:], defaults)
}

func loadProfile(cfg *config.Config, name string) (*profile.Profile, error) {
	path, err := cfg.ProfilePath(name)
	if err != nil {
		return nil, err
	}
	infof("profile: %s", path)
	return profile.Load(filesystem.Default, path)
}

// layerDefaults puts top over base; later entries win when aggregated.
func layerDefaults(base, top params.Defaults) params.Defaults {
	return params.Defaults{
		Headers: append(base.Headers, top.Headers...),
		Query:   append(base.Query, top.Query...),
		Body:    append(base.Body, top.Body...),
	}
}

// execute runs one request through the executor and writes the result.
func execute(cmd *cobra.Command, cfg *config.Config, method, rawURL string, tokens []string, defaults params.Defaults) error {
	if formFlag && multipartFlag {
		warnf("both --form and --multipart given, sending a url-encoded form")
	}
	if timeoutFlag > 0 {
		cfg.TimeoutMs = int(timeoutFlag.Milliseconds())
	}

	var transport client.Transport
	if !offlineFlag {
		httpClient, err := client.NewHttpClient(cfg.ToClientConfig())
		if err != nil {
			return errors.Wrap(err, "failed to create HTTP client")
		}
		transport = httpClient
	}

	renderer := output.NewRenderer(output.Options{
		StdoutColor: terminal.ColorMode(os.Stdout, !cfg.ShowColors),
		StderrColor: terminal.ColorMode(os.Stderr, !cfg.ShowColors),
		Theme:       cfg.Theme,
	})

	exec := executor.New(transport, renderer, executor.Options{
		Method:    method,
		Form:      formFlag,
		Multipart: multipartFlag,
		Offline:   offlineFlag,
		Defaults:  defaults,
		LogFunc:   infof,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := exec.Execute(ctx, rawURL, tokens)
	if err != nil {
		return err
	}
	return writeRendered(cmd.OutOrStdout(), cmd.ErrOrStderr(), out)
}

// writeRendered writes the stderr text, then the stdout text followed by a
// newline when it lacks one.
func writeRendered(stdout, stderr io.Writer, out output.Rendered) error {
	if _, err := io.WriteString(stderr, out.Stderr); err != nil {
		return errors.NewRenderError("write", err)
	}
	if out.Stdout == "" {
		return nil
	}
	text := out.Stdout
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if _, err := io.WriteString(stdout, text); err != nil {
		return errors.NewRenderError("write", err)
	}
	return nil
}
