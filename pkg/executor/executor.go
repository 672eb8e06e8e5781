// Package executor turns a URL and command tokens into a request, then
// either previews it or sends it and renders the response.
package executor

import (
	"context"

	"github.com/ideaspaper/xcurl/internal/constants"
	"github.com/ideaspaper/xcurl/internal/httputil"
	"github.com/ideaspaper/xcurl/pkg/body"
	"github.com/ideaspaper/xcurl/pkg/client"
	"github.com/ideaspaper/xcurl/pkg/content"
	"github.com/ideaspaper/xcurl/pkg/errors"
	"github.com/ideaspaper/xcurl/pkg/models"
	"github.com/ideaspaper/xcurl/pkg/output"
	"github.com/ideaspaper/xcurl/pkg/params"
)

// Options configures request execution behavior
type Options struct {
	// Method is the HTTP method; empty means GET.
	Method string
	// Form and Multipart select the body encoding when no content-type
	// header is given.
	Form      bool
	Multipart bool
	// Offline renders the request instead of sending it.
	Offline bool
	// Defaults are merged under the URL query and command tokens.
	Defaults params.Defaults
	// LogFunc is called with diagnostic messages (optional)
	LogFunc func(format string, args ...any)
}

// Executor assembles, sends and renders one request.
type Executor struct {
	transport client.Transport
	renderer  output.Renderer
	options   Options
}

// New creates a new Executor. transport may be nil in offline mode.
func New(transport client.Transport, renderer output.Renderer, opts Options) *Executor {
	return &Executor{
		transport: transport,
		renderer:  renderer,
		options:   opts,
	}
}

// Build parses rawURL and tokens and assembles the outgoing request.
// Nothing is sent.
func (e *Executor) Build(rawURL string, tokens []string) (*models.Request, error) {
	target, err := params.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	explicit, err := params.ParseParameters(tokens)
	if err != nil {
		return nil, err
	}

	args := params.Aggregate(target.Query, explicit, e.options.Defaults)

	ct, hasCT := args.Header(constants.HeaderContentType)
	neg := content.ForRequest(ct, hasCT, e.options.Form, e.options.Multipart)
	if neg.Explicit && (e.options.Form || e.options.Multipart) {
		e.log("content-type %q overrides the form flags", neg.Header)
	}

	fields := args.Body()
	if !neg.Known {
		return nil, errors.NewEncodingError(neg.Header)
	}

	payload, err := body.Encode(fields, neg.Type)
	if err != nil {
		return nil, err
	}

	headers := httputil.SetDefaultHeader(args.Headers(), constants.HeaderContentType, neg.Header)

	method := e.options.Method
	if method == "" {
		method = constants.MethodGET
	}
	return models.NewRequest(method, target.URL, args.Query(), headers, payload), nil
}

// Execute builds the request and renders it: the request itself in offline
// mode, otherwise the response received for it.
func (e *Executor) Execute(ctx context.Context, rawURL string, tokens []string) (output.Rendered, error) {
	req, err := e.Build(rawURL, tokens)
	if err != nil {
		return output.Rendered{}, err
	}

	if e.options.Offline {
		return e.renderer.RenderRequest(req)
	}
	if e.transport == nil {
		return output.Rendered{}, errors.NewRequestError("send", errors.Wrap(errors.ErrConfig, "no transport configured"))
	}

	e.log("%s %s", req.Method, req.FullURL())
	resp, err := e.transport.Submit(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return output.Rendered{}, errors.Wrap(errors.ErrCanceled, "request")
		}
		if !errors.Is(err, errors.ErrTransport) {
			err = errors.NewRequestErrorWithURL("send", req.Method, req.FullURL(), err)
		}
		return output.Rendered{}, err
	}
	e.log("%s", resp.StatusLine())

	return e.renderer.RenderResponse(resp)
}

func (e *Executor) log(format string, args ...any) {
	if e.options.LogFunc != nil {
		e.options.LogFunc(format, args...)
	}
}
