// Package output renders requests and responses into the text written to
// stdout and stderr.
package output

import (
	"maps"
	"slices"
	"strings"

	"github.com/ideaspaper/xcurl/pkg/body"
	"github.com/ideaspaper/xcurl/pkg/content"
	"github.com/ideaspaper/xcurl/pkg/models"
)

// Rendered is the text for the two output streams of one invocation.
// Stdout carries the body; Stderr carries the status line and headers, or
// the whole request in preview mode.
type Rendered struct {
	Stdout string
	Stderr string
}

// Renderer renders a received response or an outgoing request preview.
type Renderer interface {
	RenderResponse(resp *models.Response) (Rendered, error)
	RenderRequest(req *models.Request) (Rendered, error)
}

// Options selects how each stream is rendered.
type Options struct {
	// StdoutColor and StderrColor report whether each stream should be
	// highlighted, normally because it is an interactive terminal.
	StdoutColor bool
	StderrColor bool
	// Theme is the highlight theme; empty selects the default theme.
	Theme string
}

// NewRenderer returns the renderer for opts. It is chosen once; the plain
// renderer is used when neither stream is coloured.
func NewRenderer(opts Options) Renderer {
	if !opts.StdoutColor && !opts.StderrColor {
		return PlainRenderer{}
	}
	return &TTYRenderer{
		stdoutColor: opts.StdoutColor,
		stderrColor: opts.StderrColor,
		theme:       opts.Theme,
	}
}

// headerText renders headers as "key: value" lines.
func headerText(headers []models.KV) string {
	var b strings.Builder
	for _, h := range headers {
		b.WriteString(h.Key)
		b.WriteString(": ")
		b.WriteString(h.Value)
		b.WriteString("\n")
	}
	return b.String()
}

// responseHeaders flattens response headers into lower-case names sorted
// for consistent output, one line per value.
func responseHeaders(resp *models.Response) []models.KV {
	var out []models.KV
	for _, k := range slices.Sorted(maps.Keys(resp.Headers)) {
		for _, v := range resp.Headers[k] {
			out = append(out, models.KV{Key: strings.ToLower(k), Value: v})
		}
	}
	return out
}

// requestTarget is the path and query as sent on the request line.
func requestTarget(req *models.Request) string {
	if q := req.RawQuery(); q != "" {
		return req.Path() + "?" + q
	}
	return req.Path()
}

func formatResponseBody(resp *models.Response) (string, *string, error) {
	return body.Format(resp.Text(), content.FromResponse(resp.ContentType()))
}

func formatRequestBody(req *models.Request) (string, *string, error) {
	if len(req.Body) == 0 {
		return "", nil, nil
	}
	ct, _ := req.Header("content-type")
	t, _ := content.Parse(ct)
	text := string(req.Body)
	return body.Format(&text, t)
}

func withNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
