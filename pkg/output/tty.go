package output

import (
	"strings"

	"github.com/fatih/color"

	"github.com/ideaspaper/xcurl/pkg/highlight"
	"github.com/ideaspaper/xcurl/pkg/models"
)

// headersKind is the syntax kind header blocks are highlighted as.
const headersKind = "yaml"

// TTYRenderer highlights the streams that are terminals and leaves the
// others plain.
type TTYRenderer struct {
	stdoutColor bool
	stderrColor bool
	theme       string
}

var _ Renderer = (*TTYRenderer)(nil)

// Colors for the request and status lines. They are always enabled: the
// renderer has already decided the stream is coloured.
var (
	methodColor       = enabled(color.FgYellow)
	pathColor         = enabled(color.FgWhite)
	versionColor      = enabled(color.FgGreen)
	statusSuccess     = enabled(color.FgGreen, color.Bold)
	statusRedirect    = enabled(color.FgYellow, color.Bold)
	statusClientError = enabled(color.FgRed, color.Bold)
	statusServerError = enabled(color.FgRed, color.Bold)
)

func enabled(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// RenderResponse implements Renderer.
func (r *TTYRenderer) RenderResponse(resp *models.Response) (Rendered, error) {
	kind, text, err := formatResponseBody(resp)
	if err != nil {
		return Rendered{}, err
	}

	var out Rendered
	if text != nil {
		out.Stdout, err = r.paint(r.stdoutColor, *text, kind)
		if err != nil {
			return Rendered{}, err
		}
	}

	statusLine := resp.StatusLine()
	if r.stderrColor {
		if c := statusColor(resp.StatusCode); c != nil {
			statusLine = c.Sprint(statusLine)
		}
	}
	headers, err := r.paint(r.stderrColor, headerText(responseHeaders(resp)), headersKind)
	if err != nil {
		return Rendered{}, err
	}
	out.Stderr = statusLine + "\n" + headers
	return out, nil
}

// RenderRequest implements Renderer.
func (r *TTYRenderer) RenderRequest(req *models.Request) (Rendered, error) {
	kind, text, err := formatRequestBody(req)
	if err != nil {
		return Rendered{}, err
	}

	var b strings.Builder
	if r.stderrColor {
		b.WriteString(methodColor.Sprint(req.Method) + " " + pathColor.Sprint(requestTarget(req)) + " " + versionColor.Sprint(req.Proto))
	} else {
		b.WriteString(req.Method + " " + requestTarget(req) + " " + req.Proto)
	}
	b.WriteString("\n")

	headers, err := r.paint(r.stderrColor, headerText(req.Headers), headersKind)
	if err != nil {
		return Rendered{}, err
	}
	b.WriteString(headers)

	if text != nil {
		painted, err := r.paint(r.stderrColor, withNewline(*text), kind)
		if err != nil {
			return Rendered{}, err
		}
		b.WriteString(painted)
	}
	return Rendered{Stderr: b.String()}, nil
}

func (r *TTYRenderer) paint(on bool, text, kind string) (string, error) {
	if !on || text == "" {
		return text, nil
	}
	return highlight.Highlight(text, kind, r.theme)
}

// statusColor returns the color for a status code class
func statusColor(code int) *color.Color {
	switch {
	case code >= 200 && code < 300:
		return statusSuccess
	case code >= 300 && code < 400:
		return statusRedirect
	case code >= 400 && code < 500:
		return statusClientError
	case code >= 500:
		return statusServerError
	default:
		return nil
	}
}
