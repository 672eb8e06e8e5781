package output

import (
	"strings"

	"github.com/ideaspaper/xcurl/pkg/models"
)

// PlainRenderer renders without any terminal escapes.
type PlainRenderer struct{}

var _ Renderer = PlainRenderer{}

// RenderResponse implements Renderer.
func (PlainRenderer) RenderResponse(resp *models.Response) (Rendered, error) {
	_, text, err := formatResponseBody(resp)
	if err != nil {
		return Rendered{}, err
	}

	var out Rendered
	if text != nil {
		out.Stdout = *text
	}
	out.Stderr = resp.StatusLine() + "\n" + headerText(responseHeaders(resp))
	return out, nil
}

// RenderRequest implements Renderer.
func (PlainRenderer) RenderRequest(req *models.Request) (Rendered, error) {
	_, text, err := formatRequestBody(req)
	if err != nil {
		return Rendered{}, err
	}

	var b strings.Builder
	b.WriteString(req.Method + " " + requestTarget(req) + " " + req.Proto + "\n")
	b.WriteString(headerText(req.Headers))
	if text != nil {
		b.WriteString(withNewline(*text))
	}
	return Rendered{Stderr: b.String()}, nil
}
