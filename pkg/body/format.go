package body

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/ideaspaper/xcurl/pkg/content"
	"github.com/ideaspaper/xcurl/pkg/errors"
)

// Syntax kinds used to pick a highlighter.
const (
	KindJSON = "json"
	KindXML  = "xml"
	KindHTML = "html"
	KindText = "txt"
)

// Format prepares a body for display and reports its syntax kind.
//
// A nil text yields ("", nil). JSON is validated and pretty-printed with
// two-space indentation, keeping key order; invalid JSON is a BodyError.
// Every other type is passed through unchanged.
func Format(text *string, t content.Type) (string, *string, error) {
	if text == nil {
		return "", nil, nil
	}

	switch t {
	case content.JSON:
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(strings.TrimSpace(*text)), "", "  "); err != nil {
			return "", nil, errors.NewBodyError(t.MIME(), err)
		}
		pretty := buf.String()
		return KindJSON, &pretty, nil
	case content.XML:
		return KindXML, text, nil
	case content.HTML:
		return KindHTML, text, nil
	default:
		return KindText, text, nil
	}
}
