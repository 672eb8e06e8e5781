// Package body encodes outgoing body fields and formats bodies for display.
package body

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/ideaspaper/xcurl/pkg/content"
	"github.com/ideaspaper/xcurl/pkg/errors"
	"github.com/ideaspaper/xcurl/pkg/models"
)

// Encode serializes body fields for the negotiated content type.
//
// JSON produces a compact object of string values where a repeated key
// keeps its last value. Form and multipart produce a query-string encoding
// that keeps every field in order, including repeated keys and bracketed
// keys such as "tags[1]". No fields gives no body for those types. Other
// types fail with an EncodingError whether or not there are fields.
func Encode(fields []models.KV, t content.Type) ([]byte, error) {
	switch t {
	case content.JSON:
		if len(fields) == 0 {
			return nil, nil
		}
		return encodeJSON(fields)
	case content.FormURLEncoded, content.Multipart:
		if len(fields) == 0 {
			return nil, nil
		}
		return []byte(encodeForm(fields)), nil
	default:
		return nil, errors.NewEncodingError(t.MIME())
	}
}

func encodeJSON(fields []models.KV) ([]byte, error) {
	obj := make(map[string]string, len(fields))
	for _, kv := range fields {
		obj[kv.Key] = kv.Value
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(obj); err != nil {
		return nil, errors.Wrap(err, "failed to encode json body")
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

var bracketUnescaper = strings.NewReplacer("%5B", "[", "%5D", "]")

func encodeForm(fields []models.KV) string {
	var b strings.Builder
	for i, kv := range fields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(bracketUnescaper.Replace(url.QueryEscape(kv.Key)))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}
