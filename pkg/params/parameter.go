// Package params classifies command-line tokens and URL query strings into
// query, header and body parameters and merges them into one argument set.
package params

import (
	"strings"

	"github.com/ideaspaper/xcurl/pkg/errors"
	"github.com/ideaspaper/xcurl/pkg/models"
)

// Visitor handles each parameter variant. Adding a variant adds a method
// here, so every consumer fails to compile until it handles the new case.
type Visitor interface {
	VisitQuery(kv models.KV)
	VisitHeader(kv models.KV)
	VisitBody(kv models.KV)
}

// Parameter is a key/value pair classified as exactly one of Query, Header
// or Body. The set of variants is closed.
type Parameter interface {
	Pair() models.KV
	Accept(v Visitor)
	sealed()
}

// Query contributes to the URL query string.
type Query struct{ models.KV }

// Header contributes to the request headers.
type Header struct{ models.KV }

// Body contributes to the serialized request body.
type Body struct{ models.KV }

func (p Query) Pair() models.KV  { return p.KV }
func (p Header) Pair() models.KV { return p.KV }
func (p Body) Pair() models.KV   { return p.KV }

func (p Query) Accept(v Visitor)  { v.VisitQuery(p.KV) }
func (p Header) Accept(v Visitor) { v.VisitHeader(p.KV) }
func (p Body) Accept(v Visitor)   { v.VisitBody(p.KV) }

func (Query) sealed()  {}
func (Header) sealed() {}
func (Body) sealed()   {}

// NewQuery creates a Query parameter.
func NewQuery(key, value string) Parameter { return Query{models.KV{Key: key, Value: value}} }

// NewHeader creates a Header parameter.
func NewHeader(key, value string) Parameter { return Header{models.KV{Key: key, Value: value}} }

// NewBody creates a Body parameter.
func NewBody(key, value string) Parameter { return Body{models.KV{Key: key, Value: value}} }

// ParseParameter classifies a single command token.
//
// The first ':' or '=' in the token decides: "key:value" is a header,
// "key==value" a query parameter and "key=value" a body field. Key and
// value are trimmed; the value may itself contain ':' or '='.
func ParseParameter(token string) (Parameter, error) {
	idx := strings.IndexAny(token, ":=")
	if idx < 0 {
		return nil, errors.NewParameterError(token, "expected key:value, key==value or key=value")
	}

	key := strings.TrimSpace(token[:idx])
	if key == "" {
		return nil, errors.NewParameterError(token, "empty key")
	}
	rest := token[idx+1:]

	if token[idx] == ':' {
		return NewHeader(key, strings.TrimSpace(rest)), nil
	}
	if strings.HasPrefix(rest, "=") {
		return NewQuery(key, strings.TrimSpace(rest[1:])), nil
	}
	return NewBody(key, strings.TrimSpace(rest)), nil
}

// ParseParameters classifies tokens in order, stopping at the first invalid one.
func ParseParameters(tokens []string) ([]Parameter, error) {
	out := make([]Parameter, 0, len(tokens))
	for _, tok := range tokens {
		p, err := ParseParameter(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
