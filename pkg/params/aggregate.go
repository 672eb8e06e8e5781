package params

import (
	"strings"

	orderedmap "github.com/pb33f/ordered-map/v2"

	"github.com/ideaspaper/xcurl/internal/constants"
	"github.com/ideaspaper/xcurl/pkg/models"
)

// Defaults is the lowest-precedence layer of an argument set, typically
// loaded from a profile.
type Defaults struct {
	Headers []models.KV
	Query   []models.KV
	Body    []models.KV
}

// Arguments is the merged, partitioned parameter set of one invocation.
// It is not modified after Aggregate returns.
type Arguments struct {
	headers *orderedmap.OrderedMap[string, string]
	query   *orderedmap.OrderedMap[string, string]
	body    []models.KV
}

// Aggregate merges parameters into headers, query and body.
//
// Headers are keyed case-insensitively and the last write wins. Query keys
// are seeded from defaults, then urlQuery, then the explicit query
// parameters; a later value overrides an earlier one but keeps the key's
// first position. Body fields keep their order and are never deduplicated.
func Aggregate(urlQuery, explicit []Parameter, defaults Defaults) *Arguments {
	a := &aggregator{args: &Arguments{
		headers: orderedmap.New[string, string](),
		query:   orderedmap.New[string, string](),
	}}

	for _, kv := range defaults.Headers {
		a.VisitHeader(kv)
	}
	for _, kv := range defaults.Query {
		a.VisitQuery(kv)
	}
	for _, kv := range defaults.Body {
		a.VisitBody(kv)
	}
	for _, p := range urlQuery {
		p.Accept(a)
	}
	for _, p := range explicit {
		p.Accept(a)
	}
	return a.args
}

type aggregator struct {
	args *Arguments
}

func (a *aggregator) VisitQuery(kv models.KV) {
	a.args.query.Set(kv.Key, kv.Value)
}

func (a *aggregator) VisitHeader(kv models.KV) {
	a.args.headers.Set(NormalizeHeaderName(kv.Key), kv.Value)
}

func (a *aggregator) VisitBody(kv models.KV) {
	a.args.body = append(a.args.body, kv)
}

// NormalizeHeaderName lower-cases a header name and expands short aliases
// such as "ct" for content-type.
func NormalizeHeaderName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if full, ok := constants.HeaderAliases[name]; ok {
		return full
	}
	return name
}

// Headers returns the merged headers in insertion order.
func (a *Arguments) Headers() []models.KV {
	return pairs(a.headers)
}

// Header returns a header value by name (case-insensitive).
func (a *Arguments) Header(name string) (string, bool) {
	return a.headers.Get(NormalizeHeaderName(name))
}

// Query returns the merged query parameters in order.
func (a *Arguments) Query() []models.KV {
	return pairs(a.query)
}

// Body returns a copy of the body fields in encounter order.
func (a *Arguments) Body() []models.KV {
	out := make([]models.KV, len(a.body))
	copy(out, a.body)
	return out
}

func pairs(m *orderedmap.OrderedMap[string, string]) []models.KV {
	out := make([]models.KV, 0, m.Len())
	for p := m.Oldest(); p != nil; p = p.Next() {
		out = append(out, models.KV{Key: p.Key, Value: p.Value})
	}
	return out
}
