// Package profile loads named request collections from YAML documents.
//
// A profile looks like:
//
//	common:
//	  query: {page: 1}
//	  headers: {x-token: abc}
//	requests:
//	  list:
//	    method: GET
//	    url: example.test/items
//	    query: {tags: [a, b]}
//	    body: {name: bob, meta: {age: 3}}
//
// Nested query and body documents are flattened into bracket notation
// ("tags[0]", "meta[age]") with keys in sorted order.
package profile

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ideaspaper/xcurl/internal/constants"
	"github.com/ideaspaper/xcurl/internal/filesystem"
	"github.com/ideaspaper/xcurl/internal/paths"
	"github.com/ideaspaper/xcurl/pkg/errors"
	"github.com/ideaspaper/xcurl/pkg/models"
	"github.com/ideaspaper/xcurl/pkg/params"
)

// Profile is a set of named requests sharing common defaults.
type Profile struct {
	Common   Common             `yaml:"common"`
	Requests map[string]Request `yaml:"requests"`
}

// Common holds the query and headers every request in a profile starts from.
type Common struct {
	Query   any               `yaml:"query,omitempty"`
	Headers map[string]string `yaml:"headers"`
}

// Request is one named request of a profile.
type Request struct {
	Method  string            `yaml:"method,omitempty"`
	URL     string            `yaml:"url"`
	Headers map[string]string `yaml:"headers,omitempty"`
	Query   any               `yaml:"query,omitempty"`
	Body    any               `yaml:"body,omitempty"`
}

var validMethods = []string{
	constants.MethodGET, constants.MethodPOST, constants.MethodPUT, constants.MethodDELETE,
	constants.MethodPATCH, constants.MethodHEAD, constants.MethodOPTIONS,
}

// Empty returns a profile with no requests.
func Empty() *Profile {
	return &Profile{
		Common:   Common{Headers: map[string]string{}},
		Requests: map[string]Request{},
	}
}

// Load reads and validates the profile at path.
func Load(fsys filesystem.FileSystem, path string) (*Profile, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read profile %s", path)
	}
	p, err := FromString(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "profile %s", path)
	}
	return p, nil
}

// FromString parses and validates a profile document.
func FromString(content string) (*Profile, error) {
	p := Empty()
	if err := yaml.Unmarshal([]byte(content), p); err != nil {
		return nil, errors.NewConfigError("profile", "", err.Error())
	}
	if p.Common.Headers == nil {
		p.Common.Headers = map[string]string{}
	}
	if p.Requests == nil {
		p.Requests = map[string]Request{}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks every request has a URL and a known method, and that
// query and body documents are mappings.
func (p *Profile) Validate() error {
	if !isMapping(p.Common.Query) {
		return errors.NewConfigError("common.query", fmt.Sprint(p.Common.Query), "must be a mapping")
	}
	for _, name := range p.Names() {
		r := p.Requests[name]
		field := "requests." + name
		if strings.TrimSpace(r.URL) == "" {
			return errors.NewConfigError(field+".url", "", "must not be empty")
		}
		if !slices.Contains(validMethods, r.method()) {
			return errors.NewConfigError(field+".method", r.Method, "unknown method")
		}
		if !isMapping(r.Query) {
			return errors.NewConfigError(field+".query", fmt.Sprint(r.Query), "must be a mapping")
		}
		if !isMapping(r.Body) {
			return errors.NewConfigError(field+".body", fmt.Sprint(r.Body), "must be a mapping")
		}
	}
	return nil
}

// ToYAML renders the profile as a YAML document.
func (p *Profile) ToYAML() (string, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode profile")
	}
	return string(data), nil
}

// Names returns the request names in sorted order.
func (p *Profile) Names() []string {
	return slices.Sorted(maps.Keys(p.Requests))
}

// Lookup returns the named request.
func (p *Profile) Lookup(name string) (Request, error) {
	r, ok := p.Requests[name]
	if !ok {
		return Request{}, errors.NewConfigError("request", name, "not found in profile")
	}
	return r, nil
}

// Defaults layers the common section under the named request. A request
// header or query key overrides the common one of the same name.
func (p *Profile) Defaults(name string) (params.Defaults, error) {
	r, err := p.Lookup(name)
	if err != nil {
		return params.Defaults{}, err
	}
	d := params.Defaults{
		Headers: append(sortedPairs(p.Common.Headers), sortedPairs(r.Headers)...),
		Query:   append(Flatten(p.Common.Query), Flatten(r.Query)...),
		Body:    Flatten(r.Body),
	}
	return d, nil
}

// CommonDefaults returns only the common section, for ad hoc requests run
// against a profile.
func (p *Profile) CommonDefaults() params.Defaults {
	return params.Defaults{
		Headers: sortedPairs(p.Common.Headers),
		Query:   Flatten(p.Common.Query),
	}
}

// MethodOrDefault returns the request method, GET when unset.
func (r Request) MethodOrDefault() string {
	return r.method()
}

func (r Request) method() string {
	if r.Method == "" {
		return constants.MethodGET
	}
	return strings.ToUpper(r.Method)
}

// List returns the names of the profiles stored in dir.
func List(fsys filesystem.FileSystem, dir string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list profiles in %s", dir)
	}
	var names []string
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), paths.ProfileExt)
		if e.IsDir() || !ok || name == "config" {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Flatten turns a mapping into key/value pairs, writing nested mappings
// and sequences in bracket notation. Keys are visited in sorted order.
func Flatten(doc any) []models.KV {
	var out []models.KV
	flatten("", doc, &out)
	return out
}

func flatten(prefix string, v any, out *[]models.KV) {
	switch t := v.(type) {
	case nil:
		if prefix != "" {
			*out = append(*out, models.KV{Key: prefix, Value: ""})
		}
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(t)) {
			flatten(join(prefix, k), t[k], out)
		}
	case map[any]any:
		keys := make(map[string]any, len(t))
		for k, val := range t {
			keys[fmt.Sprint(k)] = val
		}
		flatten(prefix, keys, out)
	case []any:
		for i, item := range t {
			flatten(join(prefix, strconv.Itoa(i)), item, out)
		}
	default:
		*out = append(*out, models.KV{Key: prefix, Value: scalar(t)})
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "[" + key + "]"
}

func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func isMapping(v any) bool {
	switch v.(type) {
	case nil, map[string]any, map[any]any:
		return true
	}
	return false
}

func sortedPairs(m map[string]string) []models.KV {
	out := make([]models.KV, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out = append(out, models.KV{Key: k, Value: m[k]})
	}
	return out
}
