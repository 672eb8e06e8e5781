package params

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/ideaspaper/xcurl/internal/constants"
	"github.com/ideaspaper/xcurl/pkg/errors"
)

var schemePrefix = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)

// URLPart is a normalized URL without its query plus the query pairs that
// were split off it, in the order they appeared.
type URLPart struct {
	URL   string
	Query []Parameter
}

// ParseURL parses a URL argument. "http://" is prepended when the input has
// no scheme. The query component is moved into Query and the fragment dropped.
func ParseURL(raw string) (URLPart, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return URLPart{}, errors.NewURLError(raw, fmt.Errorf("empty url"))
	}
	if !schemePrefix.MatchString(s) {
		s = constants.DefaultScheme + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return URLPart{}, errors.NewURLError(raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return URLPart{}, errors.NewURLError(raw, fmt.Errorf("unsupported scheme %q", u.Scheme))
	}
	if u.Host == "" {
		return URLPart{}, errors.NewURLError(raw, fmt.Errorf("missing host"))
	}

	query, err := splitQuery(u.RawQuery)
	if err != nil {
		return URLPart{}, errors.NewURLError(raw, err)
	}

	u.Host = strings.ToLower(u.Host)
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	if u.Path == "" {
		u.Path = "/"
	}

	return URLPart{URL: u.String(), Query: query}, nil
}

// splitQuery decodes a raw query string left to right, keeping duplicates.
func splitQuery(raw string) ([]Parameter, error) {
	var out []Parameter
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		k, v, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, err
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			return nil, err
		}
		out = append(out, NewQuery(key, value))
	}
	return out, nil
}
