package models

import (
	"net/url"
	"strings"
)

// Request is a fully assembled outgoing HTTP request.
type Request struct {
	Method string
	// URL is scheme, host and path; the query lives in Query.
	URL     string
	Query   []KV
	Headers []KV // lower-case names, in insertion order
	Body    []byte
	Proto   string
}

// NewRequest creates a new Request. A nil headers slice is replaced with an empty one.
func NewRequest(method, rawURL string, query, headers []KV, body []byte) *Request {
	if headers == nil {
		headers = []KV{}
	}
	return &Request{
		Method:  strings.ToUpper(method),
		URL:     rawURL,
		Query:   query,
		Headers: headers,
		Body:    body,
		Proto:   "HTTP/1.1",
	}
}

// Header returns the value of the named header (case-insensitive).
func (r *Request) Header(name string) (string, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Key, name) {
			return h.Value, true
		}
	}
	return "", false
}

// RawQuery encodes Query in order, keeping repeated keys.
func (r *Request) RawQuery() string {
	var b strings.Builder
	for i, kv := range r.Query {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}

// FullURL returns URL with the encoded query appended.
func (r *Request) FullURL() string {
	q := r.RawQuery()
	if q == "" {
		return r.URL
	}
	return r.URL + "?" + q
}

// Path returns the escaped path component of URL, "/" when empty.
func (r *Request) Path() string {
	u, err := url.Parse(r.URL)
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.EscapedPath()
}
