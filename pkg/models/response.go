package models

import (
	"net/http"
	"strconv"
)

// Response is the transport's view of a received HTTP response.
type Response struct {
	StatusCode int
	Status     string // e.g. "200 OK"
	Proto      string // e.g. "HTTP/1.1"
	Headers    http.Header
	Body       []byte
}

// NewResponse creates a new Response from an http.Response and its fully read body.
func NewResponse(resp *http.Response, body []byte) *Response {
	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Proto:      resp.Proto,
		Headers:    resp.Header.Clone(),
		Body:       body,
	}
}

// Text returns the body as text, or nil when the response has no body.
func (r *Response) Text() *string {
	if len(r.Body) == 0 {
		return nil
	}
	s := string(r.Body)
	return &s
}

// StatusLine returns e.g. "HTTP/1.1 200 OK".
func (r *Response) StatusLine() string {
	status := r.Status
	if status == "" {
		status = strconv.Itoa(r.StatusCode)
		if text := http.StatusText(r.StatusCode); text != "" {
			status += " " + text
		}
	}
	return r.Proto + " " + status
}

// ContentType returns the first Content-Type header value, or "".
func (r *Response) ContentType() string {
	return r.Headers.Get("Content-Type")
}
