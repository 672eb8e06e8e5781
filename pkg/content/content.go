// Package content negotiates the content type of outgoing and received bodies.
package content

import (
	"strings"

	"github.com/ideaspaper/xcurl/internal/constants"
)

// Type is the negotiated body content type.
type Type int

const (
	JSON Type = iota
	FormURLEncoded
	Multipart
	XML
	HTML
	Text
)

var mimeTypes = map[Type]string{
	JSON:           constants.MIMEApplicationJSON,
	FormURLEncoded: constants.MIMEApplicationFormURLEncoded,
	Multipart:      constants.MIMEMultipartFormData,
	XML:            constants.MIMEApplicationXML,
	HTML:           constants.MIMETextHTML,
	Text:           constants.MIMETextPlain,
}

// MIME returns the canonical MIME type for t.
func (t Type) MIME() string {
	return mimeTypes[t]
}

func (t Type) String() string {
	return t.MIME()
}

// Parse matches a Content-Type header value against the known types.
// Parameters such as charset are ignored.
func Parse(headerValue string) (Type, bool) {
	mime, _, _ := strings.Cut(headerValue, ";")
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case constants.MIMEApplicationJSON:
		return JSON, true
	case constants.MIMEApplicationFormURLEncoded:
		return FormURLEncoded, true
	case constants.MIMEMultipartFormData:
		return Multipart, true
	case constants.MIMEApplicationXML, constants.MIMETextXML:
		return XML, true
	case constants.MIMETextHTML:
		return HTML, true
	case constants.MIMETextPlain:
		return Text, true
	}
	return JSON, false
}

// Negotiation is the outcome of choosing the outgoing content type.
type Negotiation struct {
	Type Type
	// Header is the content-type header value to send.
	Header string
	// Known is false when an explicit header names a type outside the
	// enumeration; no body can be encoded for it.
	Known bool
	// Explicit is true when the value came from a user-supplied header.
	Explicit bool
}

// ForRequest picks the outgoing content type: an explicit content-type
// header wins, then the form flag, then the multipart flag, then JSON.
func ForRequest(explicit string, hasExplicit, form, multipart bool) Negotiation {
	switch {
	case hasExplicit:
		t, ok := Parse(explicit)
		return Negotiation{Type: t, Header: explicit, Known: ok, Explicit: true}
	case form:
		return Negotiation{Type: FormURLEncoded, Header: FormURLEncoded.MIME(), Known: true}
	case multipart:
		return Negotiation{Type: Multipart, Header: Multipart.MIME(), Known: true}
	default:
		return Negotiation{Type: JSON, Header: JSON.MIME(), Known: true}
	}
}

// FromResponse determines the type of a received body. An absent or
// unrecognised content-type is treated as JSON.
func FromResponse(headerValue string) Type {
	t, _ := Parse(headerValue)
	return t
}
