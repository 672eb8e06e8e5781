// Package constants provides common constants used throughout the application.
package constants

// HTTP Header names (lower-case, the form headers are stored in)
const (
	HeaderContentType     = "content-type"
	HeaderContentEncoding = "content-encoding"
	HeaderUserAgent       = "user-agent"
)

// HeaderAliases maps short header names accepted on the command line to
// the header they stand for.
var HeaderAliases = map[string]string{
	"ct": HeaderContentType,
	"ua": HeaderUserAgent,
}

// MIME types
const (
	MIMEApplicationJSON           = "application/json"
	MIMEApplicationXML            = "application/xml"
	MIMEApplicationFormURLEncoded = "application/x-www-form-urlencoded"
	MIMEMultipartFormData         = "multipart/form-data"
	MIMETextPlain                 = "text/plain"
	MIMETextHTML                  = "text/html"
	MIMETextXML                   = "text/xml"
)

// HTTP Methods
const (
	MethodGET     = "GET"
	MethodPOST    = "POST"
	MethodPUT     = "PUT"
	MethodDELETE  = "DELETE"
	MethodPATCH   = "PATCH"
	MethodHEAD    = "HEAD"
	MethodOPTIONS = "OPTIONS"
)

// Default values
const (
	DefaultScheme    = "http://"
	DefaultUserAgent = "xcurl-cli"
	DefaultTheme     = "monokai"
	DefaultTimeout   = 0 // No timeout
)
