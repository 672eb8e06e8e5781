// Package errors provides custom error types and utilities for xcurl.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors that can be checked with errors.Is()
var (
	// ErrInvalidParameter indicates a command token that is not a key/value pair.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidURL indicates a URL that cannot be parsed.
	ErrInvalidURL = errors.New("invalid url")

	// ErrUnsupportedEncoding indicates there is no body encoder for a content type.
	ErrUnsupportedEncoding = errors.New("unsupported body encoding")

	// ErrMalformedBody indicates a body that does not conform to its content type.
	ErrMalformedBody = errors.New("malformed body")

	// ErrTransport indicates the request could not be exchanged with the server.
	ErrTransport = errors.New("transport error")

	// ErrRender indicates output could not be formatted or highlighted.
	ErrRender = errors.New("render error")

	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")

	// ErrCanceled indicates an operation was canceled.
	ErrCanceled = errors.New("operation canceled")
)

// ParameterError is returned when a command token cannot be classified.
type ParameterError struct {
	Token   string
	Message string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Token, e.Message)
}

// Is implements errors.Is for ParameterError.
func (e *ParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// NewParameterError creates a new ParameterError.
func NewParameterError(token, message string) *ParameterError {
	return &ParameterError{Token: token, Message: message}
}

// URLError is returned when a URL argument cannot be parsed.
type URLError struct {
	URL     string
	Wrapped error
}

func (e *URLError) Error() string {
	return fmt.Sprintf("invalid url %q: %v", e.URL, e.Wrapped)
}

func (e *URLError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is for URLError.
func (e *URLError) Is(target error) bool {
	return target == ErrInvalidURL
}

// NewURLError creates a new URLError.
func NewURLError(url string, err error) *URLError {
	return &URLError{URL: url, Wrapped: err}
}

// EncodingError names the content type no body encoder exists for.
type EncodingError struct {
	ContentType string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("unsupported body encoding: %s", e.ContentType)
}

// Is implements errors.Is for EncodingError.
func (e *EncodingError) Is(target error) bool {
	return target == ErrUnsupportedEncoding
}

// NewEncodingError creates a new EncodingError.
func NewEncodingError(contentType string) *EncodingError {
	return &EncodingError{ContentType: contentType}
}

// BodyError is returned when a body does not match its declared content type.
type BodyError struct {
	ContentType string
	Wrapped     error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("malformed %s body: %v", e.ContentType, e.Wrapped)
}

func (e *BodyError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is for BodyError.
func (e *BodyError) Is(target error) bool {
	return target == ErrMalformedBody
}

// NewBodyError creates a new BodyError.
func NewBodyError(contentType string, err error) *BodyError {
	return &BodyError{ContentType: contentType, Wrapped: err}
}

// RequestError represents an error that occurred while exchanging a request.
type RequestError struct {
	Op      string // Operation that failed (e.g., "send", "build", "read response")
	URL     string // URL of the request, if applicable
	Method  string // HTTP method, if applicable
	Wrapped error  // Underlying error
}

func (e *RequestError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("%s %s: %s: %v", e.Method, e.URL, e.Op, e.Wrapped)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Wrapped)
}

func (e *RequestError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is for RequestError.
func (e *RequestError) Is(target error) bool {
	return target == ErrTransport
}

// NewRequestError creates a new RequestError.
func NewRequestError(op string, err error) *RequestError {
	return &RequestError{Op: op, Wrapped: err}
}

// NewRequestErrorWithURL creates a new RequestError with URL context.
func NewRequestErrorWithURL(op, method, url string, err error) *RequestError {
	return &RequestError{Op: op, Method: method, URL: url, Wrapped: err}
}

// RenderError represents a failure while formatting or highlighting output.
type RenderError struct {
	Stage   string // e.g. "highlight", "write"
	Wrapped error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Stage, e.Wrapped)
}

func (e *RenderError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is for RenderError.
func (e *RenderError) Is(target error) bool {
	return target == ErrRender
}

// NewRenderError creates a new RenderError.
func NewRenderError(stage string, err error) *RenderError {
	return &RenderError{Stage: stage, Wrapped: err}
}

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string
	Value   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Is implements errors.Is for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, value, message string) *ConfigError {
	return &ConfigError{Field: field, Value: value, Message: message}
}

// Wrap wraps an error with a message, using %w for proper error chaining.
// Returns nil if err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message.
// Returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
// This is a convenience re-export of errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience re-export of errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
