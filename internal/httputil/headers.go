// Package httputil provides helpers for ordered header lists.
package httputil

import (
	"strings"

	"github.com/ideaspaper/xcurl/pkg/models"
)

// GetHeader retrieves a header value case-insensitively.
// Returns the value and true if found, or empty string and false if not found.
func GetHeader(headers []models.KV, name string) (string, bool) {
	for _, h := range headers {
		if strings.EqualFold(h.Key, name) {
			return h.Value, true
		}
	}
	return "", false
}

// HasHeader checks if a header exists (case-insensitive).
func HasHeader(headers []models.KV, name string) bool {
	_, ok := GetHeader(headers, name)
	return ok
}

// SetDefaultHeader appends the header only when it is absent.
func SetDefaultHeader(headers []models.KV, name, value string) []models.KV {
	if HasHeader(headers, name) {
		return headers
	}
	return append(headers, models.KV{Key: name, Value: value})
}
