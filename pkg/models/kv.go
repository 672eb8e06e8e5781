// Package models holds the request and response values passed between the
// argument pipeline, the transport and the renderers.
package models

// KV is a single key/value pair of strings.
type KV struct {
	Key   string
	Value string
}

// String renders the pair as key=value.
func (kv KV) String() string {
	return kv.Key + "=" + kv.Value
}
