// File: protocol/headers.go

package protocol

// Headers maps header names to values. Duplicate names keep the last
// occurrence; iteration order is undefined, so two serializations of the
// same message may legally emit headers in different orders.
type Headers map[string]string

// Set inserts or replaces a header.
func (h Headers) Set(name, value string) {
	h[name] = value
}

// Get returns the value for name, or "" when absent.
func (h Headers) Get(name string) string {
	return h[name]
}

// Clone returns an independent copy.
func (h Headers) Clone() Headers {
	out := make(Headers, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}
