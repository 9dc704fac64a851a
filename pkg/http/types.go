// Package http provides the request method value and HTTP/1.1 request
// serialization for the shape HTTP client stack.
//
// Methods are validated HTTP tokens compared without regard to ASCII case.
// The well-known methods are process-wide singletons; NormalizeMethod maps
// any equal method to its singleton so it can be compared by pointer and so
// HTTP/3 transports can reuse its precomputed :method field line.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Methods are immutable and the singleton table is never modified.
//
// # Serialization APIs
//
//   - Marshal - HTTP/1.1 request bytes
//   - NewEncoder - streaming io.Writer-based serialization
//   - AppendQPACKMethod / AppendHPACKMethod - :method field lines for HTTP/3 and HTTP/2
package http

import (
	"strings"
)

// Request represents an outgoing HTTP/1.1 request message.
type Request struct {
	Method  *Method // normalized before serialization
	Path    string  // request-target "/api/users?q=foo"
	Version string  // "HTTP/1.1"
	Headers Headers // ordered, repeatable headers
	Body    []byte  // raw body (nil if none)
}

// Header represents a single HTTP header key-value pair.
type Header struct {
	Key   string
	Value string
}

// Headers is an ordered, repeatable list of HTTP headers.
// Field names are case-insensitive (RFC 9110 §5.1) but the given case is kept.
type Headers []Header

// Get returns the first header value for the given key (case-insensitive).
// Returns empty string if not found.
func (h Headers) Get(key string) string {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			return hdr.Value
		}
	}
	return ""
}

// Has reports whether a header with the given key is present (case-insensitive).
func (h Headers) Has(key string) bool {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			return true
		}
	}
	return false
}

// Set replaces the first header with the given key (case-insensitive) or appends if not found.
func (h *Headers) Set(key, value string) {
	for i, hdr := range *h {
		if strings.EqualFold(hdr.Key, key) {
			(*h)[i].Value = value
			// Remove any subsequent headers with same key
			j := i + 1
			for j < len(*h) {
				if strings.EqualFold((*h)[j].Key, key) {
					*h = append((*h)[:j], (*h)[j+1:]...)
				} else {
					j++
				}
			}
			return
		}
	}
	*h = append(*h, Header{Key: key, Value: value})
}

// Add appends a header without replacing existing ones.
func (h *Headers) Add(key, value string) {
	*h = append(*h, Header{Key: key, Value: value})
}

// IsChunked returns true if Transfer-Encoding contains "chunked".
func (h Headers) IsChunked() bool {
	v := h.Get("Transfer-Encoding")
	return strings.Contains(strings.ToLower(v), "chunked")
}

// hasFraming reports whether the caller already chose how the body is delimited.
func (h Headers) hasFraming() bool {
	return h.Has("Content-Length") || h.IsChunked()
}
