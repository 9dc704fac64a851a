// Package method implements the HTTP request method value shared by the
// serializers and transports in this module.
//
// A Method is immutable once constructed. The nine well-known methods are
// process-wide singletons (see Normalize) and carry their HTTP/3 :method field
// line precomputed, so canonical methods can be compared by pointer.
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
package method

import (
	"errors"
	"fmt"
	"hash/maphash"
	"strings"
	"sync/atomic"

	"github.com/shapestone/shape-httpmethod/internal/tokenizer"
)

var (
	// ErrInvalidArgument is returned when a method name is empty.
	ErrInvalidArgument = errors.New("http: method must not be empty")
	// ErrMalformedToken is returned when a method name is not a valid HTTP token.
	ErrMalformedToken = errors.New("http: method is not a valid token")
)

var hashSeed = maphash.MakeSeed()

// Method is an HTTP request method such as GET or PURGE.
//
// Methods compare equal when their names match ignoring ASCII case. The
// original spelling is kept for display.
type Method struct {
	token   string
	encoded []byte // QPACK :method field line, singletons only

	// 0 until the first Hash call.
	hash atomic.Uint64
}

// New returns a Method for the given name. The name is kept verbatim.
func New(s string) (*Method, error) {
	if s == "" {
		return nil, ErrInvalidArgument
	}
	if n := tokenizer.LongestPrefix(s, 0); n != len(s) {
		return nil, fmt.Errorf("%w: %q has invalid character at offset %d", ErrMalformedToken, s, n)
	}
	return &Method{token: s}, nil
}

// String returns the method name as it was supplied.
func (m *Method) String() string {
	if m == nil {
		return ""
	}
	return m.token
}

// MarshalText implements encoding.TextMarshaler.
func (m *Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// EncodedBytes returns the precomputed HTTP/3 :method field line, or nil if
// the method is not one of the canonical singletons. The returned slice is
// shared and must not be modified.
func (m *Method) EncodedBytes() []byte {
	return m.encoded
}

// Equal reports whether m and other name the same method, ignoring ASCII case.
func (m *Method) Equal(other *Method) bool {
	if m == nil || other == nil {
		return false
	}
	if m == other || m.token == other.token {
		return true
	}
	// Tokens are ASCII, so Unicode folding never applies.
	return strings.EqualFold(m.token, other.token)
}

// Hash returns a case-insensitive hash of the method name, consistent with
// Equal. The value is stable for the lifetime of the process.
func (m *Method) Hash() uint64 {
	if h := m.hash.Load(); h != 0 {
		return h
	}

	var mh maphash.Hash
	mh.SetSeed(hashSeed)
	for i := 0; i < len(m.token); i++ {
		mh.WriteByte(lowerASCII(m.token[i]))
	}
	h := mh.Sum64()
	if h == 0 {
		// 0 marks an empty cache.
		h = 1
	}

	// Racing callers store the same value.
	m.hash.Store(h)
	return h
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func upperASCII(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
