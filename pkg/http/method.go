package http

import (
	"github.com/shapestone/shape-httpmethod/internal/method"
)

// Method is an HTTP request method. See NewMethod.
type Method = method.Method

var (
	// ErrInvalidMethod is returned by NewMethod for an empty name.
	ErrInvalidMethod = method.ErrInvalidArgument
	// ErrMalformedMethod is returned by NewMethod for a name that is not an HTTP token.
	ErrMalformedMethod = method.ErrMalformedToken
)

// NewMethod returns a Method for an arbitrary, possibly non-standard name such
// as "PURGE". The name is kept exactly as given; comparison ignores ASCII case.
func NewMethod(name string) (*Method, error) {
	return method.New(name)
}

// MethodGet returns the canonical GET method.
func MethodGet() *Method { return method.Get() }

// MethodPut returns the canonical PUT method.
func MethodPut() *Method { return method.Put() }

// MethodPost returns the canonical POST method.
func MethodPost() *Method { return method.Post() }

// MethodDelete returns the canonical DELETE method.
func MethodDelete() *Method { return method.Delete() }

// MethodHead returns the canonical HEAD method.
func MethodHead() *Method { return method.Head() }

// MethodOptions returns the canonical OPTIONS method.
func MethodOptions() *Method { return method.Options() }

// MethodTrace returns the canonical TRACE method.
func MethodTrace() *Method { return method.Trace() }

// MethodPatch returns the canonical PATCH method.
func MethodPatch() *Method { return method.Patch() }

// NormalizeMethod returns the canonical method equal to m, or m itself when m
// is not a well-known method.
func NormalizeMethod(m *Method) *Method {
	return method.Normalize(m)
}

// RequiresRequestBody reports whether a request using m is expected to carry
// a body. m must be the result of NormalizeMethod.
func RequiresRequestBody(m *Method) bool {
	return method.RequiresRequestBody(m)
}
