package method

import (
	"fmt"

	"github.com/shapestone/shape-httpmethod/internal/qpack"
)

const (
	noStaticIndex = -1

	// Longest canonical name (OPTIONS, CONNECT).
	maxKnownLen = 7
)

var (
	getMethod     = newKnown("GET", qpack.MethodGet)
	putMethod     = newKnown("PUT", qpack.MethodPut)
	postMethod    = newKnown("POST", qpack.MethodPost)
	deleteMethod  = newKnown("DELETE", qpack.MethodDelete)
	headMethod    = newKnown("HEAD", qpack.MethodHead)
	optionsMethod = newKnown("OPTIONS", qpack.MethodOptions)
	traceMethod   = newKnown("TRACE", noStaticIndex)
	patchMethod   = newKnown("PATCH", noStaticIndex)
	connectMethod = newKnown("CONNECT", qpack.MethodConnect)
)

// known maps upper-case names to their singleton. It is never written after
// package initialization.
var known = map[string]*Method{
	"GET":     getMethod,
	"PUT":     putMethod,
	"POST":    postMethod,
	"DELETE":  deleteMethod,
	"HEAD":    headMethod,
	"OPTIONS": optionsMethod,
	"TRACE":   traceMethod,
	"PATCH":   patchMethod,
	"CONNECT": connectMethod,
}

// newKnown builds a singleton. Static indices come from the QPACK static
// table; methods without an entry are sent as a literal value with the
// :method name referenced from the table.
func newKnown(token string, staticIndex int) *Method {
	var (
		encoded []byte
		err     error
	)
	if staticIndex != noStaticIndex {
		encoded, err = qpack.EncodeStaticIndexedField(staticIndex)
	} else {
		encoded, err = qpack.EncodeLiteralWithStaticNameRef(qpack.MethodGet, token)
	}
	if err != nil {
		panic(fmt.Sprintf("method: encoding %s: %v", token, err))
	}
	return &Method{token: token, encoded: encoded}
}

func Get() *Method     { return getMethod }
func Put() *Method     { return putMethod }
func Post() *Method    { return postMethod }
func Delete() *Method  { return deleteMethod }
func Head() *Method    { return headMethod }
func Options() *Method { return optionsMethod }
func Trace() *Method   { return traceMethod }
func Patch() *Method   { return patchMethod }

// Connect returns the CONNECT singleton. It is reserved for proxy tunnels
// set up by the transport and is not part of the public API.
func Connect() *Method { return connectMethod }

// Known returns the canonical singletons in a fixed order.
func Known() []*Method {
	return []*Method{
		getMethod, putMethod, postMethod, deleteMethod, headMethod,
		optionsMethod, traceMethod, patchMethod, connectMethod,
	}
}

// Normalize returns the canonical singleton for m if m names a well-known
// method, and m itself otherwise. It never modifies m.
func Normalize(m *Method) *Method {
	// Only singletons carry encoded bytes.
	if m == nil || m.encoded != nil {
		return m
	}
	if canonical, ok := lookup(m.token); ok {
		return canonical
	}
	return m
}

// RequiresRequestBody reports whether requests using m are expected to carry
// a body. m must already be normalized.
func RequiresRequestBody(m *Method) bool {
	assertNormalized(m)
	return m != getMethod &&
		m != headMethod &&
		m != connectMethod &&
		m != optionsMethod &&
		m != deleteMethod
}

// lookup finds the singleton for token ignoring ASCII case.
func lookup(token string) (*Method, bool) {
	if m, ok := known[token]; ok {
		return m, true
	}
	if len(token) > maxKnownLen {
		return nil, false
	}

	var buf [maxKnownLen]byte
	for i := 0; i < len(token); i++ {
		buf[i] = upperASCII(token[i])
	}
	// string(bytes) in a map index does not allocate.
	m, ok := known[string(buf[:len(token)])]
	return m, ok
}
