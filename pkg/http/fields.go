package http

import (
	"bytes"

	"github.com/shapestone/shape-httpmethod/internal/method"
	"github.com/shapestone/shape-httpmethod/internal/qpack"
	"golang.org/x/net/http2/hpack"
)

const methodPseudoHeader = ":method"

// AppendQPACKMethod appends the HTTP/3 :method field line for m to dst.
// Canonical methods reuse their precomputed bytes; any other method is
// encoded as a literal value referencing the :method name in the static table.
func AppendQPACKMethod(dst []byte, m *Method) []byte {
	m = NormalizeMethod(m)
	if b := m.EncodedBytes(); b != nil {
		return append(dst, b...)
	}
	return qpack.AppendLiteralWithStaticNameRef(dst, qpack.MethodGet, m.String())
}

// AppendHPACKMethod appends the HTTP/2 :method field for m to dst. GET and
// POST become single-byte static references. Other methods are sent as
// never-indexed literals, leaving the peer's dynamic table untouched.
func AppendHPACKMethod(dst []byte, m *Method) []byte {
	m = NormalizeMethod(m)

	var buf bytes.Buffer
	enc := hpack.NewEncoder(&buf)
	// WriteField only fails on a table size update we never request.
	_ = enc.WriteField(hpack.HeaderField{
		Name:      methodPseudoHeader,
		Value:     m.String(),
		Sensitive: m != method.Get() && m != method.Post(),
	})
	return append(dst, buf.Bytes()...)
}
