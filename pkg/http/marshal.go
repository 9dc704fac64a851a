package http

import (
	"sync"
)

// bufPool pools []byte slices for the encoder fast path.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 2048)
		return &b
	},
}

// Marshal returns the HTTP/1.1 wire-format encoding of req.
//
// The method is normalized first, so well-known methods are always written
// in upper case. If Content-Length and Transfer-Encoding are both absent,
// Content-Length is set from the body; a method that requires a body gets
// "Content-Length: 0" when the body is empty.
//
// Marshal uses a sync.Pool buffer internally for zero-alloc serialization.
func Marshal(req *Request) ([]byte, error) {
	if req == nil {
		return nil, newMarshalError("", "Marshal(nil)")
	}

	bp := bufPool.Get().(*[]byte)
	buf := (*bp)[:0]

	buf, err := appendRequest(buf, req)
	if err != nil {
		bufPool.Put(bp)
		return nil, err
	}

	result := make([]byte, len(buf))
	copy(result, buf)
	*bp = buf
	bufPool.Put(bp)
	return result, nil
}
