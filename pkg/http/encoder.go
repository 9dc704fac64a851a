package http

// appendRequest serializes a Request to HTTP/1.1 wire format.
// It appends "METHOD PATH VERSION\r\n" followed by headers and body.
func appendRequest(buf []byte, req *Request) ([]byte, error) {
	if req.Method == nil {
		return nil, newMarshalError("method", "method is nil")
	}
	if req.Path == "" {
		return nil, newMarshalError("path", "path is empty")
	}

	m := NormalizeMethod(req.Method)

	version := req.Version
	if version == "" {
		version = "HTTP/1.1"
	}

	buf = appendRequestLine(buf, m.String(), req.Path, version)
	buf = appendHeaders(buf, req.Headers)

	if !req.Headers.hasFraming() {
		switch {
		case len(req.Body) > 0:
			buf = appendContentLength(buf, len(req.Body))
		case RequiresRequestBody(m):
			// Without a length the server may wait for a body that never comes.
			buf = appendContentLength(buf, 0)
		}
	}

	buf = appendCRLF(buf) // empty line before body
	if len(req.Body) > 0 {
		buf = append(buf, req.Body...)
	}

	return buf, nil
}

// appendHeaders appends all headers in "Key: Value\r\n" format.
func appendHeaders(buf []byte, headers Headers) []byte {
	for _, h := range headers {
		buf = append(buf, h.Key...)
		buf = append(buf, ':', ' ')
		buf = append(buf, h.Value...)
		buf = appendCRLF(buf)
	}
	return buf
}
