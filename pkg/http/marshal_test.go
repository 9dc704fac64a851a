package http

import (
	"errors"
	"testing"
)

func mustMethod(t *testing.T, name string) *Method {
	t.Helper()
	m, err := NewMethod(name)
	if err != nil {
		t.Fatalf("NewMethod(%q) error = %v", name, err)
	}
	return m
}

func TestMarshal_Request_Simple(t *testing.T) {
	req := &Request{
		Method:  MethodGet(),
		Path:    "/api/users",
		Version: "HTTP/1.1",
		Headers: Headers{
			{Key: "Host", Value: "example.com"},
			{Key: "Accept", Value: "application/json"},
		},
	}

	data, err := Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := "GET /api/users HTTP/1.1\r\nHost: example.com\r\nAccept: application/json\r\n\r\n"
	if string(data) != want {
		t.Errorf("Marshal() =\n%q\nwant:\n%q", string(data), want)
	}
}

func TestMarshal_Request_NormalizesMethod(t *testing.T) {
	req := &Request{
		Method:  mustMethod(t, "get"),
		Path:    "/",
		Headers: Headers{{Key: "Host", Value: "example.com"}},
	}

	data, err := Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"
	if string(data) != want {
		t.Errorf("Marshal() =\n%q\nwant:\n%q", string(data), want)
	}
	// The request itself is left alone.
	if req.Method.String() != "get" {
		t.Errorf("req.Method = %q, want get", req.Method.String())
	}
}

func TestMarshal_Request_CustomMethodPreservesCase(t *testing.T) {
	req := &Request{
		Method:  mustMethod(t, "Purge"),
		Path:    "/cache/item",
		Headers: Headers{{Key: "Host", Value: "example.com"}},
	}

	data, err := Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := "Purge /cache/item HTTP/1.1\r\nHost: example.com\r\nContent-Length: 0\r\n\r\n"
	if string(data) != want {
		t.Errorf("Marshal() =\n%q\nwant:\n%q", string(data), want)
	}
}

func TestMarshal_Request_WithBody(t *testing.T) {
	req := &Request{
		Method:  MethodPost(),
		Path:    "/api/users",
		Version: "HTTP/1.1",
		Headers: Headers{
			{Key: "Host", Value: "example.com"},
			{Key: "Content-Type", Value: "application/json"},
		},
		Body: []byte(`{"name":"John Doe"}`),
	}

	data, err := Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := "POST /api/users HTTP/1.1\r\n" +
		"Host: example.com\r\n" +
		"Content-Type: application/json\r\n" +
		"Content-Length: 19\r\n" +
		"\r\n" +
		`{"name":"John Doe"}`
	if string(data) != want {
		t.Errorf("Marshal() =\n%q\nwant:\n%q", string(data), want)
	}
}

func TestMarshal_Request_WithExplicitContentLength(t *testing.T) {
	req := &Request{
		Method:  MethodPost(),
		Path:    "/api/users",
		Version: "HTTP/1.1",
		Headers: Headers{
			{Key: "Host", Value: "example.com"},
			{Key: "Content-Length", Value: "19"},
		},
		Body: []byte(`{"name":"John Doe"}`),
	}

	data, err := Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	// Should not add a second Content-Length
	want := "POST /api/users HTTP/1.1\r\n" +
		"Host: example.com\r\n" +
		"Content-Length: 19\r\n" +
		"\r\n" +
		`{"name":"John Doe"}`
	if string(data) != want {
		t.Errorf("Marshal() =\n%q\nwant:\n%q", string(data), want)
	}
}

func TestMarshal_Request_EmptyBodyFraming(t *testing.T) {
	tests := []struct {
		method  *Method
		headers Headers
		want    string
	}{
		{
			method: MethodPost(),
			want:   "POST / HTTP/1.1\r\nContent-Length: 0\r\n\r\n",
		},
		{
			method: MethodPut(),
			want:   "PUT / HTTP/1.1\r\nContent-Length: 0\r\n\r\n",
		},
		{
			method: MethodPatch(),
			want:   "PATCH / HTTP/1.1\r\nContent-Length: 0\r\n\r\n",
		},
		{
			method: MethodGet(),
			want:   "GET / HTTP/1.1\r\n\r\n",
		},
		{
			method: MethodHead(),
			want:   "HEAD / HTTP/1.1\r\n\r\n",
		},
		{
			method: MethodDelete(),
			want:   "DELETE / HTTP/1.1\r\n\r\n",
		},
		{
			method: MethodOptions(),
			want:   "OPTIONS / HTTP/1.1\r\n\r\n",
		},
		{
			method:  MethodPost(),
			headers: Headers{{Key: "Transfer-Encoding", Value: "chunked"}},
			want:    "POST / HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			data, err := Marshal(&Request{Method: tt.method, Path: "/", Headers: tt.headers})
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() =\n%q\nwant:\n%q", string(data), tt.want)
			}
		})
	}
}

func TestMarshal_Request_Chunked_NoAutoContentLength(t *testing.T) {
	req := &Request{
		Method: MethodPost(),
		Path:   "/upload",
		Headers: Headers{
			{Key: "Transfer-Encoding", Value: "chunked"},
		},
		Body: []byte("5\r\nHello\r\n0\r\n\r\n"),
	}

	data, err := Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := "POST /upload HTTP/1.1\r\n" +
		"Transfer-Encoding: chunked\r\n" +
		"\r\n" +
		"5\r\nHello\r\n0\r\n\r\n"
	if string(data) != want {
		t.Errorf("Marshal() =\n%q\nwant:\n%q", string(data), want)
	}
}

func TestMarshal_Request_DefaultVersion(t *testing.T) {
	req := &Request{
		Method: MethodGet(),
		Path:   "/",
		Headers: Headers{
			{Key: "Host", Value: "example.com"},
		},
	}

	data, err := Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"
	if string(data) != want {
		t.Errorf("Marshal() =\n%q\nwant:\n%q", string(data), want)
	}
}

func TestMarshal_Request_NilMethod(t *testing.T) {
	req := &Request{Path: "/"}
	_, err := Marshal(req)

	var merr *MarshalError
	if !errors.As(err, &merr) {
		t.Fatalf("Marshal() error = %v, want *MarshalError", err)
	}
	if merr.Field != "method" {
		t.Errorf("Field = %q, want method", merr.Field)
	}
}

func TestMarshal_Request_EmptyPath(t *testing.T) {
	req := &Request{Method: MethodGet()}
	_, err := Marshal(req)
	if err == nil {
		t.Error("Marshal() expected error for empty path")
	}
}

func TestMarshal_Nil(t *testing.T) {
	_, err := Marshal(nil)
	if err == nil {
		t.Error("Marshal(nil) expected error")
	}
}

func TestMarshalError(t *testing.T) {
	e1 := newMarshalError("path", "path is empty")
	if e1.Error() != "http: invalid request path: path is empty" {
		t.Errorf("Error() = %q", e1.Error())
	}

	e2 := &MarshalError{Message: "generic error"}
	if e2.Error() != "http: generic error" {
		t.Errorf("Error() = %q", e2.Error())
	}
}

func BenchmarkMarshal_SimpleRequest(b *testing.B) {
	req := &Request{
		Method:  MethodGet(),
		Path:    "/api/users",
		Version: "HTTP/1.1",
		Headers: Headers{
			{Key: "Host", Value: "example.com"},
			{Key: "Accept", Value: "application/json"},
			{Key: "User-Agent", Value: "shape-http/1.0"},
		},
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Marshal(req)
		if err != nil {
			b.Fatal(err)
		}
	}
}
