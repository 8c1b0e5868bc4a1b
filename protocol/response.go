// File: protocol/response.go
//
// Response builder and wire serialization.

package protocol

import (
	"bytes"
	"fmt"
)

// Response is one HTTP response. Body is raw bytes and is never treated as
// text during serialization, so binary payloads pass through untouched.
type Response struct {
	Status  Status
	Version Version
	Headers Headers
	Body    []byte
}

// NewResponse returns a 200 OK HTTP/1.1 response with no headers and no
// body. The With* setters chain.
func NewResponse() *Response {
	return &Response{
		Status:  StatusOK,
		Version: DefaultVersion(),
		Headers: make(Headers),
	}
}

// WithStatus sets the status and returns the response.
func (r *Response) WithStatus(s Status) *Response {
	r.Status = s
	return r
}

// WithVersion sets the protocol version and returns the response.
func (r *Response) WithVersion(v Version) *Response {
	r.Version = v
	return r
}

// WithHeader sets one header and returns the response.
func (r *Response) WithHeader(name, value string) *Response {
	r.Headers.Set(name, value)
	return r
}

// WithBody sets the raw body bytes and returns the response.
func (r *Response) WithBody(body []byte) *Response {
	r.Body = body
	return r
}

// Bytes serializes the response: status line, one line per header in map
// order (undefined), a blank line, then the body bytes appended without
// re-encoding. Nothing is added on the caller's behalf, not even
// Content-Length.
func (r *Response) Bytes() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s %d %s\r\n", r.Version, r.Status.Code(), r.Status.Text())
	for name, value := range r.Headers {
		fmt.Fprintf(&b, "%s: %s\r\n", name, value)
	}
	b.WriteString("\r\n")
	b.Write(r.Body)
	return b.Bytes()
}
