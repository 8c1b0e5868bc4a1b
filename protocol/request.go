// File: protocol/request.go
//
// Request model and the strict four-stage parser. Each stage consumes a
// prefix of the raw text and returns the rest; any missing delimiter or
// bad token aborts the whole parse with the single generic ErrParse.

package protocol

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse is the only parse-error kind. The grammar is all-or-nothing:
// callers get no positional detail, just the failure.
var ErrParse = errors.New("unable to parse request")

// Request is one parsed HTTP request. URL is an opaque path string,
// compared by exact equality with no normalization. Body is whatever raw
// text followed the blank line in the read buffer.
type Request struct {
	Method  Method
	URL     string
	Version Version
	Headers Headers
	Body    string
}

// NewRequest returns a request with defaulted method, URL and version.
// Production code only ever builds requests through ParseRequest; this
// exists for handlers and tests.
func NewRequest() *Request {
	return &Request{
		Method:  MethodGet,
		URL:     "/",
		Version: DefaultVersion(),
		Headers: make(Headers),
	}
}

// ParseRequest parses exactly one request from raw text:
//
//	METHOD SP URL SP HTTP/<major>.<minor> CRLF (header CRLF)* CRLF body
func ParseRequest(txt string) (*Request, error) {
	rest, method, err := parseMethodToken(txt)
	if err != nil {
		return nil, err
	}
	rest, url, err := parseURLToken(rest)
	if err != nil {
		return nil, err
	}
	rest, version, err := parseVersionLine(rest)
	if err != nil {
		return nil, err
	}
	body, headers, err := parseHeaderLines(rest)
	if err != nil {
		return nil, err
	}
	return &Request{
		Method:  method,
		URL:     url,
		Version: version,
		Headers: headers,
		Body:    body,
	}, nil
}

// parseMethodToken consumes the method token up to a single space.
func parseMethodToken(txt string) (string, Method, error) {
	tok, rest, ok := strings.Cut(txt, " ")
	if !ok {
		return "", "", ErrParse
	}
	m, err := ParseMethod(tok)
	if err != nil {
		return "", "", ErrParse
	}
	return rest, m, nil
}

// parseURLToken consumes the URL token up to the next space.
func parseURLToken(txt string) (string, string, error) {
	url, rest, ok := strings.Cut(txt, " ")
	if !ok {
		return "", "", ErrParse
	}
	return rest, url, nil
}

// parseVersionLine consumes "HTTP/<major>.<minor>" terminated by CRLF.
func parseVersionLine(txt string) (string, Version, error) {
	line, rest, ok := strings.Cut(txt, "\r\n")
	if !ok {
		return "", Version{}, ErrParse
	}
	_, ver, ok := strings.Cut(line, "HTTP/")
	if !ok {
		return "", Version{}, ErrParse
	}
	parts := strings.SplitN(ver, ".", 3)
	if len(parts) < 2 {
		return "", Version{}, ErrParse
	}
	major, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return "", Version{}, ErrParse
	}
	minor, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return "", Version{}, ErrParse
	}
	return rest, Version{Major: uint8(major), Minor: uint8(minor)}, nil
}

// parseHeaderLines consumes "Name: Value" lines one at a time until the
// first empty line, then returns everything after it as the body. Duplicate
// names keep the last value; the split is on the first ": " only.
func parseHeaderLines(txt string) (string, Headers, error) {
	headers := make(Headers)
	rest := txt
	for {
		if body, ok := strings.CutPrefix(rest, "\r\n"); ok {
			return body, headers, nil
		}
		line, next, ok := strings.Cut(rest, "\r\n")
		if !ok {
			return "", nil, ErrParse
		}
		name, value, ok := strings.Cut(line, ": ")
		if !ok {
			return "", nil, ErrParse
		}
		headers[name] = value
		rest = next
	}
}

// Bytes serializes the request back to wire form. Header order is whatever
// the map yields.
func (r *Request) Bytes() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s %s %s\r\n", r.Method, r.URL, r.Version)
	for name, value := range r.Headers {
		fmt.Fprintf(&b, "%s: %s\r\n", name, value)
	}
	b.WriteString("\r\n")
	b.WriteString(r.Body)
	return b.Bytes()
}
