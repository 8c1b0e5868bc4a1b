// File: protocol/response_test.go

package protocol

import (
	"bytes"
	"strings"
	"testing"
)

func TestResponseBytesLayout(t *testing.T) {
	resp := NewResponse().
		WithHeader("Content-Type", "text/plain").
		WithHeader("X-Extra", "1").
		WithBody([]byte("pong"))

	wire := string(resp.Bytes())

	if !strings.HasPrefix(wire, "HTTP/1.1 200 OK\r\n") {
		t.Errorf("status line: %q", wire)
	}
	head, body, ok := strings.Cut(wire, "\r\n\r\n")
	if !ok {
		t.Fatalf("no blank line in %q", wire)
	}
	if body != "pong" {
		t.Errorf("body = %q, want exactly the raw bytes", body)
	}
	// One line per header, order unspecified.
	lines := strings.Split(head, "\r\n")[1:]
	if len(lines) != 2 {
		t.Fatalf("header lines = %d, want 2 (%q)", len(lines), head)
	}
	want := map[string]bool{"Content-Type: text/plain": false, "X-Extra: 1": false}
	for _, l := range lines {
		if _, ok := want[l]; !ok {
			t.Errorf("unexpected header line %q", l)
		}
		want[l] = true
	}
	for l, seen := range want {
		if !seen {
			t.Errorf("missing header line %q", l)
		}
	}
}

func TestResponseBinaryBodyUntouched(t *testing.T) {
	body := []byte{0x00, 0xff, 0x13, 0x37, 0x00}
	wire := NewResponse().WithBody(body).Bytes()
	if !bytes.HasSuffix(wire, body) {
		t.Errorf("binary body was altered: %q", wire)
	}
}

func TestResponseStatusAndVersion(t *testing.T) {
	resp := NewResponse().
		WithStatus(StatusNotFound).
		WithVersion(Version{Major: 1, Minor: 0})
	wire := string(resp.Bytes())
	if wire != "HTTP/1.0 404 Not Found\r\n\r\n" {
		t.Errorf("wire = %q", wire)
	}
}

func TestStatusTable(t *testing.T) {
	cases := []struct {
		status Status
		code   int
		text   string
	}{
		{StatusContinue, 100, "Continue"},
		{StatusOK, 200, "OK"},
		{StatusMovedPermanently, 301, "Moved Permanently"},
		{StatusNotFound, 404, "Not Found"},
		{StatusTeapot, 418, "I'm a teapot"},
		{StatusInternalServerError, 500, "Internal Server Error"},
		{StatusNetworkAuthenticationRequired, 511, "Network Authentication Required"},
	}
	for _, tc := range cases {
		if tc.status.Code() != tc.code {
			t.Errorf("%v.Code() = %d, want %d", tc.status, tc.status.Code(), tc.code)
		}
		if tc.status.Text() != tc.text {
			t.Errorf("%d.Text() = %q, want %q", tc.code, tc.status.Text(), tc.text)
		}
	}
	if StatusOK.String() != "200 OK" {
		t.Errorf("String() = %q", StatusOK.String())
	}
}
