// File: fileserver/fileserver_test.go

package fileserver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scratchnet/httpd/protocol"
)

func setupRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "hello.txt"), []byte("hi there"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "blob"), []byte{0x00, 0xff}, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "sub", "inner.html"), []byte("<p>x</p>"), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func request(url string) *protocol.Request {
	req := protocol.NewRequest()
	req.URL = url
	return req
}

func TestServeFile(t *testing.T) {
	fs := New(setupRoot(t))
	resp, err := fs.Handle(request("/hello.txt"))
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if resp.Status != protocol.StatusOK {
		t.Errorf("Status = %v", resp.Status)
	}
	if string(resp.Body) != "hi there" {
		t.Errorf("Body = %q", resp.Body)
	}
	if ct := resp.Headers.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestServeUnknownExtensionFallsBack(t *testing.T) {
	fs := New(setupRoot(t))
	resp, err := fs.Handle(request("/blob"))
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if ct := resp.Headers.Get("Content-Type"); ct != "text/plain" {
		t.Errorf("Content-Type = %q, want fallback text/plain", ct)
	}
	if string(resp.Body) != "\x00\xff" {
		t.Errorf("Body = %q, binary content must pass through", resp.Body)
	}
}

func TestServeMissingIs404(t *testing.T) {
	fs := New(setupRoot(t))
	resp, err := fs.Handle(request("/nope.txt"))
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if resp.Status != protocol.StatusNotFound {
		t.Errorf("Status = %v, want 404", resp.Status)
	}
	if len(resp.Body) != 0 {
		t.Errorf("404 body = %q, want empty", resp.Body)
	}
}

func TestDirectoryListing(t *testing.T) {
	fs := New(setupRoot(t))
	resp, err := fs.Handle(request("/"))
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if ct := resp.Headers.Get("Content-Type"); ct != "text/html" {
		t.Errorf("Content-Type = %q", ct)
	}
	html := string(resp.Body)
	for _, want := range []string{`href="/hello.txt"`, `href="/sub"`} {
		if !strings.Contains(html, want) {
			t.Errorf("listing missing %s in %q", want, html)
		}
	}
}

func TestNestedDirectoryListing(t *testing.T) {
	fs := New(setupRoot(t))
	resp, err := fs.Handle(request("/sub"))
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if !strings.Contains(string(resp.Body), filepath.Join("sub", "inner.html")) {
		t.Errorf("nested listing = %q", resp.Body)
	}
}
