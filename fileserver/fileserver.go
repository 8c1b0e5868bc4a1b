// File: fileserver/fileserver.go
//
// Static file handler. URLs map to paths under a root directory; files are
// served raw with a MIME type guessed from the extension, directories
// render an HTML listing. A missing or unreadable file is a plain 404.

package fileserver

import (
	"bytes"
	"html/template"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/scratchnet/httpd/protocol"
)

const fallbackMIME = "text/plain"

var dirTemplate = template.Must(template.New("dir").Parse(
	`<h1>{{.DirName}}</h1>
{{range .ChildDirs}}<a href="/{{.}}">{{.}}</a><br>
{{end}}{{range .Files}}<a href="/{{.}}">{{.}}</a><br>
{{end}}`))

// dirListing feeds dirTemplate. Entries are paths relative to the root so
// the rendered links resolve through the same handler.
type dirListing struct {
	DirName   string
	ChildDirs []string
	Files     []string
}

// FileServer serves files beneath one root directory.
type FileServer struct {
	root string
}

// New returns a file server rooted at dir.
func New(dir string) *FileServer {
	return &FileServer{root: dir}
}

// Handle implements router.Handler.
func (f *FileServer) Handle(req *protocol.Request) (*protocol.Response, error) {
	path := filepath.Join(f.root, strings.TrimPrefix(req.URL, "/"))

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return f.listDir(path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return protocol.NewResponse().WithStatus(protocol.StatusNotFound), nil
	}
	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		ct = fallbackMIME
	}
	return protocol.NewResponse().
		WithHeader("Content-Type", ct).
		WithBody(content), nil
}

// listDir renders the directory listing. Read or render failures propagate
// as handler errors.
func (f *FileServer) listDir(dir string) (*protocol.Response, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	listing := dirListing{DirName: dir}
	for _, entry := range entries {
		rel, err := filepath.Rel(f.root, filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if entry.IsDir() {
			listing.ChildDirs = append(listing.ChildDirs, rel)
		} else {
			listing.Files = append(listing.Files, rel)
		}
	}
	var buf bytes.Buffer
	if err := dirTemplate.Execute(&buf, listing); err != nil {
		return nil, err
	}
	return protocol.NewResponse().
		WithHeader("Content-Type", "text/html").
		WithBody(buf.Bytes()), nil
}
