// File: router/router.go
//
// Handler capability and the table-based router. Dispatch is exact match
// on URL, then exact match on method; a miss synthesizes 404 instead of
// erroring.

package router

import (
	"github.com/scratchnet/httpd/protocol"
)

// Handler maps a parsed request to a response. Implementations may block
// on I/O; an error propagates as a connection-level failure and aborts the
// connection's job without a response.
type Handler interface {
	Handle(req *protocol.Request) (*protocol.Response, error)
}

// HandlerFunc adapts a plain function to the Handler capability.
type HandlerFunc func(req *protocol.Request) (*protocol.Response, error)

// Handle implements Handler.
func (f HandlerFunc) Handle(req *protocol.Request) (*protocol.Response, error) {
	return f(req)
}

// Router dispatches by URL then method over a table built before serving
// starts. It is read-only while serving, so no synchronization is needed
// on the hot path.
type Router struct {
	routes map[string]map[protocol.Method]Handler
}

// New returns an empty router.
func New() *Router {
	return &Router{routes: make(map[string]map[protocol.Method]Handler)}
}

// Route registers handler for (method, path). Registration happens before
// the server starts; re-registering replaces the previous handler.
func (r *Router) Route(method protocol.Method, path string, handler Handler) {
	byMethod, ok := r.routes[path]
	if !ok {
		byMethod = make(map[protocol.Method]Handler)
		r.routes[path] = byMethod
	}
	byMethod[method] = handler
}

// Get registers handler for GET path.
func (r *Router) Get(path string, handler Handler) {
	r.Route(protocol.MethodGet, path, handler)
}

// Post registers handler for POST path.
func (r *Router) Post(path string, handler Handler) {
	r.Route(protocol.MethodPost, path, handler)
}

// Put registers handler for PUT path.
func (r *Router) Put(path string, handler Handler) {
	r.Route(protocol.MethodPut, path, handler)
}

// Delete registers handler for DELETE path.
func (r *Router) Delete(path string, handler Handler) {
	r.Route(protocol.MethodDelete, path, handler)
}

// Handle implements Handler. URL comparison is exact string equality, no
// normalization. A miss on either key returns 404 with an empty body.
func (r *Router) Handle(req *protocol.Request) (*protocol.Response, error) {
	if byMethod, ok := r.routes[req.URL]; ok {
		if h, ok := byMethod[req.Method]; ok {
			return h.Handle(req)
		}
	}
	return protocol.NewResponse().WithStatus(protocol.StatusNotFound), nil
}
