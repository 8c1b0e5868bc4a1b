// File: router/middleware.go
//
// Pass-through handler wrappers. Wrap stores a handler behind one level of
// indirection; Chain composes middleware around a terminal handler in FIFO
// declaration order.

package router

import "github.com/scratchnet/httpd/protocol"

// Wrapper holds a handler behind an indirection and forwards to it
// unchanged. Swapping H before serving swaps the effective handler.
type Wrapper struct {
	H Handler
}

// Handle implements Handler by delegating to the wrapped handler.
func (w *Wrapper) Handle(req *protocol.Request) (*protocol.Response, error) {
	return w.H.Handle(req)
}

// Middleware decorates a handler with another handler.
type Middleware func(next Handler) Handler

// Chain wraps handler with mw so that mw[0] runs outermost.
func Chain(handler Handler, mw ...Middleware) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	return handler
}
