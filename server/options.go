// File: server/options.go
//
// Functional options for server initialization.

package server

import (
	"github.com/scratchnet/httpd/api"
	"github.com/scratchnet/httpd/control"
)

// Option customizes server initialization.
type Option func(*Server)

// WithSocketFactory substitutes the socket implementation. Tests use this
// to serve over fake in-memory sockets.
func WithSocketFactory(f api.SocketFactory) Option {
	return func(s *Server) {
		s.factory = f
	}
}

// WithMetrics shares an external metrics registry instead of the server
// creating its own.
func WithMetrics(mr *control.MetricsRegistry) Option {
	return func(s *Server) {
		s.metrics = mr
	}
}
