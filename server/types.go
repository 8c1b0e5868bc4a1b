// File: server/types.go
//
// Server configuration and state.

package server

import (
	"sync/atomic"

	"github.com/scratchnet/httpd/api"
	"github.com/scratchnet/httpd/control"
	"github.com/scratchnet/httpd/pool"
	"github.com/scratchnet/httpd/transport"
)

// Config holds the server-side parameters.
type Config struct {
	ListenAddr     string // host:port, resolved to the first IPv4 candidate
	Workers        int    // worker pool size; 0 = logical core count
	ReadBufferSize int    // bytes for the single bounded request read
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:     "127.0.0.1:8000",
		Workers:        0,
		ReadBufferSize: 30000,
	}
}

// Server owns one listener and one worker pool. The accept loop is
// single-threaded; each accepted connection becomes exactly one pool job
// processed end to end by one worker.
type Server struct {
	cfg      *Config
	factory  api.SocketFactory
	listener *transport.TCPListener
	pool     *pool.WorkerPool
	metrics  *control.MetricsRegistry
	closed   atomic.Bool
}
