// File: api/errors.go
//
// Transport-level error kinds shared across socket implementations.

package api

import "errors"

var (
	// ErrSocketClosed indicates an operation on an already-closed socket.
	ErrSocketClosed = errors.New("socket is closed")

	// ErrNoIPv4Addr indicates address resolution produced no IPv4
	// candidate. Other address families are skipped, not used.
	ErrNoIPv4Addr = errors.New("no IPv4 address for host")

	// ErrNotSupported indicates the host platform has no socket
	// implementation.
	ErrNotSupported = errors.New("raw sockets not supported on this platform")
)
