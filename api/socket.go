// File: api/socket.go
//
// Socket capability contract. One OS-backed implementation lives in
// internal/sock; a deterministic in-memory one lives in fake. Everything
// above this layer (transport, server) is polymorphic over it.

package api

import "net/netip"

// Socket is one end of a TCP connection or a listening endpoint.
//
// Read and Write are direct, unbuffered single-syscall operations and may
// transfer fewer bytes than requested; callers own any loop-until-complete
// semantics. All methods other than those on a freshly created socket
// require a still-open descriptor.
type Socket interface {
	// Bind associates the socket with a local address. Implementations
	// enable address reuse first, so a restart does not fail on a
	// lingering socket.
	Bind(addr netip.AddrPort) error

	// Listen marks the socket as passive with the given backlog.
	Listen(backlog int) error

	// Accept blocks until a peer connects and returns the connected
	// socket. Ownership of the new descriptor transfers to the caller.
	Accept() (Socket, error)

	// Read fills p with at most one syscall's worth of bytes.
	Read(p []byte) (int, error)

	// Write sends at most one syscall's worth of bytes from p.
	Write(p []byte) (int, error)

	// Close releases the descriptor. The descriptor is closed at most
	// once; further calls are no-ops.
	Close() error

	// PeerAddr returns the remote address of a connected socket.
	PeerAddr() (netip.AddrPort, error)

	// LocalAddr returns the locally bound address.
	LocalAddr() (netip.AddrPort, error)
}

// SocketFactory creates an unbound Socket. The transport layer takes a
// factory rather than a concrete type so tests can substitute fakes.
type SocketFactory func() (Socket, error)
