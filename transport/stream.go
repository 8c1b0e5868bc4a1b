// File: transport/stream.go
//
// TCPStream wraps one accepted socket as an unbuffered byte stream.

package transport

import (
	"net/netip"

	"github.com/scratchnet/httpd/api"
)

// TCPStream is one connected peer. It owns the underlying socket and lives
// for exactly one request/response exchange.
type TCPStream struct {
	sock api.Socket
	peer netip.AddrPort
}

// Read implements io.Reader directly over the socket, no buffering.
func (s *TCPStream) Read(p []byte) (int, error) {
	return s.sock.Read(p)
}

// Write implements io.Writer directly over the socket, no buffering.
func (s *TCPStream) Write(p []byte) (int, error) {
	return s.sock.Write(p)
}

// Close releases the connection's socket.
func (s *TCPStream) Close() error {
	return s.sock.Close()
}

// Peer returns the remote address captured at accept time.
func (s *TCPStream) Peer() netip.AddrPort {
	return s.peer
}
