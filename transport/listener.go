// File: transport/listener.go
//
// TCPListener binds one socket to an address and hands out accepted
// connections, either one at a time or as a lazy infinite sequence.

package transport

import (
	"iter"
	"net/netip"

	"github.com/scratchnet/httpd/api"
	"github.com/scratchnet/httpd/internal/sock"
)

// Backlog is the listen(2) backlog used for every listener.
const Backlog = 128

// TCPListener owns one bound, listening socket.
type TCPListener struct {
	sock api.Socket
}

// Listen resolves addr to its first IPv4 candidate, then creates, binds and
// listens a socket from factory. Pass sock.New outside of tests.
func Listen(addr string, factory api.SocketFactory) (*TCPListener, error) {
	ap, err := ResolveIPv4(addr)
	if err != nil {
		return nil, err
	}
	s, err := factory()
	if err != nil {
		return nil, err
	}
	if err := s.Bind(ap); err != nil {
		_ = s.Close()
		return nil, err
	}
	if err := s.Listen(Backlog); err != nil {
		_ = s.Close()
		return nil, err
	}
	return &TCPListener{sock: s}, nil
}

// ListenTCP is Listen over the OS-backed socket implementation.
func ListenTCP(addr string) (*TCPListener, error) {
	return Listen(addr, sock.New)
}

// Accept blocks until a peer connects and wraps it as a stream together
// with its resolved peer address.
func (l *TCPListener) Accept() (*TCPStream, error) {
	s, err := l.sock.Accept()
	if err != nil {
		return nil, err
	}
	peer, err := s.PeerAddr()
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	return &TCPStream{sock: s, peer: peer}, nil
}

// Incoming returns a lazy, infinite, non-restartable sequence of accepted
// connections. Each pull performs one blocking Accept; accept failures are
// yielded in-band as the error item and never end the sequence.
func (l *TCPListener) Incoming() iter.Seq2[*TCPStream, error] {
	return func(yield func(*TCPStream, error) bool) {
		for {
			st, err := l.Accept()
			if !yield(st, err) {
				return
			}
		}
	}
}

// LocalAddr returns the bound address, including the OS-chosen port when
// the listener was bound to port 0.
func (l *TCPListener) LocalAddr() (netip.AddrPort, error) {
	return l.sock.LocalAddr()
}

// Close shuts the listening socket; a blocked Accept returns an error.
func (l *TCPListener) Close() error {
	return l.sock.Close()
}
