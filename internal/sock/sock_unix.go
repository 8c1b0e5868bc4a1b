// File: internal/sock/sock_unix.go
//go:build unix

//
// Raw TCP socket over golang.org/x/sys/unix. Blocking mode throughout; the
// worker pool provides the concurrency, not the socket.

package sock

import (
	"net/netip"
	"os"
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/scratchnet/httpd/api"
)

// TCP owns one OS socket descriptor.
type TCP struct {
	fd atomic.Int64
}

// New creates an unbound IPv4 TCP socket with SO_REUSEADDR enabled, so a
// restarted server does not fail binding over a lingering socket.
func New() (api.Socket, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, unix.IPPROTO_TCP)
	if err != nil {
		return nil, os.NewSyscallError("socket", err)
	}
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		_ = unix.Close(fd)
		return nil, os.NewSyscallError("setsockopt", err)
	}
	return newFromFD(fd), nil
}

func newFromFD(fd int) *TCP {
	s := &TCP{}
	s.fd.Store(int64(fd))
	return s
}

// Bind implements api.Socket.
func (s *TCP) Bind(addr netip.AddrPort) error {
	fd, err := s.rawFD()
	if err != nil {
		return err
	}
	sa := &unix.SockaddrInet4{Port: int(addr.Port()), Addr: addr.Addr().As4()}
	return os.NewSyscallError("bind", unix.Bind(fd, sa))
}

// Listen implements api.Socket.
func (s *TCP) Listen(backlog int) error {
	fd, err := s.rawFD()
	if err != nil {
		return err
	}
	return os.NewSyscallError("listen", unix.Listen(fd, backlog))
}

// Accept blocks until a peer connects. The returned socket exclusively owns
// the new descriptor.
func (s *TCP) Accept() (api.Socket, error) {
	fd, err := s.rawFD()
	if err != nil {
		return nil, err
	}
	nfd, _, err := unix.Accept(fd)
	if err != nil {
		return nil, os.NewSyscallError("accept", err)
	}
	return newFromFD(nfd), nil
}

// Read implements api.Socket. One syscall, no loop.
func (s *TCP) Read(p []byte) (int, error) {
	fd, err := s.rawFD()
	if err != nil {
		return 0, err
	}
	n, err := unix.Read(fd, p)
	if err != nil {
		return 0, os.NewSyscallError("read", err)
	}
	return n, nil
}

// Write implements api.Socket. One syscall, no loop; may write short.
func (s *TCP) Write(p []byte) (int, error) {
	fd, err := s.rawFD()
	if err != nil {
		return 0, err
	}
	n, err := unix.Write(fd, p)
	if err != nil {
		return 0, os.NewSyscallError("write", err)
	}
	return n, nil
}

// Close releases the descriptor. The atomic swap guarantees the underlying
// fd is closed at most once; later calls are no-ops.
func (s *TCP) Close() error {
	fd := s.fd.Swap(-1)
	if fd < 0 {
		return nil
	}
	return os.NewSyscallError("close", unix.Close(int(fd)))
}

// PeerAddr implements api.Socket.
func (s *TCP) PeerAddr() (netip.AddrPort, error) {
	fd, err := s.rawFD()
	if err != nil {
		return netip.AddrPort{}, err
	}
	sa, err := unix.Getpeername(fd)
	if err != nil {
		return netip.AddrPort{}, os.NewSyscallError("getpeername", err)
	}
	return toAddrPort(sa)
}

// LocalAddr implements api.Socket.
func (s *TCP) LocalAddr() (netip.AddrPort, error) {
	fd, err := s.rawFD()
	if err != nil {
		return netip.AddrPort{}, err
	}
	sa, err := unix.Getsockname(fd)
	if err != nil {
		return netip.AddrPort{}, os.NewSyscallError("getsockname", err)
	}
	return toAddrPort(sa)
}

func (s *TCP) rawFD() (int, error) {
	fd := s.fd.Load()
	if fd < 0 {
		return 0, api.ErrSocketClosed
	}
	return int(fd), nil
}

func toAddrPort(sa unix.Sockaddr) (netip.AddrPort, error) {
	switch a := sa.(type) {
	case *unix.SockaddrInet4:
		return netip.AddrPortFrom(netip.AddrFrom4(a.Addr), uint16(a.Port)), nil
	case *unix.SockaddrInet6:
		return netip.AddrPortFrom(netip.AddrFrom16(a.Addr), uint16(a.Port)), nil
	default:
		return netip.AddrPort{}, api.ErrNoIPv4Addr
	}
}
