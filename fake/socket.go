// File: fake/socket.go
//
// Deterministic in-memory implementation of api.Socket for tests.
// Scripted reads, captured writes, injectable errors, and a queue of
// connections to hand out from Accept.

package fake

import (
	"net/netip"
	"sync"

	"github.com/scratchnet/httpd/api"
)

// acceptItem is one scripted Accept outcome.
type acceptItem struct {
	sock *Socket
	err  error
}

// Socket is a fake api.Socket usable as either a listener or a stream.
type Socket struct {
	mu        sync.Mutex
	local     netip.AddrPort
	peer      netip.AddrPort
	recv      [][]byte // chunks served by successive Reads
	sent      []byte   // captured writes
	pending   chan acceptItem
	done      chan struct{}
	closeOnce sync.Once
	closed    bool

	bindErr   error
	listenErr error
	readErr   error
	writeErr  error

	backlog int
}

// NewSocket returns an open fake socket with default addresses.
func NewSocket() *Socket {
	return &Socket{
		local:   netip.MustParseAddrPort("127.0.0.1:3000"),
		peer:    netip.MustParseAddrPort("127.0.0.1:4000"),
		pending: make(chan acceptItem, 16),
		done:    make(chan struct{}),
	}
}

// Factory returns an api.SocketFactory handing out exactly this socket.
func (s *Socket) Factory() api.SocketFactory {
	return func() (api.Socket, error) {
		return s, nil
	}
}

// Bind implements api.Socket, recording the address as the local one.
func (s *Socket) Bind(addr netip.AddrPort) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bindErr != nil {
		return s.bindErr
	}
	s.local = addr
	return nil
}

// Listen implements api.Socket, recording the backlog.
func (s *Socket) Listen(backlog int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listenErr != nil {
		return s.listenErr
	}
	s.backlog = backlog
	return nil
}

// Accept implements api.Socket. It blocks until a connection or error has
// been enqueued, or until the socket is closed.
func (s *Socket) Accept() (api.Socket, error) {
	select {
	case item := <-s.pending:
		if item.err != nil {
			return nil, item.err
		}
		return item.sock, nil
	case <-s.done:
		return nil, api.ErrSocketClosed
	}
}

// Read implements api.Socket, serving one scripted chunk per call. With no
// chunks left it returns 0 bytes, mirroring a peer that sent nothing more.
func (s *Socket) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, api.ErrSocketClosed
	}
	if s.readErr != nil {
		return 0, s.readErr
	}
	if len(s.recv) == 0 {
		return 0, nil
	}
	n := copy(p, s.recv[0])
	if n < len(s.recv[0]) {
		s.recv[0] = s.recv[0][n:]
	} else {
		s.recv = s.recv[1:]
	}
	return n, nil
}

// Write implements api.Socket, capturing the bytes.
func (s *Socket) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, api.ErrSocketClosed
	}
	if s.writeErr != nil {
		return 0, s.writeErr
	}
	s.sent = append(s.sent, p...)
	return len(p), nil
}

// Close implements api.Socket. Idempotent, and unblocks a pending Accept.
func (s *Socket) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.done)
	})
	return nil
}

// PeerAddr implements api.Socket.
func (s *Socket) PeerAddr() (netip.AddrPort, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peer, nil
}

// LocalAddr implements api.Socket.
func (s *Socket) LocalAddr() (netip.AddrPort, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.local, nil
}

// EnqueueConn scripts the next Accept to return conn.
func (s *Socket) EnqueueConn(conn *Socket) {
	s.pending <- acceptItem{sock: conn}
}

// EnqueueAcceptError scripts the next Accept to fail with err.
func (s *Socket) EnqueueAcceptError(err error) {
	s.pending <- acceptItem{err: err}
}

// AddRecvData appends one chunk to be returned by a future Read.
func (s *Socket) AddRecvData(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chunk := make([]byte, len(data))
	copy(chunk, data)
	s.recv = append(s.recv, chunk)
}

// SentData returns a copy of everything written so far.
func (s *Socket) SentData() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, len(s.sent))
	copy(out, s.sent)
	return out
}

// SetPeer overrides the peer address reported by PeerAddr.
func (s *Socket) SetPeer(addr netip.AddrPort) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.peer = addr
}

// SetReadError makes every Read fail with err.
func (s *Socket) SetReadError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErr = err
}

// SetWriteError makes every Write fail with err.
func (s *Socket) SetWriteError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

// SetBindError makes Bind fail with err.
func (s *Socket) SetBindError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindErr = err
}

// Backlog reports the backlog passed to Listen.
func (s *Socket) Backlog() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backlog
}
