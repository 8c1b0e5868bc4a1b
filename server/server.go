// File: server/server.go
//
// Server orchestration: bind the listener, size and start the pool, and
// submit one job per accepted connection. A job runs the strictly
// sequential state machine Read -> Parse -> Handle -> Serialize -> Write
// -> Close, timed end to end. One request/response pair per connection;
// the socket is released afterwards regardless of outcome.

package server

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/scratchnet/httpd/control"
	"github.com/scratchnet/httpd/internal/sock"
	"github.com/scratchnet/httpd/pool"
	"github.com/scratchnet/httpd/protocol"
	"github.com/scratchnet/httpd/router"
	"github.com/scratchnet/httpd/transport"
)

// New binds a listener for cfg.ListenAddr and starts the worker pool. A nil
// cfg means DefaultConfig.
func New(cfg *Config, opts ...Option) (*Server, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &Server{
		cfg:     cfg,
		factory: sock.New,
		metrics: control.NewMetricsRegistry(),
	}
	for _, o := range opts {
		o(s)
	}
	l, err := transport.Listen(cfg.ListenAddr, s.factory)
	if err != nil {
		return nil, err
	}
	s.listener = l
	s.pool = pool.New(cfg.Workers)
	return s, nil
}

// Serve accepts connections until Shutdown, submitting one job per
// connection. Accept failures are logged and counted; they never stop the
// loop or touch other connections.
func (s *Server) Serve(handler router.Handler) error {
	log := control.Logger()
	log.Info().Str("addr", s.cfg.ListenAddr).Int("workers", s.pool.Size()).Msg("server listening")

	for stream, err := range s.listener.Incoming() {
		if err != nil {
			if s.closed.Load() {
				return nil
			}
			s.metrics.Inc("accept_errors_total")
			log.Warn().Err(err).Msg("accept failed")
			continue
		}
		s.metrics.Inc("connections_total")
		st := stream
		if err := s.pool.Submit(func() { s.serveConn(st, handler) }); err != nil {
			_ = st.Close()
			return err
		}
	}
	return nil
}

// Shutdown stops accepting, then drains and joins the pool. Idempotent.
func (s *Server) Shutdown() {
	if s.closed.CompareAndSwap(false, true) {
		_ = s.listener.Close()
		s.pool.Close()
	}
}

// Addr returns the bound address, with the OS-chosen port when the config
// asked for port 0.
func (s *Server) Addr() (string, error) {
	ap, err := s.listener.LocalAddr()
	if err != nil {
		return "", err
	}
	return ap.String(), nil
}

// Metrics exposes the server's registry.
func (s *Server) Metrics() *control.MetricsRegistry {
	return s.metrics
}

// serveConn is one connection's job. Transport, parse, and handler errors
// abort the job silently: the error is logged and counted, the socket is
// closed, and no response is written. "No response" is therefore distinct
// from an error status response.
func (s *Server) serveConn(stream *transport.TCPStream, handler router.Handler) {
	defer stream.Close()
	start := time.Now()
	log := control.Logger().With().
		Str("conn", uuid.NewString()).
		Str("peer", stream.Peer().String()).
		Logger()

	// One bounded read. Bytes beyond the buffer are lost; bytes after the
	// logical end of the request become body content.
	buf := make([]byte, s.cfg.ReadBufferSize)
	n, err := stream.Read(buf)
	if err != nil {
		s.metrics.Inc("read_errors_total")
		log.Warn().Err(err).Msg("read failed")
		return
	}

	// Lossy conversion: invalid UTF-8 is replaced, not rejected.
	raw := strings.ToValidUTF8(string(buf[:n]), string(utf8.RuneError))

	req, err := protocol.ParseRequest(raw)
	if err != nil {
		s.metrics.Inc("parse_errors_total")
		log.Warn().Err(err).Msg("dropping unparsable request")
		return
	}

	resp, err := handler.Handle(req)
	if err != nil {
		s.metrics.Inc("handler_errors_total")
		log.Error().Err(err).Str("url", req.URL).Msg("handler failed")
		return
	}

	if _, err := stream.Write(resp.Bytes()); err != nil {
		s.metrics.Inc("write_errors_total")
		log.Warn().Err(err).Msg("write failed")
		return
	}

	elapsed := time.Since(start)
	s.metrics.Inc("requests_handled_total")
	s.metrics.Set("last_job_duration", elapsed)
	log.Info().
		Str("method", string(req.Method)).
		Str("url", req.URL).
		Int("status", resp.Status.Code()).
		Dur("elapsed", elapsed).
		Msg("request served")
}
