package transport

import (
	"context"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/nikmy/classbook/internal/wire"
	"github.com/nikmy/classbook/pkg/errors"
	"github.com/nikmy/classbook/pkg/logger"
)

func newTCPServer(cfg Config, handler Dispatcher, log logger.Logger) *tcpServer {
	return &tcpServer{
		cfg:     cfg,
		handler: handler,
		log:     log.With("tcp_transport"),
	}
}

// tcpServer answers exactly one request per accepted connection and closes
// it afterwards. Connections are served concurrently.
type tcpServer struct {
	cfg     Config
	handler Dispatcher
	log     logger.Logger

	mu       sync.Mutex
	listener net.Listener
	closing  atomic.Bool
	conns    sync.WaitGroup
}

func (s *tcpServer) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return errors.WrapFailf(err, "listen on %s", s.cfg.Addr())
	}
	return s.serve(ctx, ln)
}

func (s *tcpServer) serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	if s.closing.Load() {
		return s.closeListener()
	}

	s.conns.Add(1)
	defer s.conns.Done()

	stop := context.AfterFunc(ctx, func() { _ = s.closeListener() })
	defer stop()

	s.log.Infof("listening on %s", ln.Addr())

	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.closing.Load() || ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}

			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				s.log.Warn(errors.WrapFail(err, "accept connection"))
				continue
			}
			return errors.WrapFail(err, "accept connection")
		}

		s.conns.Add(1)
		go func() {
			defer s.conns.Done()
			s.handle(conn)
		}()
	}
}

// Shutdown stops accepting and waits for the accept loop and in-flight
// connections until ctx is done.
func (s *tcpServer) Shutdown(ctx context.Context) error {
	err := s.closeListener()

	done := make(chan struct{})
	go func() {
		s.conns.Wait()
		close(done)
	}()

	select {
	case <-done:
		return err
	case <-ctx.Done():
		return errors.Join([]error{err, errors.WrapFail(ctx.Err(), "wait for open connections")})
	}
}

func (s *tcpServer) closeListener() error {
	s.closing.Store(true)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}

	err := s.listener.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		return errors.WrapFail(err, "close listener")
	}
	return nil
}

func (s *tcpServer) handle(conn net.Conn) {
	defer func() { _ = conn.Close() }()

	start := time.Now()
	log := s.log.WithFields("request_id", uuid.NewString(), "remote", conn.RemoteAddr().String())

	defer func() {
		if p := recover(); p != nil {
			log.Error(errors.Errorf("connection handler panicked: %v", p))
			_, _ = internalError().WriteTo(conn)
		}
	}()

	if s.cfg.ReadTimeout > 0 {
		_ = conn.SetReadDeadline(start.Add(s.cfg.ReadTimeout))
	}

	var resp *wire.Response
	method, path := "-", "-"

	req, err := wire.ReadRequest(conn, s.cfg.MaxBody)
	switch {
	case err == nil:
		method, path = req.Method, req.Path
		resp = s.handler.Dispatch(req)
	case errors.Is(err, io.EOF):
		log.Debugf("connection closed without a request")
		return
	case errors.Is(err, wire.ErrBodyTooLarge):
		log.Warn(err)
		resp = tooLarge()
	default:
		log.Warn(errors.WrapFail(err, "read request"))
		resp = badRequest()
	}

	if s.cfg.WriteTimeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	}

	_, err = resp.WriteTo(conn)
	if err != nil {
		log.Warn(err)
		return
	}

	log.Infof("%s %s -> %d in %s", method, path, resp.Status, time.Since(start))
}
