package transport

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nikmy/classbook/internal/wire"
	"github.com/nikmy/classbook/pkg/errors"
	"github.com/nikmy/classbook/pkg/logger"
)

func newFiberServer(cfg Config, handler Dispatcher, log logger.Logger) *fiberServer {
	serveLog := log.With("fiber_transport")

	fiberCfg := fiber.Config{
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		BodyLimit:             int(cfg.MaxBody),
		DisableStartupMessage: true,
		DisableKeepalive:      true,
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		serveLog.Warn(errors.WrapFail(err, "handle http request"))

		resp := badRequest()
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code == http.StatusRequestEntityTooLarge {
			resp = tooLarge()
		}
		return send(c, resp)
	}

	s := &fiberServer{
		handler: handler,
		http:    fiber.New(fiberCfg),
		addr:    cfg.Addr(),
		log:     serveLog,
	}

	s.http.Use(s.handle)

	return s
}

// fiberServer serves the same route table as tcpServer on top of fiber.
type fiberServer struct {
	handler Dispatcher
	http    *fiber.App
	addr    string
	log     logger.Logger
}

func (s *fiberServer) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return errors.WrapFailf(err, "listen on %s", s.addr)
	case <-ctx.Done():
		return nil
	}
}

func (s *fiberServer) Shutdown(ctx context.Context) error {
	return errors.WrapFail(s.http.ShutdownWithContext(ctx), "shutdown http server")
}

func (s *fiberServer) handle(c *fiber.Ctx) error {
	start := time.Now()

	req := &wire.Request{
		Method:  c.Method(),
		Path:    c.OriginalURL(),
		Proto:   string(c.Request().Header.Protocol()),
		Headers: make(map[string]string),
		Body:    bytes.Clone(c.Body()),
	}
	c.Request().Header.VisitAll(func(key, value []byte) {
		req.Headers[string(key)] = string(value)
	})

	resp := s.handler.Dispatch(req)

	s.log.WithFields("request_id", uuid.NewString(), "remote", c.IP()).
		Infof("%s %s -> %d in %s", req.Method, req.Path, resp.Status, time.Since(start))

	return send(c, resp)
}

// send copies resp onto c. Content-Length and Connection stay fiber's.
func send(c *fiber.Ctx, resp *wire.Response) error {
	for _, kv := range resp.Headers() {
		switch kv[0] {
		case fiber.HeaderContentLength, fiber.HeaderConnection:
			continue
		}
		c.Set(kv[0], kv[1])
	}
	return c.Status(resp.Status).Send(resp.Body)
}
