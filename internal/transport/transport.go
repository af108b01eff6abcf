package transport

import (
	"net/http"

	"github.com/nikmy/classbook/internal/wire"
	"github.com/nikmy/classbook/pkg/errors"
	"github.com/nikmy/classbook/pkg/logger"
)

func New(cfg Config, handler Dispatcher, log logger.Logger) (Server, error) {
	cfg = cfg.withDefaults()

	switch cfg.Kind {
	case KindRaw:
		return newTCPServer(cfg, handler, log), nil
	case KindFiber:
		return newFiberServer(cfg, handler, log), nil
	default:
		return nil, errors.Errorf("unknown transport kind %q", cfg.Kind)
	}
}

func tooLarge() *wire.Response {
	return wire.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "Request body too large"})
}

func internalError() *wire.Response {
	return wire.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}

func badRequest() *wire.Response {
	return wire.JSON(http.StatusBadRequest, map[string]string{"error": "Bad request"})
}
