package transport

import (
	"context"

	"github.com/nikmy/classbook/internal/wire"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Dispatcher turns one parsed request into its response.
type Dispatcher interface {
	Dispatch(req *wire.Request) *wire.Response
}
