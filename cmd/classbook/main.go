package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikmy/classbook/internal/api"
	"github.com/nikmy/classbook/internal/records"
	"github.com/nikmy/classbook/internal/storage"
	"github.com/nikmy/classbook/internal/transport"
	"github.com/nikmy/classbook/pkg/errors"
	"github.com/nikmy/classbook/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	backend, err := storage.New(ctx, cfg.Storage, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init storage"))
	}

	store, err := records.Open(ctx, backend, cfg.Storage.Timeout, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "open records"))
	}

	router, err := api.NewRouter(store, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "build router"))
	}

	server, err := transport.New(cfg.Transport, router, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init transport"))
	}

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		defer close(stopped)
		log.Infof("graceful shutdown...")

		shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
		defer stop()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Error(errors.WrapFail(err, "shutdown transport"))
		}

		err = backend.Close(shutdownCtx)
		if err != nil {
			log.Error(errors.WrapFail(err, "close storage"))
		}
	})

	log.Infof("starting in %s environment", cfg.Environment)

	err = server.Serve(ctx)
	if err != nil {
		log.Error(errors.WrapFail(err, "serve"))
		cancel()
	}

	<-stopped
	log.Infof("shutdown complete")
}
