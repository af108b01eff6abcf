package logger

import (
	"go.uber.org/zap"

	"github.com/nikmy/classbook/pkg/environment"
	"github.com/nikmy/classbook/pkg/errors"
)

type Logger interface {
	With(label string) Logger
	WithFields(kv ...any) Logger

	Debugf(format string, args ...any)
	Infof(format string, args ...any)

	Warn(err error)
	Error(err error)
	Panic(err error)

	Sync()
}

func New(env environment.Env) (Logger, error) {
	var logger *zap.Logger
	var err error

	switch env {
	case environment.Production:
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, errors.WrapFail(err, "init zap logger")
	}

	return &wrapper{base: logger.Sugar()}, nil
}

type wrapper struct {
	base *zap.SugaredLogger
}

func (w *wrapper) With(label string) Logger {
	return &wrapper{w.base.Named(label)}
}

func (w *wrapper) WithFields(kv ...any) Logger {
	return &wrapper{w.base.With(kv...)}
}

func (w *wrapper) Debugf(format string, args ...any) { w.base.Debugf(format, args...) }
func (w *wrapper) Infof(format string, args ...any)  { w.base.Infof(format, args...) }

func (w *wrapper) Warn(err error)  { w.base.Warn(err.Error()) }
func (w *wrapper) Error(err error) { w.base.Error(err.Error()) }

func (w *wrapper) Panic(err error) {
	_ = w.base.Sync()
	w.base.Panic(err.Error())
}

func (w *wrapper) Sync() {
	_ = w.base.Sync()
}
