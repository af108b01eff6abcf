package logger

// NewStub returns a Logger that drops everything except Panic.
func NewStub() Logger {
	return stubLogger{}
}

type stubLogger struct{}

func (s stubLogger) With(string) Logger { return s }

func (s stubLogger) WithFields(...any) Logger { return s }

func (stubLogger) Debugf(string, ...any) {}
func (stubLogger) Infof(string, ...any)  {}

func (stubLogger) Warn(error)  {}
func (stubLogger) Error(error) {}

func (stubLogger) Panic(err error) {
	panic(err)
}

func (stubLogger) Sync() {}
