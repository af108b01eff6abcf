package transport

import (
	"strconv"
	"time"
)

type Kind string

const (
	KindRaw   Kind = "raw"
	KindFiber Kind = "fiber"
)

const (
	DefaultPort    = 8080
	DefaultMaxBody = 1 << 20
)

type Config struct {
	Kind         Kind          `yaml:"kind"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	MaxBody      int64         `yaml:"max_body"`
}

func (c Config) withDefaults() Config {
	if c.Kind == "" {
		c.Kind = KindRaw
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.MaxBody <= 0 {
		c.MaxBody = DefaultMaxBody
	}
	return c
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
