package storage

import "time"

type Kind string

const (
	KindFile   Kind = "file"
	KindMongo  Kind = "mongo"
	KindRedis  Kind = "redis"
	KindSQLite Kind = "sqlite"
)

type Config struct {
	Backend Kind          `yaml:"backend"`
	Timeout time.Duration `yaml:"timeout"`

	File struct {
		Path string `yaml:"path"`
	} `yaml:"file"`

	Mongo MongoConfig `yaml:"mongo"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Key      string `yaml:"key"`
	} `yaml:"redis"`

	SQLite struct {
		Path string `yaml:"path"`
	} `yaml:"sqlite"`
}

type MongoConfig struct {
	URL        string        `yaml:"url"`
	Timeout    time.Duration `yaml:"timeout"`
	Database   string        `yaml:"database"`
	Collection string        `yaml:"collection"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`
}
