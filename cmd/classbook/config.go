package main

import (
	"flag"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nikmy/classbook/internal/storage"
	"github.com/nikmy/classbook/internal/transport"
	"github.com/nikmy/classbook/pkg/environment"
	"github.com/nikmy/classbook/pkg/errors"
)

const (
	envPort     = "PORT"
	envDataFile = "DATA_FILE"
)

type Config struct {
	Environment environment.Env  `yaml:"Environment"`
	Transport   transport.Config `yaml:"Transport"`
	Storage     storage.Config   `yaml:"Storage"`
}

// loadConfig reads the yaml file chosen by -config, then applies .env,
// the PORT and DATA_FILE variables and the -env flag on top of it. A
// missing config or .env file is not an error.
func loadConfig(args []string) (*Config, error) {
	flags := flag.NewFlagSet("classbook", flag.ContinueOnError)
	configPath := flags.String("config", "config.yaml", "path to yaml config")
	dotenvPath := flags.String("dotenv", ".env", "path to .env file")
	rawEnv := flags.String("env", "", "environment (dev, prod)")

	err := flags.Parse(args)
	if err != nil {
		return nil, errors.WrapFail(err, "parse flags")
	}

	var cfg Config

	data, err := os.ReadFile(*configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, errors.WrapFailf(err, "read %q", *configPath)
	default:
		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			return nil, errors.WrapFail(err, "parse yaml")
		}
	}

	err = godotenv.Load(*dotenvPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.WrapFailf(err, "load %q", *dotenvPath)
	}

	if raw, ok := os.LookupEnv(envPort); ok && raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return nil, errors.Errorf("bad %s %q", envPort, raw)
		}
		cfg.Transport.Port = port
	}

	if path, ok := os.LookupEnv(envDataFile); ok && path != "" {
		cfg.Storage.File.Path = path
	}

	if *rawEnv != "" {
		cfg.Environment = environment.FromString(*rawEnv)
	}

	return &cfg, nil
}
