package storage

import (
	"cmp"
	"context"
	"encoding/json"

	"github.com/nikmy/classbook/internal/models"
	"github.com/nikmy/classbook/pkg/errors"
	"github.com/nikmy/classbook/pkg/logger"
)

const (
	defaultFile       = "data.json"
	defaultSQLiteFile = "classbook.db"
	defaultDatabase   = "classbook"
	defaultCollection = "snapshots"
)

func New(ctx context.Context, cfg Config, log logger.Logger) (Backend, error) {
	switch cfg.Backend {
	case KindFile, "":
		return NewFile(cmp.Or(cfg.File.Path, defaultFile), log), nil
	case KindMongo:
		mongoCfg := cfg.Mongo
		mongoCfg.Database = cmp.Or(mongoCfg.Database, defaultDatabase)
		mongoCfg.Collection = cmp.Or(mongoCfg.Collection, defaultCollection)
		return NewMongo(ctx, mongoCfg, log)
	case KindRedis:
		return NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Key, log)
	case KindSQLite:
		return NewSQLite(ctx, cmp.Or(cfg.SQLite.Path, defaultSQLiteFile), log)
	default:
		return nil, errors.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func encodeSnapshot(s models.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s.Clone(), "", "    ")
	return data, errors.WrapFail(err, "marshal snapshot")
}

func decodeSnapshot(data []byte) (*models.Snapshot, error) {
	var s models.Snapshot
	err := json.Unmarshal(data, &s)
	if err != nil {
		return nil, errors.WrapFail(err, "unmarshal snapshot")
	}

	s = s.Clone()
	return &s, nil
}
