package storage

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nikmy/classbook/internal/models"
	"github.com/nikmy/classbook/pkg/errors"
	"github.com/nikmy/classbook/pkg/logger"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS snapshots (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	body TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);`

func NewSQLite(ctx context.Context, path string, log logger.Logger) (*sqliteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.WrapFailf(err, "open %s", path)
	}

	for _, stmt := range []string{`PRAGMA journal_mode=WAL;`, sqliteSchema} {
		_, err = db.ExecContext(ctx, stmt)
		if err != nil {
			_ = db.Close()
			return nil, errors.WrapFail(err, "prepare sqlite schema")
		}
	}

	return &sqliteStorage{
		db:  db,
		log: log.With("sqlite_storage"),
	}, nil
}

// sqliteStorage holds a single row with the JSON snapshot.
type sqliteStorage struct {
	db  *sql.DB
	log logger.Logger
}

func (s *sqliteStorage) Load(ctx context.Context) (*models.Snapshot, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM snapshots WHERE id = 1`).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "select snapshot")
	}

	return decodeSnapshot([]byte(body))
}

func (s *sqliteStorage) Save(ctx context.Context, snapshot models.Snapshot) error {
	data, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO snapshots (id, body, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		string(data), time.Now().Unix(),
	)
	return errors.WrapFail(err, "upsert snapshot")
}

func (s *sqliteStorage) Close(context.Context) error {
	return errors.WrapFail(s.db.Close(), "close sqlite db")
}
