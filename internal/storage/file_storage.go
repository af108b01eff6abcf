package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/nikmy/classbook/internal/models"
	"github.com/nikmy/classbook/pkg/errors"
	"github.com/nikmy/classbook/pkg/logger"
)

func NewFile(fileName string, log logger.Logger) *fileStorage {
	return &fileStorage{
		fileName: fileName,
		log:      log.With("file_storage"),
	}
}

type fileStorage struct {
	fileName string
	log      logger.Logger
}

func (s *fileStorage) Load(context.Context) (*models.Snapshot, error) {
	s.log.Infof("reading data from %s", s.fileName)

	data, err := os.ReadFile(s.fileName)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFailf(err, "read %s", s.fileName)
	}

	return decodeSnapshot(data)
}

// Save writes to a temporary file next to the target and renames it over,
// so a crash mid-write leaves the previous snapshot intact.
func (s *fileStorage) Save(_ context.Context, snapshot models.Snapshot) error {
	data, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.fileName), filepath.Base(s.fileName)+".*.tmp")
	if err != nil {
		return errors.WrapFail(err, "create temp file")
	}

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return errors.WrapFailf(err, "write %s", tmp.Name())
	}

	err = os.Rename(tmp.Name(), s.fileName)
	if err != nil {
		_ = os.Remove(tmp.Name())
		return errors.WrapFailf(err, "replace %s", s.fileName)
	}

	s.log.Debugf("saved data to %s", s.fileName)
	return nil
}

func (s *fileStorage) Close(context.Context) error {
	return nil
}
