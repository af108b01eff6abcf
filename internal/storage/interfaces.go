package storage

import (
	"context"

	"github.com/nikmy/classbook/internal/models"
)

// Backend loads and persists full store snapshots.
// Load returns (nil, nil) when nothing has been persisted yet.
type Backend interface {
	Load(ctx context.Context) (*models.Snapshot, error)
	Save(ctx context.Context, snapshot models.Snapshot) error
	Close(ctx context.Context) error
}
