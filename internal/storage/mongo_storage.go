package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/classbook/internal/models"
	"github.com/nikmy/classbook/pkg/errors"
	"github.com/nikmy/classbook/pkg/logger"
	"github.com/nikmy/classbook/pkg/mongotools"
)

const snapshotDocID = "snapshot"

type mongoSnapshot struct {
	ID              string `bson:"_id"`
	models.Snapshot `bson:",inline"`
}

func NewMongo(ctx context.Context, cfg MongoConfig, log logger.Logger) (*mongoStorage, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)
	if cfg.Auth.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.WrapFail(err, "ping mongo db")
	}

	return newMongoStorage(client.Database(cfg.Database).Collection(cfg.Collection), log), nil
}

func newMongoStorage(coll *mongo.Collection, log logger.Logger) *mongoStorage {
	return &mongoStorage{
		coll: coll,
		log:  log.With("mongo_storage"),
	}
}

type mongoStorage struct {
	coll *mongo.Collection
	log  logger.Logger
}

func (m *mongoStorage) Load(ctx context.Context) (*models.Snapshot, error) {
	r := m.coll.FindOne(ctx, mongotools.FilterByID(snapshotDocID))

	err := r.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "find snapshot")
	}

	var doc mongoSnapshot
	err = r.Decode(&doc)
	if err != nil {
		return nil, errors.WrapFail(err, "decode snapshot")
	}

	s := doc.Snapshot.Clone()
	return &s, nil
}

func (m *mongoStorage) Save(ctx context.Context, snapshot models.Snapshot) error {
	_, err := m.coll.ReplaceOne(
		ctx,
		mongotools.FilterByID(snapshotDocID),
		mongoSnapshot{ID: snapshotDocID, Snapshot: snapshot.Clone()},
		mongotools.Upsert(),
	)
	return errors.WrapFail(err, "replace snapshot")
}

func (m *mongoStorage) Close(ctx context.Context) error {
	err := m.coll.Database().Client().Disconnect(ctx)
	return errors.WrapFail(err, "close mongo db connection")
}
