package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"

	"github.com/nikmy/classbook/internal/models"
	"github.com/nikmy/classbook/pkg/errors"
	"github.com/nikmy/classbook/pkg/logger"
)

const defaultRedisKey = "classbook"

// NewRedis keeps the whole snapshot as one JSON value under key.
func NewRedis(ctx context.Context, addr, password string, db int, key string, log logger.Logger) (*redisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})

	err := client.Ping(ctx).Err()
	if err != nil {
		_ = client.Close()
		return nil, errors.WrapFail(err, "ping redis")
	}

	if key == "" {
		key = defaultRedisKey
	}

	return &redisStorage{
		client: client,
		key:    key,
		log:    log.With("redis_storage"),
	}, nil
}

type redisStorage struct {
	client *redis.Client
	key    string
	log    logger.Logger
}

func (r *redisStorage) Load(ctx context.Context) (*models.Snapshot, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFailf(err, "get %s", r.key)
	}

	return decodeSnapshot(data)
}

func (r *redisStorage) Save(ctx context.Context, snapshot models.Snapshot) error {
	data, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, r.key, data, 0).Err()
	return errors.WrapFailf(err, "set %s", r.key)
}

func (r *redisStorage) Close(context.Context) error {
	return errors.WrapFail(r.client.Close(), "close redis client")
}
