package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// TasksKey is the single key holding the serialized task collection.
const TasksKey = "content-dashboard:tasks"

// ErrBlobNotFound is returned by Load when no blob has been written yet.
var ErrBlobNotFound = errors.New("task blob not found")

// Blob is the flat key-value persistence for the task collection: one opaque
// value, read at startup, rewritten in full after every mutation.
type Blob interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

type RedisBlob struct {
	rdb *redis.Client
	key string
}

func NewRedisBlob(rdb *redis.Client) *RedisBlob {
	return &RedisBlob{rdb: rdb, key: TasksKey}
}

func (b *RedisBlob) Load(ctx context.Context) ([]byte, error) {
	data, err := b.rdb.Get(ctx, b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (b *RedisBlob) Save(ctx context.Context, data []byte) error {
	return b.rdb.Set(ctx, b.key, data, 0).Err()
}
