package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "guzo:session:"

// RedisStore persists session keys in redis. Values never expire; logout is
// the only thing that removes them.
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{Client: client}, nil
}

func (r *RedisStore) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 3*time.Second)
}

func (r *RedisStore) Get(key string) (string, bool, error) {
	ctx, cancel := r.ctx()
	defer cancel()
	v, err := r.Client.Get(ctx, redisKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *RedisStore) Set(key, value string) error {
	ctx, cancel := r.ctx()
	defer cancel()
	return r.Client.Set(ctx, redisKeyPrefix+key, value, 0).Err()
}

func (r *RedisStore) Remove(key string) error {
	ctx, cancel := r.ctx()
	defer cancel()
	return r.Client.Del(ctx, redisKeyPrefix+key).Err()
}

func (r *RedisStore) Close() error {
	return r.Client.Close()
}
