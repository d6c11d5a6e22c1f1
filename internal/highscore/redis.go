package highscore

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// redisKey is the single key holding the shared high score.
const redisKey = "pinball:highscore"

// RedisStore keeps the high score in Redis so several cabinets can share
// one scoreboard.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Load() (int, error) {
	ctx := context.Background()
	val, err := s.client.Get(ctx, redisKey).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(val)
}

func (s *RedisStore) Save(score int) error {
	ctx := context.Background()
	return s.client.Set(ctx, redisKey, score, 0).Err()
}

// Close releases the underlying connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
