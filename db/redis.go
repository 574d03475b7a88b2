package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const quotaKeyPrefix = "mediaplatform:quota"

func ConnectRedis(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}

	return client, nil
}

// QuotaCounter tracks per-user daily usage of the generation endpoints.
type QuotaCounter struct {
	client *redis.Client
}

func NewQuotaCounter(client *redis.Client) *QuotaCounter {
	return &QuotaCounter{client: client}
}

func (q *QuotaCounter) IncrDaily(ctx context.Context, userID int64) (int64, error) {
	key := fmt.Sprintf("%s:%d:%s", quotaKeyPrefix, userID, time.Now().UTC().Format("2006-01-02"))

	count, err := q.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	if count == 1 {
		q.client.Expire(ctx, key, 48*time.Hour)
	}

	return count, nil
}
