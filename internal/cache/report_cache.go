package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/evamed/evamed/internal/dto"
	"github.com/go-redis/redis/v8"
)

// ReportCache caches rendered reports keyed by evaluation token. Reports are
// immutable once written, so a TTL is only there to bound memory.
type ReportCache interface {
	Get(ctx context.Context, token string) (*dto.ResultDTO, error)
	Set(ctx context.Context, token string, report *dto.ResultDTO) error
}

type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReportCache(client *redis.Client, ttl time.Duration) ReportCache {
	return &reportCache{client: client, ttl: ttl}
}

func (c *reportCache) Get(ctx context.Context, token string) (*dto.ResultDTO, error) {
	data, err := c.client.Get(ctx, "report:"+token).Result()
	if err != nil {
		return nil, err
	}
	var report dto.ResultDTO
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *reportCache) Set(ctx context.Context, token string, report *dto.ResultDTO) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "report:"+token, data, c.ttl).Err()
}
