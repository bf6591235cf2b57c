package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"Community_API/internal/model"

	"github.com/redis/go-redis/v9"
)

const summaryPrefix = "summary"

// SummaryCache 缓存聚合层填充用的 {id,name} 摘要。
// 缓存只是优化：读写失败一律当未命中，正确性不依赖它。
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{client: client, ttl: ttl}
}

func summaryKey(table, id string) string {
	return fmt.Sprintf("%s:%s:%s", summaryPrefix, table, id)
}

func (c *SummaryCache) Get(ctx context.Context, table, id string) *model.Summary {
	raw, err := c.client.Get(ctx, summaryKey(table, id)).Bytes()
	if err != nil {
		return nil
	}
	var s model.Summary
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

func (c *SummaryCache) Set(ctx context.Context, table, id string, s *model.Summary) {
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	c.client.Set(ctx, summaryKey(table, id), raw, c.ttl)
}
