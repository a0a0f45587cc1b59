package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/airports/config"
	"github.com/Domenick1991/airports/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cache:airports:"

// RedisCache keeps JSON encoded list pages of rarely changing reference data.
type RedisCache struct {
	client  *redis.Client
	listTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client:  redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		listTTL: time.Duration(cfg.ListTTLSeconds) * time.Second,
	}
}

// Page is a cached list page together with the total row count.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// GetList decodes a cached page into dst. A miss reports false with no error.
func (c *RedisCache) GetList(ctx context.Context, resource string, page domain.Page, dst any) (bool, error) {
	data, err := c.client.Get(ctx, ListKey(resource, page)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) SetList(ctx context.Context, resource string, page domain.Page, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, ListKey(resource, page), payload, c.listTTL).Err()
}

// Invalidate drops every cached page of the resource.
func (c *RedisCache) Invalidate(ctx context.Context, resource string) error {
	iter := c.client.Scan(ctx, 0, resourcePattern(resource), 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func ListKey(resource string, page domain.Page) string {
	return fmt.Sprintf("%s%s:limit:%d:offset:%d", keyPrefix, resource, page.Limit, page.Offset)
}

func resourcePattern(resource string) string {
	return keyPrefix + resource + ":*"
}
