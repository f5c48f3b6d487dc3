package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"fridge-catalog/internal/core/ingredient"
	"fridge-catalog/internal/infrastructure/config"
	"fridge-catalog/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisStore 以 Redis 保存新增食材
//
// ID 順序存在 <prefix>:order list，條目 JSON 存在 <prefix>:entries hash。
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore 連線 Redis 並測試連線
func NewRedisStore(ctx context.Context, cfg *config.StoreConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// 測試連接
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis store connected",
		zap.String("addr", cfg.RedisAddr),
		zap.String("key_prefix", cfg.KeyPrefix),
	)
	return NewRedisStoreWithClient(client, cfg.KeyPrefix), nil
}

// NewRedisStoreWithClient 使用既有 client
func NewRedisStoreWithClient(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "catalog:extra"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) orderKey() string {
	return s.prefix + ":order"
}

func (s *RedisStore) entriesKey() string {
	return s.prefix + ":entries"
}

// Load 依建立順序讀取新增食材
func (s *RedisStore) Load(ctx context.Context) ([]ingredient.Entry, error) {
	ids, err := s.client.LRange(ctx, s.orderKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read entry order: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	values, err := s.client.HMGet(ctx, s.entriesKey(), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	entries := make([]ingredient.Entry, 0, len(ids))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			common.LogWarn("Stored entry missing",
				zap.String("id", ids[i]),
			)
			continue
		}
		var e ingredient.Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entry %s: %w", ids[i], err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// appendScript 在同一步驟內寫入條目與順序，ID 已存在時兩者都不寫
var appendScript = redis.NewScript(`
if redis.call('HSETNX', KEYS[1], ARGV[1], ARGV[2]) == 1 then
	redis.call('RPUSH', KEYS[2], ARGV[1])
	return 1
end
return 0
`)

// Append 追加新增食材，同一 ID 只記錄一次
func (s *RedisStore) Append(ctx context.Context, entries []ingredient.Entry) error {
	keys := []string{s.entriesKey(), s.orderKey()}
	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal entry %s: %w", e.ID, err)
		}

		added, err := appendScript.Run(ctx, s.client, keys, e.ID, data).Int()
		if err != nil {
			return fmt.Errorf("failed to store entry %s: %w", e.ID, err)
		}
		if added == 0 {
			common.LogDebug("Stored entry already exists",
				zap.String("id", e.ID),
			)
		}
	}
	return nil
}

// Close 關閉 Redis 連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}
