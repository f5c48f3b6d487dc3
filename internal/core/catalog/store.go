package catalog

import (
	"context"
	"fmt"
	"sync"

	"fridge-catalog/internal/core/ingredient"
	"fridge-catalog/internal/infrastructure/config"
)

// Store 保存解析過程中新建立的食材，依建立順序
type Store interface {
	// Load 讀取所有已保存的新增食材
	Load(ctx context.Context) ([]ingredient.Entry, error)
	// Append 追加新增食材，已存在的 ID 會被略過
	Append(ctx context.Context, entries []ingredient.Entry) error
	// Close 關閉連線
	Close() error
}

// MemoryStore 行程內儲存
type MemoryStore struct {
	mu      sync.RWMutex
	entries []ingredient.Entry
	ids     map[string]struct{}
}

// NewMemoryStore 創建行程內儲存
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ids: make(map[string]struct{})}
}

// Load 讀取所有已保存的新增食材
func (s *MemoryStore) Load(ctx context.Context) ([]ingredient.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ingredient.Entry(nil), s.entries...), nil
}

// Append 追加新增食材
func (s *MemoryStore) Append(ctx context.Context, entries []ingredient.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		if _, exists := s.ids[e.ID]; exists {
			continue
		}
		s.ids[e.ID] = struct{}{}
		s.entries = append(s.entries, e)
	}
	return nil
}

// Close 無需釋放資源
func (s *MemoryStore) Close() error {
	return nil
}

// NewStore 依設定建立儲存
func NewStore(ctx context.Context, cfg *config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "", config.StoreDriverMemory:
		return NewMemoryStore(), nil
	case config.StoreDriverRedis:
		return NewRedisStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
