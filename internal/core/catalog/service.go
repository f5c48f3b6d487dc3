package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"fridge-catalog/internal/core/ingredient"
	"fridge-catalog/internal/infrastructure/config"
	"fridge-catalog/internal/pkg/common"

	"go.uber.org/zap"
)

// ErrTooManyMentions 單次解析的食材數量超出上限
var ErrTooManyMentions = errors.New("too many mentions in one pass")

// MentionResult 單一食材名稱的解析結果
type MentionResult struct {
	Mention string            `json:"mention"`
	ID      string            `json:"id"`
	Source  ingredient.Source `json:"source"`
}

// PassResult 一次解析流程的輸出
type PassResult struct {
	Mentions   []MentionResult             `json:"mentions,omitempty"`
	Recipes    []ingredient.ResolvedRecipe `json:"recipes,omitempty"`
	Fabricated []ingredient.Entry          `json:"fabricated"`
}

// Service 食材目錄服務
//
// 每次解析都以基礎目錄加上已保存的新增食材建立新的 Resolver，
// 並以互斥鎖串行化，確保新增食材只有單一寫入者。
type Service struct {
	mu            sync.Mutex
	base          []ingredient.Entry
	store         Store
	synonyms      *ingredient.SynonymDictionary
	maxIDAttempts int
	maxMentions   int
}

// NewService 創建食材目錄服務，基礎目錄有重複 ID 時回傳錯誤
func NewService(base []ingredient.Entry, store Store, cfg *config.ResolverConfig) (*Service, error) {
	if store == nil {
		store = NewMemoryStore()
	}
	s := &Service{
		base:          append([]ingredient.Entry(nil), base...),
		store:         store,
		synonyms:      ingredient.DefaultSynonyms(),
		maxIDAttempts: ingredient.DefaultMaxIDAttempts,
	}
	if cfg != nil {
		if cfg.MaxIDAttempts > 0 {
			s.maxIDAttempts = cfg.MaxIDAttempts
		}
		s.maxMentions = cfg.MaxMentions
	}

	if _, err := ingredient.NewResolver(s.base, ingredient.WithSynonyms(s.synonyms)); err != nil {
		return nil, fmt.Errorf("invalid base catalog: %w", err)
	}

	common.LogInfo("食材目錄服務已初始化",
		zap.Int("base_entries", len(s.base)),
		zap.Int("synonyms", s.synonyms.Len()),
		zap.Int("max_id_attempts", s.maxIDAttempts),
	)
	return s, nil
}

// BaseSize 基礎目錄條目數
func (s *Service) BaseSize() int {
	return len(s.base)
}

// Entries 基礎目錄加上已保存的新增食材
func (s *Service) Entries(ctx context.Context) ([]ingredient.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.newResolver(ctx)
	if err != nil {
		return nil, err
	}
	return r.Entries(), nil
}

// ResolveMentions 解析一組食材名稱
func (s *Service) ResolveMentions(ctx context.Context, mentions []string) (*PassResult, error) {
	if err := s.checkLimit(len(mentions)); err != nil {
		return nil, err
	}

	result := &PassResult{}
	err := s.pass(ctx, func(r *ingredient.Resolver) error {
		matches, err := ingredient.ResolveMentions(r, mentions)
		if err != nil {
			return err
		}
		result.Mentions = make([]MentionResult, len(matches))
		for i, m := range matches {
			result.Mentions[i] = MentionResult{Mention: mentions[i], ID: m.ID, Source: m.Source}
		}
		result.Fabricated = r.Fabricated()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ResolveRecipes 解析一組食譜
func (s *Service) ResolveRecipes(ctx context.Context, recipes []ingredient.Recipe) (*PassResult, error) {
	total := 0
	for _, r := range recipes {
		total += len(r.MainIngredients) + len(r.SubIngredients)
	}
	if err := s.checkLimit(total); err != nil {
		return nil, err
	}

	result := &PassResult{}
	err := s.pass(ctx, func(r *ingredient.Resolver) error {
		resolved, err := ingredient.ResolveRecipes(r, recipes)
		if err != nil {
			return err
		}
		result.Recipes = resolved
		result.Fabricated = r.Fabricated()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) checkLimit(n int) error {
	if s.maxMentions > 0 && n > s.maxMentions {
		return fmt.Errorf("%w: %d > %d", ErrTooManyMentions, n, s.maxMentions)
	}
	return nil
}

// pass 在鎖內執行一次解析並保存新增食材
func (s *Service) pass(ctx context.Context, run func(r *ingredient.Resolver) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.newResolver(ctx)
	if err != nil {
		return err
	}
	if err := run(r); err != nil {
		return err
	}

	fabricated := r.Fabricated()
	if len(fabricated) == 0 {
		return nil
	}
	if err := s.store.Append(ctx, fabricated); err != nil {
		return fmt.Errorf("failed to persist fabricated entries: %w", err)
	}
	common.LogDebug("Fabricated entries persisted",
		zap.Int("count", len(fabricated)),
	)
	return nil
}

// newResolver 以基礎目錄建立 Resolver，再依序重播已保存的新增食材
func (s *Service) newResolver(ctx context.Context) (*ingredient.Resolver, error) {
	extras, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load fabricated entries: %w", err)
	}

	r, err := ingredient.NewResolver(s.base,
		ingredient.WithSynonyms(s.synonyms),
		ingredient.WithMaxIDAttempts(s.maxIDAttempts),
	)
	if err != nil {
		return nil, err
	}
	r.Restore(extras)
	return r, nil
}

// Ready 確認儲存可讀，不佔用解析鎖
func (s *Service) Ready(ctx context.Context) error {
	if _, err := s.store.Load(ctx); err != nil {
		return fmt.Errorf("store not ready: %w", err)
	}
	return nil
}

// Close 關閉儲存
func (s *Service) Close() error {
	return s.store.Close()
}
