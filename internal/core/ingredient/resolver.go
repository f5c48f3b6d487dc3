package ingredient

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"fridge-catalog/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	fabricatedPrefix     = "extra_"
	fabricatedHashLength = 10
	fabricatedSuffix     = "x"

	// DefaultMaxIDAttempts 產生新 ID 時的最大嘗試次數
	DefaultMaxIDAttempts = 64
)

// Option 解析器選項
type Option func(*Resolver)

// WithSynonyms 使用自訂同義詞表
func WithSynonyms(d *SynonymDictionary) Option {
	return func(r *Resolver) {
		r.synonyms = d
	}
}

// WithMaxIDAttempts 設定 ID 衝突時的最大嘗試次數
func WithMaxIDAttempts(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxIDAttempts = n
		}
	}
}

// Resolver 食材名稱解析器
//
// 單一解析流程內使用，不可併發呼叫。
type Resolver struct {
	synonyms      *SynonymDictionary
	index         *SearchIndex
	entries       []Entry
	byID          map[string]int
	fabricated    []string
	byCleanName   map[string]string
	maxIDAttempts int
}

// NewResolver 由既有目錄建立解析器
func NewResolver(catalog []Entry, opts ...Option) (*Resolver, error) {
	r := &Resolver{
		synonyms:      DefaultSynonyms(),
		entries:       make([]Entry, 0, len(catalog)),
		byID:          make(map[string]int, len(catalog)),
		byCleanName:   make(map[string]string),
		maxIDAttempts: DefaultMaxIDAttempts,
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, e := range catalog {
		if _, exists := r.byID[e.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		r.byID[e.ID] = len(r.entries)
		r.entries = append(r.entries, e.clone())
	}
	r.index = BuildIndex(r.entries)

	return r, nil
}

// Resolve 解析一個原始食材名稱
//
// 正規化後為空時回傳 SourceNone 的空結果；僅在無法產生唯一 ID 時回傳錯誤。
func (r *Resolver) Resolve(raw string) (Match, error) {
	cleaned := CleanName(raw)
	token := NormalizeToken(cleaned)
	if token == "" {
		return Match{Source: SourceNone}, nil
	}

	if id, ok := r.synonyms.Lookup(cleaned); ok {
		return Match{ID: id, Source: SourceSynonym}, nil
	}

	if id, ok := r.index.Match(token); ok {
		return Match{ID: id, Source: SourceIndex}, nil
	}

	if id, ok := r.byCleanName[cleaned]; ok {
		return Match{ID: id, Source: SourceSession}, nil
	}

	entry, err := r.fabricate(cleaned, token)
	if err != nil {
		return Match{}, err
	}
	return Match{ID: entry.ID, Source: SourceFabricated}, nil
}

// Restore 依建立順序重新註冊先前流程新增的條目
//
// 與建立當下相同，名稱 token 插入索引最前面並寫入快取。
// ID 已存在的條目略過，回傳實際註冊的數量。
func (r *Resolver) Restore(entries []Entry) int {
	restored := 0
	for _, e := range entries {
		if _, exists := r.byID[e.ID]; exists {
			common.LogWarn("Stored entry shadowed by catalog",
				zap.String("id", e.ID),
			)
			continue
		}
		r.byID[e.ID] = len(r.entries)
		r.entries = append(r.entries, e.clone())
		if cleaned := CleanName(e.Name); cleaned != "" {
			r.byCleanName[cleaned] = e.ID
		}
		r.index.InsertFront(NormalizeToken(e.Name), e.ID)
		restored++
	}
	if restored > 0 {
		common.LogDebug("Restored fabricated entries",
			zap.Int("count", restored),
			zap.Int("index_tokens", r.index.Len()),
		)
	}
	return restored
}

// fabricate 建立並註冊新目錄條目
func (r *Resolver) fabricate(cleaned, token string) (Entry, error) {
	id, err := r.uniqueID(cleaned)
	if err != nil {
		return Entry{}, err
	}

	category := GuessCategory(cleaned)
	entry := Entry{
		ID:       id,
		Name:     cleaned,
		Category: category,
		PhotoURL: DefaultPhotoFor(category),
		Aliases:  []string{},
	}

	r.byID[id] = len(r.entries)
	r.entries = append(r.entries, entry)
	r.fabricated = append(r.fabricated, id)
	r.byCleanName[cleaned] = id
	r.index.InsertFront(token, id)

	common.LogDebug("Fabricated catalog entry",
		zap.String("id", id),
		zap.String("name", cleaned),
		zap.String("category", category),
	)
	return entry, nil
}

// uniqueID 由名稱雜湊產生 ID，衝突時附加後綴
func (r *Resolver) uniqueID(cleaned string) (string, error) {
	id := FabricatedID(cleaned)
	for attempt := 0; attempt < r.maxIDAttempts; attempt++ {
		if _, exists := r.byID[id]; !exists {
			return id, nil
		}
		id += fabricatedSuffix
	}
	return "", fmt.Errorf("%w: name %q after %d attempts", ErrIDSpaceExhausted, cleaned, r.maxIDAttempts)
}

// FabricatedID 名稱對應的候選 ID（未處理衝突）
func FabricatedID(cleaned string) string {
	sum := md5.Sum([]byte(cleaned))
	return fabricatedPrefix + hex.EncodeToString(sum[:])[:fabricatedHashLength]
}

// Lookup 依 ID 查詢目錄條目
func (r *Resolver) Lookup(id string) (Entry, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i].clone(), true
}

// Fabricated 本次流程新建立的條目，依建立順序
func (r *Resolver) Fabricated() []Entry {
	out := make([]Entry, 0, len(r.fabricated))
	for _, id := range r.fabricated {
		out = append(out, r.entries[r.byID[id]].clone())
	}
	return out
}

// Entries 既有條目加上新建立條目，依加入順序
func (r *Resolver) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.clone()
	}
	return out
}

// Index 目前的搜尋索引快照
func (r *Resolver) Index() []IndexEntry {
	return r.index.Entries()
}
