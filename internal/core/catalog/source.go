package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fridge-catalog/internal/core/ingredient"
	"fridge-catalog/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Source 食材目錄來源
type Source struct {
	client *resty.Client
}

// NewSource 創建目錄來源，timeout 套用於遠端讀取
func NewSource(timeout time.Duration) *Source {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "fridge-catalog")
	return &Source{client: client}
}

// Load 由本機路徑或 http(s) URL 讀取目錄
func (s *Source) Load(ctx context.Context, location string) ([]ingredient.Entry, error) {
	var raw []ingredient.Entry
	if isRemote(location) {
		resp, err := s.client.R().
			SetContext(ctx).
			Get(location)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch catalog: %w", err)
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("catalog source returned status %d", resp.StatusCode())
		}
		if err := common.ParseJSONBytes(resp.Body(), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
	} else {
		if err := common.ReadJSONFile(location, &raw); err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
	}

	entries := sanitizeEntries(raw)
	common.LogInfo("食材目錄已載入",
		zap.String("source", location),
		zap.Int("entries", len(entries)),
		zap.Int("skipped", len(raw)-len(entries)),
	)
	return entries, nil
}

// LoadEntries 使用預設逾時讀取目錄
func LoadEntries(ctx context.Context, location string) ([]ingredient.Entry, error) {
	return NewSource(10 * time.Second).Load(ctx, location)
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// sanitizeEntries 略過缺少 ID 或名稱的條目，別名去除空白
func sanitizeEntries(raw []ingredient.Entry) []ingredient.Entry {
	entries := make([]ingredient.Entry, 0, len(raw))
	for _, e := range raw {
		e.ID = strings.TrimSpace(e.ID)
		e.Name = strings.TrimSpace(e.Name)
		if e.ID == "" || e.Name == "" {
			common.LogWarn("Skipping incomplete catalog entry",
				zap.String("id", e.ID),
				zap.String("name", e.Name),
			)
			continue
		}
		aliases := make([]string, 0, len(e.Aliases))
		for _, alias := range e.Aliases {
			if alias = strings.TrimSpace(alias); alias != "" {
				aliases = append(aliases, alias)
			}
		}
		e.Aliases = aliases
		entries = append(entries, e)
	}
	return entries
}
