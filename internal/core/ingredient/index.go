package ingredient

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// IndexEntry 搜尋索引條目
type IndexEntry struct {
	Token string
	ID    string
}

// SearchIndex 以 token 長度遞減排序的比對索引
//
// 新建立的條目透過 InsertFront 放在最前面，即使 token 較短也優先比對。
type SearchIndex struct {
	entries []IndexEntry
}

// BuildIndex 由目錄條目的名稱、別名與 ID 建立索引
func BuildIndex(entries []Entry) *SearchIndex {
	pairs := make([]IndexEntry, 0, len(entries)*3)
	add := func(raw, id string) {
		if token := NormalizeToken(raw); token != "" {
			pairs = append(pairs, IndexEntry{Token: token, ID: id})
		}
	}
	for _, e := range entries {
		add(e.Name, e.ID)
		for _, alias := range e.Aliases {
			add(alias, e.ID)
		}
		add(e.ID, e.ID)
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return utf8.RuneCountInString(pairs[i].Token) > utf8.RuneCountInString(pairs[j].Token)
	})
	return &SearchIndex{entries: pairs}
}

// Match 雙向子字串比對，回傳第一個命中的 ID
func (idx *SearchIndex) Match(token string) (string, bool) {
	if idx == nil || token == "" {
		return "", false
	}
	for _, e := range idx.entries {
		if strings.Contains(token, e.Token) || strings.Contains(e.Token, token) {
			return e.ID, true
		}
	}
	return "", false
}

// InsertFront 將條目插入最高優先位置，空 token 不處理
func (idx *SearchIndex) InsertFront(token, id string) {
	if token == "" {
		return
	}
	idx.entries = append(idx.entries, IndexEntry{})
	copy(idx.entries[1:], idx.entries)
	idx.entries[0] = IndexEntry{Token: token, ID: id}
}

// Entries 回傳目前順序的索引副本
func (idx *SearchIndex) Entries() []IndexEntry {
	if idx == nil {
		return nil
	}
	return append([]IndexEntry(nil), idx.entries...)
}

// Len 索引條目數量
func (idx *SearchIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}
