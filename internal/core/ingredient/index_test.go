package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndexOrdering(t *testing.T) {
	idx := BuildIndex([]Entry{
		{ID: "a", Name: "파"},
		{ID: "b", Name: "양파"},
		{ID: "c", Name: "(없음)"},
	})

	want := []IndexEntry{
		{Token: "양파", ID: "b"},
		{Token: "파", ID: "a"},
		{Token: "a", ID: "a"},
		{Token: "b", ID: "b"},
		{Token: "c", ID: "c"},
	}
	assert.Equal(t, want, idx.Entries())
}

func TestBuildIndexAliases(t *testing.T) {
	idx := BuildIndex([]Entry{
		{ID: "green_onion", Name: "대파", Aliases: []string{"쪽파", " ", "실파(얇은 것)"}},
	})

	tokens := make(map[string]string)
	for _, e := range idx.Entries() {
		tokens[e.Token] = e.ID
	}
	assert.Equal(t, map[string]string{
		"대파":         "green_onion",
		"쪽파":         "green_onion",
		"실파":         "green_onion",
		"greenonion": "green_onion",
	}, tokens)
}

func TestSearchIndexMatch(t *testing.T) {
	idx := BuildIndex([]Entry{
		{ID: "onion", Name: "양파"},
		{ID: "mozzarella", Name: "모짜렐라"},
	})

	tests := []struct {
		token string
		want  string
		found bool
	}{
		{"햇양파", "onion", true},
		{"모짜", "mozzarella", true},
		{"모짜렐라슈레드", "mozzarella", true},
		{"mozzarella", "mozzarella", true},
		{"감자", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		id, ok := idx.Match(tt.token)
		assert.Equal(t, tt.found, ok, "token %q", tt.token)
		assert.Equal(t, tt.want, id, "token %q", tt.token)
	}
}

func TestSearchIndexInsertFront(t *testing.T) {
	idx := BuildIndex([]Entry{{ID: "onion", Name: "양파"}})
	before := idx.Len()

	idx.InsertFront("파", "extra_1")
	idx.InsertFront("", "ignored")

	require.Equal(t, before+1, idx.Len())
	assert.Equal(t, IndexEntry{Token: "파", ID: "extra_1"}, idx.Entries()[0])

	// 前插條目即使較短也優先
	id, ok := idx.Match("양파")
	assert.True(t, ok)
	assert.Equal(t, "extra_1", id)
}
