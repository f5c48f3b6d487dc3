package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `[
	{"id": "garlic", "name": "마늘", "category": "채소", "photoUrl": "assets/images/ingredients/garlic.jpg", "defaultUnit": "쪽", "aliases": ["다진마늘", " "]},
	{"id": "", "name": "이름만"},
	{"id": "onion", "name": "  "},
	{"id": "egg", "name": "계란", "category": "유제품"}
]`

func TestSourceLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ingredients.json")
	require.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0o644))

	entries, err := LoadEntries(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "garlic", entries[0].ID)
	assert.Equal(t, []string{"다진마늘"}, entries[0].Aliases)
	require.NotNil(t, entries[0].DefaultUnit)
	assert.Equal(t, "쪽", *entries[0].DefaultUnit)
	assert.Equal(t, "egg", entries[1].ID)
	assert.Nil(t, entries[1].DefaultUnit)
}

func TestSourceLoadMissingFile(t *testing.T) {
	_, err := LoadEntries(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSourceLoadRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/catalog.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(catalogJSON))
	}))
	defer srv.Close()

	src := NewSource(5 * time.Second)

	entries, err := src.Load(context.Background(), srv.URL+"/catalog.json")
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	_, err = src.Load(context.Background(), srv.URL+"/missing.json")
	assert.ErrorContains(t, err, "404")
}

func TestSourceLoadRemoteInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "garlic"}`))
	}))
	defer srv.Close()

	_, err := NewSource(time.Second).Load(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestSeedCatalogIsValid(t *testing.T) {
	entries, err := LoadEntries(context.Background(), filepath.Join("..", "..", "..", "data", "ingredients.json"))
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	_, err = NewService(entries, nil, nil)
	require.NoError(t, err)
}
