package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"fridge-catalog/internal/core/ingredient"
	"fridge-catalog/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseCatalog() []ingredient.Entry {
	return []ingredient.Entry{
		{ID: "garlic", Name: "마늘", Category: ingredient.CategoryVegetable},
		{ID: "onion", Name: "양파", Category: ingredient.CategoryVegetable},
		{ID: "mozzarella", Name: "모짜렐라", Category: ingredient.CategoryDairy},
	}
}

type failingStore struct {
	*MemoryStore
}

func (s *failingStore) Append(ctx context.Context, entries []ingredient.Entry) error {
	return errors.New("store offline")
}

func TestServiceResolveMentions(t *testing.T) {
	svc, err := NewService(baseCatalog(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, svc.BaseSize())

	result, err := svc.ResolveMentions(context.Background(), []string{"다진 마늘", "모짜렐라 치즈", "용가리치킨", ""})
	require.NoError(t, err)
	require.Len(t, result.Mentions, 4)

	assert.Equal(t, MentionResult{Mention: "다진 마늘", ID: "garlic", Source: ingredient.SourceSynonym}, result.Mentions[0])
	assert.Equal(t, ingredient.SourceSynonym, result.Mentions[1].Source) // 치즈
	assert.Equal(t, ingredient.SourceFabricated, result.Mentions[2].Source)
	assert.Equal(t, ingredient.SourceNone, result.Mentions[3].Source)
	require.Len(t, result.Fabricated, 1)
	assert.Equal(t, result.Mentions[2].ID, result.Fabricated[0].ID)
}

func TestServicePersistsAcrossPasses(t *testing.T) {
	store := NewMemoryStore()
	svc, err := NewService(baseCatalog(), store, nil)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := svc.ResolveMentions(ctx, []string{"용가리치킨"})
	require.NoError(t, err)
	require.Len(t, first.Fabricated, 1)

	second, err := svc.ResolveRecipes(ctx, []ingredient.Recipe{{
		ID:              "snack",
		Name:            "간식",
		MainIngredients: []string{"용가리치킨 3조각", "양파"},
	}})
	require.NoError(t, err)
	assert.Empty(t, second.Fabricated)
	require.Len(t, second.Recipes, 1)
	assert.Equal(t, []string{first.Mentions[0].ID, "onion"}, second.Recipes[0].IngredientIDs)

	entries, err := svc.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, first.Mentions[0].ID, entries[3].ID)
}

func TestServiceSharedStore(t *testing.T) {
	store, _ := newMiniredisStore(t)
	ctx := context.Background()

	a, err := NewService(baseCatalog(), store, nil)
	require.NoError(t, err)
	b, err := NewService(baseCatalog(), store, nil)
	require.NoError(t, err)

	first, err := a.ResolveMentions(ctx, []string{"훈제연어"})
	require.NoError(t, err)
	second, err := b.ResolveMentions(ctx, []string{"훈제연어 슬라이스"})
	require.NoError(t, err)

	assert.Equal(t, first.Mentions[0].ID, second.Mentions[0].ID)
	assert.Equal(t, ingredient.SourceIndex, second.Mentions[0].Source)
	assert.Empty(t, second.Fabricated)
}

func TestServiceSplitPassesMatchSinglePass(t *testing.T) {
	base := []ingredient.Entry{{ID: "mozzarella", Name: "모짜렐라", Category: ingredient.CategoryDairy}}
	mentions := []string{"렐라슈", "모짜렐라슈", "훈제연어", "훈제연어 슬라이스"}
	ctx := context.Background()

	single, err := NewService(base, nil, nil)
	require.NoError(t, err)
	whole, err := single.ResolveMentions(ctx, mentions)
	require.NoError(t, err)

	split, err := NewService(base, nil, nil)
	require.NoError(t, err)
	for i, mention := range mentions {
		result, err := split.ResolveMentions(ctx, []string{mention})
		require.NoError(t, err)
		assert.Equal(t, whole.Mentions[i].ID, result.Mentions[0].ID, mention)
	}
	assert.Equal(t, whole.Mentions[0].ID, whole.Mentions[1].ID)
}

func TestServiceReady(t *testing.T) {
	svc, err := NewService(baseCatalog(), nil, nil)
	require.NoError(t, err)
	assert.NoError(t, svc.Ready(context.Background()))

	store, mr := newMiniredisStore(t)
	svc, err = NewService(baseCatalog(), store, nil)
	require.NoError(t, err)
	mr.SetError("LOADING")
	assert.Error(t, svc.Ready(context.Background()))
	mr.SetError("")
	assert.NoError(t, svc.Ready(context.Background()))
}

func TestServiceDuplicateBase(t *testing.T) {
	base := append(baseCatalog(), ingredient.Entry{ID: "garlic", Name: "통마늘"})
	_, err := NewService(base, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ingredient.ErrDuplicateID))
}

func TestServiceTooManyMentions(t *testing.T) {
	svc, err := NewService(baseCatalog(), nil, &config.ResolverConfig{MaxMentions: 2})
	require.NoError(t, err)

	_, err = svc.ResolveMentions(context.Background(), []string{"a", "b", "c"})
	assert.True(t, errors.Is(err, ErrTooManyMentions))

	_, err = svc.ResolveRecipes(context.Background(), []ingredient.Recipe{{
		ID:              "r",
		MainIngredients: []string{"a", "b"},
		SubIngredients:  []string{"c"},
	}})
	assert.True(t, errors.Is(err, ErrTooManyMentions))
}

func TestServiceSkipsShadowedStoredEntries(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Append(context.Background(), []ingredient.Entry{
		{ID: "garlic", Name: "가짜마늘"},
		{ID: "extra_0123456789", Name: "용가리치킨"},
	}))

	svc, err := NewService(baseCatalog(), store, nil)
	require.NoError(t, err)

	entries, err := svc.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, "마늘", entries[0].Name)
	assert.Equal(t, "extra_0123456789", entries[3].ID)
}

func TestServiceStoreFailure(t *testing.T) {
	svc, err := NewService(baseCatalog(), &failingStore{MemoryStore: NewMemoryStore()}, nil)
	require.NoError(t, err)

	_, err = svc.ResolveMentions(context.Background(), []string{"용가리치킨"})
	assert.ErrorContains(t, err, "store offline")

	// 沒有新增食材時不寫入儲存
	_, err = svc.ResolveMentions(context.Background(), []string{"마늘"})
	assert.NoError(t, err)
}

func TestServiceConcurrentPasses(t *testing.T) {
	store := NewMemoryStore()
	svc, err := NewService(baseCatalog(), store, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	ids := make([]string, 16)
	errs := make([]error, 16)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := svc.ResolveMentions(context.Background(), []string{"용가리치킨"})
			errs[i] = err
			if err == nil {
				ids[i] = result.Mentions[0].ID
			}
		}(i)
	}
	wg.Wait()

	for i := range ids {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}

	stored, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
