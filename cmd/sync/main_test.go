package main

import (
	"path/filepath"
	"testing"
	"time"

	"fridge-catalog/internal/core/ingredient"
	"fridge-catalog/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "ingredients.json")
	recipesPath := filepath.Join(dir, "recipes.json")
	outPath := filepath.Join(dir, "out.json")

	require.NoError(t, common.WriteJSONFile(catalogPath, []ingredient.Entry{
		{ID: "garlic", Name: "마늘", Category: ingredient.CategoryVegetable},
	}))
	require.NoError(t, common.WriteJSONFile(recipesPath, []ingredient.Recipe{
		{ID: "r1", Name: "마늘 치킨", MainIngredients: []string{"마늘", "용가리치킨"}},
		{ID: "r2", Name: "치킨", MainIngredients: []string{"용가리치킨"}},
	}))

	require.NoError(t, run(catalogPath, recipesPath, outPath, 5*time.Second, ingredient.DefaultMaxIDAttempts))

	var out syncOutput
	require.NoError(t, common.ReadJSONFile(outPath, &out))

	chicken := ingredient.FabricatedID("용가리치킨")
	require.Len(t, out.Recipes, 2)
	assert.Equal(t, []string{"garlic", chicken}, out.Recipes[0].IngredientIDs)
	assert.Equal(t, []string{chicken}, out.Recipes[1].IngredientIDs)
	assert.Len(t, out.Catalog, 2)
	require.Len(t, out.Fabricated, 1)
	assert.Equal(t, chicken, out.Fabricated[0].ID)
}

func TestRunMissingRecipes(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "ingredients.json")
	require.NoError(t, common.WriteJSONFile(catalogPath, []ingredient.Entry{}))

	err := run(catalogPath, filepath.Join(dir, "missing.json"), filepath.Join(dir, "out.json"), time.Second, 1)
	assert.Error(t, err)
}
