package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fridge-catalog/internal/core/catalog"
	"fridge-catalog/internal/core/ingredient"
	"fridge-catalog/internal/pkg/common"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// syncOutput 同步結果檔案內容
type syncOutput struct {
	Recipes    []ingredient.ResolvedRecipe `json:"recipes"`
	Catalog    []ingredient.Entry          `json:"catalog"`
	Fabricated []ingredient.Entry          `json:"fabricated"`
}

func main() {
	var (
		catalogSource = pflag.StringP("catalog", "c", "data/ingredients.json", "catalog JSON path or URL")
		recipesPath   = pflag.StringP("recipes", "r", "", "recipes JSON path")
		outPath       = pflag.StringP("out", "o", "catalog_sync.json", "output JSON path")
		logLevel      = pflag.String("log-level", "info", "log level")
		timeout       = pflag.Duration("timeout", 30*time.Second, "catalog fetch timeout")
		maxAttempts   = pflag.Int("max-id-attempts", ingredient.DefaultMaxIDAttempts, "max attempts when deriving a fabricated id")
	)
	pflag.Parse()

	if err := common.InitLogger(*logLevel, ""); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	if *recipesPath == "" {
		fmt.Fprintln(os.Stderr, "--recipes is required")
		pflag.Usage()
		os.Exit(2)
	}

	if err := run(*catalogSource, *recipesPath, *outPath, *timeout, *maxAttempts); err != nil {
		common.LogError("Sync failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(catalogSource, recipesPath, outPath string, timeout time.Duration, maxAttempts int) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	entries, err := catalog.NewSource(timeout).Load(ctx, catalogSource)
	if err != nil {
		return err
	}

	var recipes []ingredient.Recipe
	if err := common.ReadJSONFile(recipesPath, &recipes); err != nil {
		return fmt.Errorf("failed to read recipes: %w", err)
	}

	resolver, err := ingredient.NewResolver(entries, ingredient.WithMaxIDAttempts(maxAttempts))
	if err != nil {
		return err
	}

	start := time.Now()
	resolved, err := ingredient.ResolveRecipes(resolver, recipes)
	if err != nil {
		return err
	}

	out := syncOutput{
		Recipes:    resolved,
		Catalog:    resolver.Entries(),
		Fabricated: resolver.Fabricated(),
	}
	if err := common.WriteJSONFile(outPath, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	common.LogInfo("[sync] 完成",
		zap.Int("recipes", len(resolved)),
		zap.Int("base_ingredients", len(entries)),
		zap.Int("extra_ingredients", len(out.Fabricated)),
		zap.Duration("耗時", time.Since(start)),
		zap.String("out", outPath),
	)
	return nil
}
