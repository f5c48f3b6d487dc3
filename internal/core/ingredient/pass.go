package ingredient

import "fmt"

// ResolveMentions 依序解析一組食材名稱，無訊號者回傳空 ID
func ResolveMentions(r *Resolver, mentions []string) ([]Match, error) {
	out := make([]Match, 0, len(mentions))
	for _, mention := range mentions {
		m, err := r.Resolve(mention)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", mention, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// ResolveRecipes 依序解析食譜的主材料與副材料
//
// 略過 ID 為空的食譜與無訊號的名稱，同一食譜內 ID 去重並保留首次出現順序。
func ResolveRecipes(r *Resolver, recipes []Recipe) ([]ResolvedRecipe, error) {
	out := make([]ResolvedRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		id := CleanName(recipe.ID)
		if id == "" {
			continue
		}

		mentions := make([]string, 0, len(recipe.MainIngredients)+len(recipe.SubIngredients))
		mentions = append(mentions, recipe.MainIngredients...)
		mentions = append(mentions, recipe.SubIngredients...)

		ids := make([]string, 0, len(mentions))
		seen := make(map[string]struct{}, len(mentions))
		for _, mention := range mentions {
			m, err := r.Resolve(mention)
			if err != nil {
				return nil, fmt.Errorf("recipe %s: resolve %q: %w", id, mention, err)
			}
			if !m.Found() {
				continue
			}
			if _, dup := seen[m.ID]; dup {
				continue
			}
			seen[m.ID] = struct{}{}
			ids = append(ids, m.ID)
		}

		out = append(out, ResolvedRecipe{
			ID:            id,
			Name:          CleanName(recipe.Name),
			IngredientIDs: ids,
		})
	}
	return out, nil
}
