package ingredient

import "errors"

// Entry 食材目錄條目
type Entry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	PhotoURL    string   `json:"photoUrl"`
	DefaultUnit *string  `json:"defaultUnit,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
}

// clone 複製條目，避免呼叫端修改內部別名切片
func (e Entry) clone() Entry {
	out := e
	if e.Aliases != nil {
		out.Aliases = append([]string(nil), e.Aliases...)
	}
	if e.DefaultUnit != nil {
		unit := *e.DefaultUnit
		out.DefaultUnit = &unit
	}
	return out
}

// 目錄分類
const (
	CategoryVegetable = "채소"
	CategoryMeat      = "육류"
	CategorySeafood   = "해산물"
	CategoryDairy     = "유제품"
	CategoryProcessed = "가공식품"
	CategorySeasoning = "양념"
	CategoryGrain     = "곡물/면"
)

// Source 解析結果來源
type Source string

const (
	SourceNone       Source = "none"
	SourceSynonym    Source = "synonym"
	SourceIndex      Source = "index"
	SourceSession    Source = "session"
	SourceFabricated Source = "fabricated"
)

// Match 單一食材名稱的解析結果
type Match struct {
	ID     string `json:"id"`
	Source Source `json:"source"`
}

// Found 是否解析到目錄 ID
func (m Match) Found() bool {
	return m.ID != ""
}

// Recipe 待解析的食譜
type Recipe struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	MainIngredients []string `json:"mainIngredients"`
	SubIngredients  []string `json:"subIngredients"`
}

// ResolvedRecipe 解析後的食譜
type ResolvedRecipe struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	IngredientIDs []string `json:"ingredientIds"`
}

var (
	// ErrDuplicateID 目錄中出現重複 ID
	ErrDuplicateID = errors.New("duplicate catalog id")
	// ErrIDSpaceExhausted 無法產生不衝突的新 ID
	ErrIDSpaceExhausted = errors.New("could not derive a unique fabricated id")
)
