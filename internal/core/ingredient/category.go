package ingredient

import "strings"

type keywordGroup struct {
	category string
	keywords []string
}

// 依優先順序比對，第一個命中的分類勝出
var categoryGroups = []keywordGroup{
	{CategorySeasoning, []string{
		"간장", "고추장", "고춧가루", "된장", "식초", "설탕", "소금", "후추", "기름", "액젓",
		"케찹", "케첩", "춘장", "카레", "전분", "소스", "물엿", "육수", "소주",
	}},
	{CategoryGrain, []string{"쌀", "밥", "면", "가루", "우동", "국수", "라면", "파스타"}},
	{CategoryDairy, []string{"우유", "치즈", "버터", "요거트"}},
	{CategoryProcessed, []string{"통조림", "캔", "만두", "떡", "햄", "스팸", "김치", "어묵"}},
	{CategorySeafood, []string{"오징어", "새우", "갈치", "고등어", "꽁치", "대구", "바지락", "멸치", "낙지"}},
	{CategoryMeat, []string{"돼지", "소고기", "닭", "목살", "갈비", "삼겹", "불고기", "고기"}},
}

var categoryPhotos = map[string]string{
	CategoryVegetable: "assets/images/ingredients/cucumber.jpg",
	CategoryMeat:      "assets/images/ingredients/pork.jpg",
	CategorySeafood:   "assets/images/ingredients/fish-cake.jpg",
	CategoryDairy:     "assets/images/ingredients/milk.jpg",
	CategoryProcessed: "assets/images/ingredients/spam.jpg",
	CategorySeasoning: "assets/images/ingredients/soy-sauce.jpg",
	CategoryGrain:     "assets/images/ingredients/rice.jpg",
}

// GuessCategory 以關鍵字粗略推測分類，未命中時為蔬菜
func GuessCategory(name string) string {
	value := CleanName(name)
	for _, group := range categoryGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(value, keyword) {
				return group.category
			}
		}
	}
	return CategoryVegetable
}

// DefaultPhotoFor 分類預設圖片
func DefaultPhotoFor(category string) string {
	if photo, ok := categoryPhotos[category]; ok {
		return photo
	}
	return categoryPhotos[CategoryVegetable]
}

// Categories 所有分類，依顯示順序
func Categories() []string {
	return []string{
		CategoryVegetable,
		CategoryMeat,
		CategorySeafood,
		CategoryDairy,
		CategoryProcessed,
		CategorySeasoning,
		CategoryGrain,
	}
}
