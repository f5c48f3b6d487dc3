package ingredient

import "strings"

// Synonym 同義詞條目：原始寫法子字串對應目錄 ID
type Synonym struct {
	Key string
	ID  string
}

// SynonymDictionary 有序同義詞表，先出現者優先
//
// 較長、較具體的寫法必須排在它所包含的較短寫法之前，
// 否則短 key 會以子字串比對搶先命中。
type SynonymDictionary struct {
	entries []Synonym
}

// NewSynonymDictionary 以指定順序建立同義詞表，略過空 key
func NewSynonymDictionary(entries []Synonym) *SynonymDictionary {
	d := &SynonymDictionary{entries: make([]Synonym, 0, len(entries))}
	for _, e := range entries {
		if e.Key == "" || e.ID == "" {
			continue
		}
		d.entries = append(d.entries, e)
	}
	return d
}

// Lookup 對清理後名稱做子字串比對，回傳第一個命中的 ID
func (d *SynonymDictionary) Lookup(cleaned string) (string, bool) {
	if d == nil || cleaned == "" {
		return "", false
	}
	for _, e := range d.entries {
		if strings.Contains(cleaned, e.Key) {
			return e.ID, true
		}
	}
	return "", false
}

// Entries 回傳同義詞表副本
func (d *SynonymDictionary) Entries() []Synonym {
	if d == nil {
		return nil
	}
	return append([]Synonym(nil), d.entries...)
}

// Len 條目數量
func (d *SynonymDictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// DefaultSynonyms 常見韓文食材寫法
func DefaultSynonyms() *SynonymDictionary {
	return NewSynonymDictionary([]Synonym{
		{"간장", "soy_sauce"},
		{"진간장", "soy_sauce"},
		{"국간장", "soy_sauce"},
		{"양조간장", "soy_sauce"},
		{"조선간장", "soy_sauce"},
		{"고추장", "gochujang"},
		{"고춧가루", "gochugaru"},
		{"고추가루", "gochugaru"},
		{"참기름", "sesame_oil"},
		{"식초", "vinegar"},
		{"후추", "black_pepper"},
		{"후춧가루", "black_pepper"},
		{"올리고당", "oligo_syrup"},
		{"맛술", "cooking_wine"},
		{"미림", "cooking_wine"},
		{"미향", "cooking_wine"},
		{"굴소스", "oyster_sauce"},
		{"된장", "doenjang"},
		{"다진마늘", "garlic"},
		{"마늘", "garlic"},
		{"양파", "onion"},
		// 含「파」的其他食材須排在「파」之前
		{"파프리카", "bell_pepper"},
		{"스파게티", "spaghetti"},
		{"대파", "green_onion"},
		{"쪽파", "green_onion"},
		{"파", "green_onion"},
		{"오이", "cucumber"},
		{"양배추", "cabbage"},
		{"배추", "napa_cabbage"},
		{"김치", "kimchi"},
		{"계란", "egg"},
		{"달걀", "egg"},
		{"두부", "tofu"},
		{"우유", "milk"},
		{"돼지고기", "pork"},
		{"소고기", "beef"},
		{"닭고기", "chicken"},
		{"스팸", "spam"},
		{"어묵", "fish_cake"},
		{"오뎅", "fish_cake"},
		{"감자", "potato"},
		{"고구마", "sweet_potato"},
		{"버섯", "mushroom"},
		{"무", "radish"},
		{"당근", "carrot"},
		{"가지", "eggplant"},
		{"상추", "lettuce"},
		{"시금치", "spinach"},
		{"깻잎", "perilla_leaf"},
		{"콩나물", "bean_sprout"},
		{"브로콜리", "broccoli"},
		{"토마토", "tomato"},
		{"치즈", "cheese"},
		{"버터", "butter"},
		{"요거트", "yogurt"},
		{"참치캔", "tuna_can"},
		{"참치", "tuna_can"},
		{"만두", "dumpling"},
		{"떡볶이떡", "rice_cake"},
		{"떡", "rice_cake"},
		{"김가루", "seaweed"},
		{"김", "seaweed"},
		{"라면", "ramen"},
		{"국수", "noodle"},
		{"우동", "udon"},
		{"식빵", "bread"},
		{"쌀", "rice"},
		{"밥", "rice"},
		{"밀가루", "flour"},
		{"고추", "chili"},
		{"베이컨", "bacon"},
		{"소시지", "sausage"},
		{"설탕", "sugar"},
		{"소금", "salt"},
	})
}
