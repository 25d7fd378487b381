package cocktail

// RawRecord 酒譜 API 回傳的原始紀錄（欄位名 → 值；JSON null 解碼後為空字串）
type RawRecord map[string]string

// Ingredient 酒譜成分（份量可為空，名稱不可）
type Ingredient struct {
	Measure string
	Name    string
}

// Recipe 標準化後的酒譜，欄位皆經過驗證
type Recipe struct {
	Name         string
	Instructions string
	Alcoholic    string
	Glass        string
	ThumbnailURL string
	Ingredients  []Ingredient
}

// Tweet 一次發文的完整內容：主貼文加上依序串接的回覆
type Tweet struct {
	ImagePath string
	Body      string
	Replies   []string
}
