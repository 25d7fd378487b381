package cocktail

import (
	"strings"
)

// 保留鍵：查表失敗時的預設符號、收尾裝飾與杯子裝飾
const (
	emojiDefaultKey = "default"
	emojiEnjoyKey   = "enjoy"
	emojiGlassKey   = "glass"
)

// emojiMap 成分名稱對應的裝飾符號，鍵須與酒譜 API 的成分名稱完全一致
var emojiMap = map[string]string{
	emojiDefaultKey:     "🍹",
	emojiEnjoyKey:       "🍻",
	emojiGlassKey:       "🥃",
	"Vodka":             "🍸",
	"Gin":               "🍸",
	"Rum":               "🏴‍☠️",
	"Light rum":         "🏴‍☠️",
	"Dark rum":          "🏴‍☠️",
	"Tequila":           "🌵",
	"Bourbon":           "🥃",
	"Scotch":            "🥃",
	"Whiskey":           "🥃",
	"Red wine":          "🍷",
	"Champagne":         "🍾",
	"Beer":              "🍺",
	"Coffee":            "☕",
	"Lemon":             "🍋",
	"Lemon juice":       "🍋",
	"Lemon peel":        "🍋",
	"Lime":              "🍈",
	"Lime juice":        "🍈",
	"Orange":            "🍊",
	"Orange juice":      "🍊",
	"Triple sec":        "🍊",
	"Pineapple":         "🍍",
	"Pineapple juice":   "🍍",
	"Apple":             "🍎",
	"Cherry":            "🍒",
	"Maraschino cherry": "🍒",
	"Grenadine":         "🍒",
	"Strawberries":      "🍓",
	"Coconut cream":     "🥥",
	"Milk":              "🥛",
	"Cream":             "🥛",
	"Egg":               "🥚",
	"Egg white":         "🥚",
	"Honey":             "🍯",
	"Sugar":             "🍬",
	"Mint":              "🌿",
	"Salt":              "🧂",
	"Ice":               "🧊",
	"Water":             "💧",
	"Soda water":        "💧",
}

// AnnotateIngredients 將每組成分轉為帶裝飾符號的顯示行。
// 成分名稱在表內用對應符號，否則用預設符號。輸出順序與輸入一致。
func AnnotateIngredients(ingredients []Ingredient) []string {
	annotated := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		line := strings.TrimSpace(ing.Measure + " " + ing.Name)
		emoji, ok := emojiMap[ing.Name]
		if !ok {
			emoji = emojiMap[emojiDefaultKey]
		}
		annotated = append(annotated, strings.TrimSpace(emoji)+" "+line)
	}
	return annotated
}
