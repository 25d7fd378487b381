package cocktail

import (
	"fmt"
	"strings"
	"unicode"

	"cocktail-bot/internal/pkg/common"
)

// 酒譜 API 最多提供 15 組成分欄位
const maxIngredients = 15

// ExtractRecipe 將原始紀錄驗證並轉換為標準化酒譜。
// 任一必要欄位為空時回傳 MissingFieldError，錯誤指明第一個缺少的欄位。
func ExtractRecipe(raw RawRecord) (*Recipe, error) {
	recipe := &Recipe{}

	fields := []struct {
		key    string
		target *string
	}{
		{"strDrink", &recipe.Name},
		{"strInstructions", &recipe.Instructions},
		{"strAlcoholic", &recipe.Alcoholic},
		{"strGlass", &recipe.Glass},
		{"strDrinkThumb", &recipe.ThumbnailURL},
	}
	for _, f := range fields {
		value := raw[f.key]
		if value == "" {
			return nil, common.NewMissingFieldError(f.key)
		}
		*f.target = value
	}

	recipe.Ingredients = extractIngredients(raw)
	return recipe, nil
}

// extractIngredients 依序掃描成分欄位。成分是密集前綴：
// 遇到第一個空的成分名稱即停止。份量尾端的空白會被去除
// （API 的份量欄位結尾留白並不一致），前端空白保留給後續排版。
func extractIngredients(raw RawRecord) []Ingredient {
	var ingredients []Ingredient
	for i := 1; i <= maxIngredients; i++ {
		name := raw[fmt.Sprintf("strIngredient%d", i)]
		if name == "" {
			break
		}
		measure := strings.TrimRightFunc(raw[fmt.Sprintf("strMeasure%d", i)], unicode.IsSpace)
		ingredients = append(ingredients, Ingredient{Measure: measure, Name: name})
	}
	return ingredients
}
