package cocktail

import (
	"testing"

	"cocktail-bot/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawRecord() RawRecord {
	return RawRecord{
		"idDrink":         "11007",
		"strDrink":        "Margarita",
		"strInstructions": "Rub the rim of the glass with the lime slice. Shake the other ingredients with ice.",
		"strAlcoholic":    "Alcoholic",
		"strGlass":        "Cocktail glass",
		"strDrinkThumb":   "https://example.com/images/margarita.jpg",
		"strIngredient1":  "Tequila",
		"strMeasure1":     "1 1/2 oz ",
		"strIngredient2":  "Triple sec",
		"strMeasure2":     "1/2 oz",
		"strIngredient3":  "Lime juice",
		"strMeasure3":     "1 oz",
	}
}

func TestExtractRecipe(t *testing.T) {
	recipe, err := ExtractRecipe(validRawRecord())
	require.NoError(t, err)

	assert.Equal(t, "Margarita", recipe.Name)
	assert.Equal(t, "Alcoholic", recipe.Alcoholic)
	assert.Equal(t, "Cocktail glass", recipe.Glass)
	assert.Equal(t, "https://example.com/images/margarita.jpg", recipe.ThumbnailURL)
	require.Len(t, recipe.Ingredients, 3)
	assert.Equal(t, Ingredient{Measure: "1 1/2 oz", Name: "Tequila"}, recipe.Ingredients[0])
	assert.Equal(t, Ingredient{Measure: "1/2 oz", Name: "Triple sec"}, recipe.Ingredients[1])
}

func TestExtractRecipe_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		field string
	}{
		{"missing name", "strDrink"},
		{"missing instructions", "strInstructions"},
		{"missing alcoholic", "strAlcoholic"},
		{"missing glass", "strGlass"},
		{"missing thumbnail", "strDrinkThumb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRawRecord()
			raw[tt.field] = ""

			_, err := ExtractRecipe(raw)
			require.Error(t, err)
			assert.True(t, common.IsMissingFieldError(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestExtractRecipe_IngredientGapTruncates(t *testing.T) {
	raw := validRawRecord()
	// 第 3 個成分留空、第 4 個有值：只有前兩個算數
	raw["strIngredient3"] = ""
	raw["strIngredient4"] = "Salt"
	raw["strMeasure4"] = "1 pinch"

	recipe, err := ExtractRecipe(raw)
	require.NoError(t, err)
	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, "Tequila", recipe.Ingredients[0].Name)
	assert.Equal(t, "Triple sec", recipe.Ingredients[1].Name)
}

func TestExtractRecipe_MeasureTrimming(t *testing.T) {
	raw := validRawRecord()
	raw["strMeasure1"] = " 1/2 oz \t"

	recipe, err := ExtractRecipe(raw)
	require.NoError(t, err)
	// 尾端空白去除，前端空白保留
	assert.Equal(t, " 1/2 oz", recipe.Ingredients[0].Measure)
}

func TestExtractRecipe_EmptyMeasureAllowed(t *testing.T) {
	raw := validRawRecord()
	raw["strMeasure2"] = ""

	recipe, err := ExtractRecipe(raw)
	require.NoError(t, err)
	assert.Equal(t, Ingredient{Measure: "", Name: "Triple sec"}, recipe.Ingredients[1])
}
