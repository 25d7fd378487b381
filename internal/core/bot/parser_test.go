package bot

import (
	"testing"

	"cocktail-bot/internal/core/cocktaildb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	service := NewService(testConfig(), nil, nil)

	tests := []struct {
		name      string
		text      string
		wantMode  cocktaildb.Mode
		wantTerms []string
	}{
		{
			name:      "name query",
			text:      "make me a margarita",
			wantMode:  cocktaildb.ModeName,
			wantTerms: []string{"margarita"},
		},
		{
			name:      "multi word name query",
			text:      "make me a tom collins",
			wantMode:  cocktaildb.ModeName,
			wantTerms: []string{"tom", "collins"},
		},
		{
			name:      "ingredient query",
			text:      "make me something with vodka",
			wantMode:  cocktaildb.ModeIngredient,
			wantTerms: []string{"vodka"},
		},
		{
			name:      "noise token filtered",
			text:      "make me something with n vodka",
			wantMode:  cocktaildb.ModeIngredient,
			wantTerms: []string{"vodka"},
		},
		{
			name:     "bare pattern yields empty terms",
			text:     "make me a",
			wantMode: cocktaildb.ModeName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := service.ParseRequest(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.wantMode, action.Mode)
			assert.Equal(t, tt.wantTerms, action.Terms)
		})
	}
}

func TestParseRequest_IngredientPatternWins(t *testing.T) {
	service := NewService(testConfig(), nil, nil)

	// 兩種片語同時出現時，ingredient 片語優先
	action, ok := service.ParseRequest("make me a drink or make me something with rum")
	require.True(t, ok)
	assert.Equal(t, cocktaildb.ModeIngredient, action.Mode)
}

func TestParseRequest_NotARequest(t *testing.T) {
	service := NewService(testConfig(), nil, nil)

	_, ok := service.ParseRequest("great bot, love the recipes!")
	assert.False(t, ok)
}
