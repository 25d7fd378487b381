package bot

import (
	"strings"

	"cocktail-bot/internal/core/cocktaildb"
)

// Action 從提及文字解析出的查詢動作
type Action struct {
	Mode  cocktaildb.Mode
	Terms []string
}

// 查詢中保留的噪音字（例如 "make me a drink with n apples" 的 "n"）
const noiseToken = "n"

// ParseRequest 比對提及文字是否符合指令文法。
// ingredient 模式的片語優先於 name 模式（前者包含後者）。
// 都不符合時回傳 false，這不是錯誤，只代表是一般留言。
func (s *Service) ParseRequest(text string) (Action, bool) {
	var mode cocktaildb.Mode
	var pattern string

	switch {
	case strings.Contains(text, s.config.Bot.IngredientPattern):
		mode, pattern = cocktaildb.ModeIngredient, s.config.Bot.IngredientPattern
	case strings.Contains(text, s.config.Bot.NamePattern):
		mode, pattern = cocktaildb.ModeName, s.config.Bot.NamePattern
	default:
		return Action{}, false
	}

	// 去掉指令片語後，剩餘文字以空白切成查詢詞，濾掉噪音字
	remainder := strings.TrimSpace(strings.Replace(text, pattern, "", 1))
	var terms []string
	for _, token := range strings.Fields(remainder) {
		if token == noiseToken {
			continue
		}
		terms = append(terms, token)
	}

	return Action{Mode: mode, Terms: terms}, true
}
