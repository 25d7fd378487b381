package cocktail

import (
	"strings"
	"unicode"
)

// BuildBody 組出主貼文內容。行序固定：
// 名稱（酒精屬性）、杯子行、每行一個成分、hashtag 結尾。
// 這裡不做長度檢查，長度控制只施加在說明文字的分割上。
func BuildBody(name, alcoholic string, annotatedLines []string, glass, hashtags string) string {
	var sb strings.Builder
	sb.WriteString(name + " (" + alcoholic + ")")
	sb.WriteString("\n" + strings.TrimSpace(emojiMap[emojiGlassKey]) + " " + strings.TrimLeftFunc(glass, unicode.IsSpace))
	for _, line := range annotatedLines {
		sb.WriteString("\n" + line)
	}
	sb.WriteString("\n" + hashtags)
	return sb.String()
}

// DecorateInstructions 在原始說明文字後加上固定的收尾語與裝飾符號
func DecorateInstructions(instructions string) string {
	return instructions + " Enjoy!" + emojiMap[emojiEnjoyKey]
}
