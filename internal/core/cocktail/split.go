package cocktail

import (
	"strings"
	"unicode/utf8"

	"cocktail-bot/internal/pkg/common"
)

// SplitInstructions 把說明文字切成一串不超過 maxLength 的貼文，
// 只在句子邊界斷開。長度以字元（rune）計，平台的上限算的是字元數。
//
// 整段文字放得下時原樣回傳，不做任何重新分段。
// 超過上限時以句號切句、補回句號，貪婪地把句子裝進貼文：
// 裝不下就開新貼文。單一句子就超過上限時回傳 SentenceTooLongError，
// 分割器刻意沒有句內切割的後援。
func SplitInstructions(text string, maxLength int) ([]string, error) {
	if utf8.RuneCountInString(text) <= maxLength {
		return []string{text}, nil
	}

	tweets := []string{""}
	for _, fragment := range strings.Split(text, ".") {
		sentence := strings.TrimSpace(fragment) + "."
		// 連續句號或結尾句號的殘渣
		if sentence == "." {
			continue
		}
		if length := utf8.RuneCountInString(sentence); length > maxLength {
			return nil, common.NewSentenceTooLongError(length, maxLength)
		}

		// 加上這句會溢出時先開新貼文；剛好等於上限時允許
		last := len(tweets) - 1
		if utf8.RuneCountInString(tweets[last]+" "+sentence) > maxLength {
			tweets = append(tweets, "")
			last++
		}
		tweets[last] = tweets[last] + " " + sentence
	}

	return tweets, nil
}
