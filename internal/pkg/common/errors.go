package common

import (
	"errors"
	"fmt"
)

// ErrNoResults 查詢沒有任何結果（API 回傳空的 drinks 列表）
var ErrNoResults = errors.New("no drinks matched the query")

// MissingFieldError 酒譜缺少必要欄位（上游資料品質問題）
type MissingFieldError struct {
	Field string
}

// Error 實現 error 介面
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("recipe is missing required field %q", e.Field)
}

// NewMissingFieldError 創建缺少欄位錯誤
func NewMissingFieldError(field string) error {
	return &MissingFieldError{Field: field}
}

// IsMissingFieldError 檢查是否為缺少欄位錯誤
func IsMissingFieldError(err error) bool {
	var target *MissingFieldError
	return errors.As(err, &target)
}

// SentenceTooLongError 單一句子超過貼文長度上限。
// 分割器刻意不做句內切割，遇到這種情況直接回報。
type SentenceTooLongError struct {
	Length int
	Limit  int
}

// Error 實現 error 介面
func (e *SentenceTooLongError) Error() string {
	return fmt.Sprintf("sentence of %d characters exceeds the %d character limit", e.Length, e.Limit)
}

// NewSentenceTooLongError 創建句子過長錯誤
func NewSentenceTooLongError(length, limit int) error {
	return &SentenceTooLongError{Length: length, Limit: limit}
}

// IsSentenceTooLongError 檢查是否為句子過長錯誤
func IsSentenceTooLongError(err error) bool {
	var target *SentenceTooLongError
	return errors.As(err, &target)
}
