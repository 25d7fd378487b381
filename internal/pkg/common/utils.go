package common

import (
	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID（用於關聯單次發文週期的日誌）
func GenerateUUID() string {
	return uuid.New().String()
}
