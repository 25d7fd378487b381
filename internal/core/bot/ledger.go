package bot

import (
	"context"
	"fmt"

	"cocktail-bot/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// 提及處理紀錄的鍵前綴
const ledgerKeyPrefix = "mentions:processed:"

// Ledger 已處理提及的持久帳本。只增不刪：一個提及
// 一旦標記為已處理，跨重啟也不會再被回覆第二次。
type Ledger struct {
	client *redis.Client
}

// NewLedger 創建帳本並驗證 Redis 連線
func NewLedger(cfg *config.Config) (*Ledger, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Ledger{client: client}, nil
}

// Seen 檢查提及是否已處理過
func (l *Ledger) Seen(ctx context.Context, id string) (bool, error) {
	count, err := l.client.Exists(ctx, ledgerKeyPrefix+id).Result()
	if err != nil {
		return false, fmt.Errorf("failed to query ledger: %w", err)
	}
	return count > 0, nil
}

// MarkSeen 標記提及為已處理。重複標記無害，鍵不設過期。
func (l *Ledger) MarkSeen(ctx context.Context, id string) error {
	if err := l.client.Set(ctx, ledgerKeyPrefix+id, 1, 0).Err(); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}

// Ping 檢查帳本後端連線（供狀態端點使用）
func (l *Ledger) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

// Close 關閉帳本連線
func (l *Ledger) Close() error {
	return l.client.Close()
}
