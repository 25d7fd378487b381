package bot

import (
	"context"
	"time"

	"cocktail-bot/internal/core/cocktaildb"
	"cocktail-bot/internal/infrastructure/config"
	"cocktail-bot/internal/pkg/common"

	"go.uber.org/zap"
)

// Runner 定期發文驅動。跑一次隨機酒譜的完整發文週期，
// 失敗時等待固定延遲後重試，額度用盡回傳錯誤讓行程以
// 非零狀態結束。重試不分失敗種類，暫時性網路錯誤與
// 資料錯誤一視同仁（既有的已知限制）。
type Runner struct {
	config  *config.Config
	service *Service
	report  *ReportLog
	// 測試用的睡眠替身
	sleep func(context.Context, time.Duration)
}

// NewRunner 創建定期發文驅動
func NewRunner(cfg *config.Config, service *Service, report *ReportLog) *Runner {
	return &Runner{
		config:  cfg,
		service: service,
		report:  report,
		sleep:   sleepContext,
	}
}

// Run 執行一次帶重試額度的發文流程。額度計的是總嘗試次數。
func (r *Runner) Run(ctx context.Context) error {
	cycleID := common.GenerateUUID()
	remaining := r.config.Bot.MaxRetries

	for {
		drinkID, err := r.runOnce(ctx)
		if err == nil {
			if rerr := r.report.Posted(drinkID); rerr != nil {
				common.LogError("發文紀錄寫入失敗", zap.Error(rerr))
			}
			common.LogInfo("定期發文成功",
				zap.String("cycle_id", cycleID),
				zap.String("drink_id", drinkID),
			)
			return nil
		}

		if rerr := r.report.Failed(drinkID); rerr != nil {
			common.LogError("發文紀錄寫入失敗", zap.Error(rerr))
		}

		remaining--
		common.LogError("定期發文失敗",
			zap.String("cycle_id", cycleID),
			zap.String("drink_id", drinkID),
			zap.Int("剩餘重試", remaining),
			zap.Error(err),
		)

		if remaining <= 0 {
			if rerr := r.report.Exhausted(); rerr != nil {
				common.LogError("發文紀錄寫入失敗", zap.Error(rerr))
			}
			common.LogError("重試額度用盡", zap.String("cycle_id", cycleID))
			return err
		}

		r.sleep(ctx, r.config.Bot.RetryDelay)
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// runOnce 跑一次隨機酒譜的組文加發佈
func (r *Runner) runOnce(ctx context.Context) (string, error) {
	tweet, drinkID, err := r.service.BuildTweet(ctx, cocktaildb.ModeRandom, nil)
	if err != nil {
		return drinkID, err
	}
	if err := r.service.PostTweet(ctx, tweet, ""); err != nil {
		return drinkID, err
	}
	return drinkID, nil
}

// sleepContext 可被 ctx 取消的睡眠
func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
