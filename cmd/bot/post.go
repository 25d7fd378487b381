package main

import (
	"context"
	"os/signal"
	"syscall"

	"cocktail-bot/internal/core/bot"
	"cocktail-bot/internal/core/cocktaildb"
	"cocktail-bot/internal/core/twitter"
	"cocktail-bot/internal/pkg/common"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post one random cocktail recipe with bounded retry",
	RunE:  runPost,
}

func init() {
	rootCmd.AddCommand(postCmd)
}

func runPost(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer common.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	service := bot.NewService(cfg, cocktaildb.NewClient(cfg), twitter.NewClient(cfg))
	report := bot.NewReportLog(cfg.Bot.ReportLogPath)
	runner := bot.NewRunner(cfg, service, report)

	common.LogInfo("啟動定期發文",
		zap.String("version", cfg.App.Version),
		zap.String("env", cfg.App.Env),
		zap.Int("重試額度", cfg.Bot.MaxRetries),
	)

	// 額度用盡時回傳錯誤，行程以非零狀態結束
	return runner.Run(ctx)
}
