package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cocktail-bot/internal/api"
	"cocktail-bot/internal/core/bot"
	"cocktail-bot/internal/core/cocktaildb"
	"cocktail-bot/internal/core/twitter"
	"cocktail-bot/internal/pkg/common"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Answer mention requests continuously",
	RunE:  runListen,
}

func init() {
	rootCmd.AddCommand(listenCmd)
}

func runListen(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer common.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 去重帳本（持久，跨重啟）
	ledger, err := bot.NewLedger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize ledger: %w", err)
	}
	defer ledger.Close()

	social := twitter.NewClient(cfg)
	service := bot.NewService(cfg, cocktaildb.NewClient(cfg), social)
	loop := bot.NewMentionLoop(cfg, service, social, ledger)

	// 維運用狀態伺服器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      api.SetupRouter(cfg, ledger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start status server", zap.Error(err))
		}
	}()

	common.LogInfo("啟動提及回應",
		zap.String("version", cfg.App.Version),
		zap.String("env", cfg.App.Env),
		zap.String("username", cfg.Twitter.Username),
		zap.Duration("輪詢間隔", cfg.Bot.PollInterval),
	)

	// 跑到收到中斷信號為止
	err = loop.Listen(ctx)

	common.LogInfo("Shutting down status server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		common.LogError("Status server forced to shutdown", zap.Error(serr))
	}

	if errors.Is(err, context.Canceled) {
		common.LogInfo("Listener exited")
		return nil
	}
	return err
}
