// Package main provides the entry point for the cocktail bot.
package main

import (
	"fmt"
	"os"

	"cocktail-bot/internal/infrastructure/config"
	"cocktail-bot/internal/pkg/common"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "cocktailbot",
	Short:        "Cocktail recipe bot",
	Long:         "Fetches cocktail recipes from TheCocktailDB and publishes them as emoji-decorated tweet threads, either on a schedule or in reply to mentions.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap 載入設定並初始化日誌系統
func bootstrap() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := common.InitLogger(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}
