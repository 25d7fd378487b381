package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	CocktailDB CocktailDBConfig `mapstructure:"cocktaildb"`
	Twitter    TwitterConfig    `mapstructure:"twitter"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Bot        BotConfig        `mapstructure:"bot"`
	LogLevel   string           `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ServerConfig 狀態伺服器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// CocktailDBConfig 酒譜 API 配置
type CocktailDBConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// TwitterConfig 社群平台 API 配置
type TwitterConfig struct {
	APIBaseURL    string        `mapstructure:"api_base_url"`
	UploadBaseURL string        `mapstructure:"upload_base_url"`
	AccessToken   string        `mapstructure:"access_token"`
	Username      string        `mapstructure:"username"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// RedisConfig 去重帳本後端配置
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// BotConfig 機器人行為設定
type BotConfig struct {
	Hashtags          string        `mapstructure:"hashtags"`
	MaxPostLength     int           `mapstructure:"max_post_length"`
	MaxRetries        int           `mapstructure:"max_retries"`
	RetryDelay        time.Duration `mapstructure:"retry_delay"`
	PollInterval      time.Duration `mapstructure:"poll_interval"`
	MentionsPerQuery  int           `mapstructure:"mentions_per_query"`
	ThumbnailDir      string        `mapstructure:"thumbnail_dir"`
	ReportLogPath     string        `mapstructure:"report_log_path"`
	IngredientPattern string        `mapstructure:"ingredient_pattern"`
	NamePattern       string        `mapstructure:"name_pattern"`
	ApologyReply      string        `mapstructure:"apology_reply"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件（不存在時改用環境變數與預設值）
	_ = godotenv.Load()

	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("BOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("twitter.access_token", "TWITTER_ACCESS_TOKEN")
	viper.BindEnv("twitter.username", "TWITTER_USERNAME")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")
	viper.BindEnv("bot.max_retries", "BOT_MAX_RETRIES")
	viper.BindEnv("bot.retry_delay", "BOT_RETRY_DELAY")
	viper.BindEnv("bot.poll_interval", "BOT_POLL_INTERVAL")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 設定設定檔名稱和路徑
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// 讀取設定檔
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 解析設定
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "cocktail-bot")

	// 狀態伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// 酒譜 API 設定
	viper.SetDefault("cocktaildb.base_url", "https://www.thecocktaildb.com/api/json/v1/1")
	viper.SetDefault("cocktaildb.timeout", "30s")

	// 社群平台設定
	viper.SetDefault("twitter.api_base_url", "https://api.twitter.com/1.1")
	viper.SetDefault("twitter.upload_base_url", "https://upload.twitter.com/1.1")
	viper.SetDefault("twitter.username", "@cocktailsbot")
	viper.SetDefault("twitter.timeout", "60s")

	// Redis 設定
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)

	// 機器人行為設定
	viper.SetDefault("bot.hashtags", "#cocktail #drink #recipe #bar")
	viper.SetDefault("bot.max_post_length", 280)
	viper.SetDefault("bot.max_retries", 5)
	viper.SetDefault("bot.retry_delay", "10s")
	viper.SetDefault("bot.poll_interval", "20s")
	viper.SetDefault("bot.mentions_per_query", 10)
	viper.SetDefault("bot.thumbnail_dir", "thumbnails")
	viper.SetDefault("bot.report_log_path", "log.txt")
	viper.SetDefault("bot.ingredient_pattern", "make me something with")
	viper.SetDefault("bot.name_pattern", "make me a")
	viper.SetDefault("bot.apology_reply", "Something went wrong. Either you used the wrong syntaxis (check the pinned tweet), or there are no results for your query.")

	// 日誌設定
	viper.SetDefault("log_level", "info")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	// 驗證機器人設定
	if config.Bot.MaxPostLength <= 0 {
		return fmt.Errorf("invalid max post length")
	}
	if config.Bot.MaxRetries <= 0 {
		return fmt.Errorf("invalid max retries")
	}
	if config.Bot.PollInterval <= 0 {
		return fmt.Errorf("invalid poll interval")
	}
	if config.Bot.MentionsPerQuery <= 0 {
		return fmt.Errorf("invalid mentions per query")
	}

	return nil
}
