package cocktaildb

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"path"
	"strings"

	"cocktail-bot/internal/core/cocktail"
	"cocktail-bot/internal/infrastructure/config"
	"cocktail-bot/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Mode 查詢模式
type Mode string

const (
	ModeRandom     Mode = "random"
	ModeName       Mode = "name"
	ModeIngredient Mode = "ingredient"
)

// 各模式對應的端點路徑
var endpoints = map[Mode]string{
	ModeRandom:     "/random.php",
	ModeName:       "/search.php?s=",
	ModeIngredient: "/filter.php?i=",
}

const lookupEndpoint = "/lookup.php?i="

// Client 酒譜 API 客戶端
type Client struct {
	config *config.Config
	client *resty.Client
	pick   func(n int) int
}

// NewClient 創建酒譜 API 客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.CocktailDB.BaseURL).
		SetTimeout(cfg.CocktailDB.Timeout)

	return &Client{
		config: cfg,
		client: client,
		pick:   rand.Intn,
	}
}

// Resolve 依模式查詢並回傳一筆原始酒譜紀錄。
// name 與 ingredient 模式在多筆結果中均勻隨機取一筆，
// 避免重複查詢永遠回傳同一筆。ingredient 模式的結果只有
// id，需要再做一次 lookup 取得完整紀錄。
func (c *Client) Resolve(ctx context.Context, mode Mode, terms []string) (cocktail.RawRecord, error) {
	url := endpoints[mode]
	if len(terms) > 0 {
		url += strings.Join(terms, "+")
	}

	choice, err := c.callAPI(ctx, url)
	if err != nil {
		return nil, err
	}

	// random 與 name 模式直接回傳完整紀錄
	if mode != ModeIngredient {
		return choice, nil
	}

	return c.callAPI(ctx, lookupEndpoint+choice["idDrink"])
}

// callAPI 呼叫端點、解析 drinks 列表並隨機取一筆
func (c *Client) callAPI(ctx context.Context, url string) (cocktail.RawRecord, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to call cocktail API: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("cocktail API returned status %d", resp.StatusCode())
	}

	// drinks 為 null 或缺少時表示沒有任何結果
	var result struct {
		Drinks []cocktail.RawRecord `json:"drinks"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse cocktail API response: %w", err)
	}
	if len(result.Drinks) == 0 {
		return nil, common.ErrNoResults
	}

	choice := result.Drinks[c.pick(len(result.Drinks))]
	common.LogDebug("酒譜查詢完成",
		zap.String("url", url),
		zap.Int("結果數", len(result.Drinks)),
		zap.String("id", choice["idDrink"]),
	)
	return choice, nil
}

// DownloadThumbnail 下載縮圖到本地，檔名取 URL 的最後一段路徑
func (c *Client) DownloadThumbnail(ctx context.Context, url string) (string, error) {
	if err := os.MkdirAll(c.config.Bot.ThumbnailDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to download thumbnail: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("thumbnail download returned status %d", resp.StatusCode())
	}

	filePath := path.Join(c.config.Bot.ThumbnailDir, path.Base(url))
	if err := os.WriteFile(filePath, resp.Body(), 0644); err != nil {
		return "", fmt.Errorf("failed to write thumbnail: %w", err)
	}

	return filePath, nil
}
