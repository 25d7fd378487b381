package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"cocktail-bot/internal/infrastructure/config"
	"cocktail-bot/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Mention 指向機器人帳號的一則貼文
type Mention struct {
	ID   string `json:"id_str"`
	Text string `json:"text"`
	User struct {
		ScreenName string `json:"screen_name"`
	} `json:"user"`
}

// Client 社群平台 API 客戶端。
// 媒體上傳走獨立的 upload 網域，其餘操作走一般 API 網域。
type Client struct {
	config *config.Config
	api    *resty.Client
	upload *resty.Client
}

// NewClient 創建社群平台客戶端
func NewClient(cfg *config.Config) *Client {
	auth := "Bearer " + cfg.Twitter.AccessToken
	api := resty.New().
		SetBaseURL(cfg.Twitter.APIBaseURL).
		SetTimeout(cfg.Twitter.Timeout).
		SetHeader("Authorization", auth)
	upload := resty.New().
		SetBaseURL(cfg.Twitter.UploadBaseURL).
		SetTimeout(cfg.Twitter.Timeout).
		SetHeader("Authorization", auth)

	return &Client{
		config: cfg,
		api:    api,
		upload: upload,
	}
}

// UploadMedia 上傳本地圖片並回傳媒體 ID
func (c *Client) UploadMedia(ctx context.Context, imagePath string) (string, error) {
	image, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	resp, err := c.upload.R().
		SetContext(ctx).
		SetFileReader("media", filepath.Base(imagePath), bytes.NewReader(image)).
		Post("/media/upload.json")
	if err != nil {
		return "", fmt.Errorf("failed to upload media: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("media upload returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var result struct {
		MediaIDString string `json:"media_id_string"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse media upload response: %w", err)
	}

	common.LogDebug("媒體上傳完成", zap.String("media_id", result.MediaIDString))
	return result.MediaIDString, nil
}

// UpdateStatus 發佈一則貼文並回傳貼文 ID。
// mediaID 與 inReplyTo 皆可為空。
func (c *Client) UpdateStatus(ctx context.Context, status, mediaID, inReplyTo string) (string, error) {
	params := map[string]string{"status": status}
	if mediaID != "" {
		params["media_ids"] = mediaID
	}
	if inReplyTo != "" {
		params["in_reply_to_status_id"] = inReplyTo
	}

	resp, err := c.api.R().
		SetContext(ctx).
		SetFormData(params).
		Post("/statuses/update.json")
	if err != nil {
		return "", fmt.Errorf("failed to post status: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("status update returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var result struct {
		IDString string `json:"id_str"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse status update response: %w", err)
	}

	return result.IDString, nil
}

// MentionsTimeline 取得最近指向機器人帳號的貼文
func (c *Client) MentionsTimeline(ctx context.Context, count int) ([]Mention, error) {
	resp, err := c.api.R().
		SetContext(ctx).
		SetQueryParam("count", strconv.Itoa(count)).
		SetQueryParam("include_entities", "false").
		Get("/statuses/mentions_timeline.json")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mentions: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("mentions timeline returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var mentions []Mention
	if err := json.Unmarshal(resp.Body(), &mentions); err != nil {
		return nil, fmt.Errorf("failed to parse mentions response: %w", err)
	}

	return mentions, nil
}
