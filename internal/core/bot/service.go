package bot

import (
	"context"
	"fmt"

	"cocktail-bot/internal/core/cocktail"
	"cocktail-bot/internal/core/cocktaildb"
	"cocktail-bot/internal/core/twitter"
	"cocktail-bot/internal/infrastructure/config"
	"cocktail-bot/internal/pkg/common"

	"go.uber.org/zap"
)

// RecipeSource 酒譜來源
type RecipeSource interface {
	Resolve(ctx context.Context, mode cocktaildb.Mode, terms []string) (cocktail.RawRecord, error)
	DownloadThumbnail(ctx context.Context, url string) (string, error)
}

// SocialClient 社群平台操作
type SocialClient interface {
	UploadMedia(ctx context.Context, imagePath string) (string, error)
	UpdateStatus(ctx context.Context, status, mediaID, inReplyTo string) (string, error)
	MentionsTimeline(ctx context.Context, count int) ([]twitter.Mention, error)
}

// Service 酒譜發文服務：查詢、轉換、組文、發佈。
// 兩個驅動迴圈（定期發文與回應提及）共用同一組能力。
type Service struct {
	config *config.Config
	source RecipeSource
	social SocialClient
}

// NewService 創建酒譜發文服務
func NewService(cfg *config.Config, source RecipeSource, social SocialClient) *Service {
	return &Service{
		config: cfg,
		source: source,
		social: social,
	}
}

// BuildTweet 跑完整個組文流程：查詢、驗證、下載縮圖、
// 裝飾成分、組主文、分割說明。回傳組好的貼文與酒譜 id
//（查到紀錄後即使後續失敗也回傳 id，供日誌使用）。
func (s *Service) BuildTweet(ctx context.Context, mode cocktaildb.Mode, terms []string) (*cocktail.Tweet, string, error) {
	raw, err := s.source.Resolve(ctx, mode, terms)
	if err != nil {
		return nil, "", err
	}
	drinkID := raw["idDrink"]

	recipe, err := cocktail.ExtractRecipe(raw)
	if err != nil {
		return nil, drinkID, err
	}

	imagePath, err := s.source.DownloadThumbnail(ctx, recipe.ThumbnailURL)
	if err != nil {
		return nil, drinkID, err
	}

	replies, err := cocktail.SplitInstructions(
		cocktail.DecorateInstructions(recipe.Instructions),
		s.config.Bot.MaxPostLength,
	)
	if err != nil {
		return nil, drinkID, err
	}

	lines := cocktail.AnnotateIngredients(recipe.Ingredients)
	body := cocktail.BuildBody(recipe.Name, recipe.Alcoholic, lines, recipe.Glass, s.config.Bot.Hashtags)

	common.LogInfo("貼文組建完成",
		zap.String("drink_id", drinkID),
		zap.String("名稱", recipe.Name),
		zap.Int("回覆數", len(replies)),
	)

	return &cocktail.Tweet{ImagePath: imagePath, Body: body, Replies: replies}, drinkID, nil
}

// PostTweet 發佈整串貼文：上傳圖片、發主文（可作為回覆）、
// 再把每則說明依序接在前一則之後。任一步失敗即中止，
// 已發出的貼文不回收。
func (s *Service) PostTweet(ctx context.Context, tweet *cocktail.Tweet, inReplyTo string) error {
	mediaID, err := s.social.UploadMedia(ctx, tweet.ImagePath)
	if err != nil {
		return fmt.Errorf("failed to upload thumbnail: %w", err)
	}

	previousID, err := s.social.UpdateStatus(ctx, tweet.Body, mediaID, inReplyTo)
	if err != nil {
		return fmt.Errorf("failed to post main tweet: %w", err)
	}

	for _, reply := range tweet.Replies {
		previousID, err = s.social.UpdateStatus(ctx, reply, "", previousID)
		if err != nil {
			return fmt.Errorf("failed to post reply: %w", err)
		}
	}

	return nil
}
