package bot

import (
	"context"
	"strings"
	"time"

	"cocktail-bot/internal/core/twitter"
	"cocktail-bot/internal/infrastructure/config"
	"cocktail-bot/internal/pkg/common"

	"go.uber.org/zap"
)

// MentionLoop 提及回應驅動：輪詢最近的提及，逐則處理，
// 靠帳本保證每則提及最多被回覆一次（跨重啟也成立）。
// 處理嚴格逐則進行，檢查與標記之間不與其他提及交錯。
type MentionLoop struct {
	config  *config.Config
	service *Service
	social  SocialClient
	ledger  ProcessedLedger
	// 測試用的睡眠替身
	sleep func(context.Context, time.Duration)
}

// ProcessedLedger 已處理提及的持久成員檢查
type ProcessedLedger interface {
	Seen(ctx context.Context, id string) (bool, error)
	MarkSeen(ctx context.Context, id string) error
}

// NewMentionLoop 創建提及回應驅動
func NewMentionLoop(cfg *config.Config, service *Service, social SocialClient, ledger ProcessedLedger) *MentionLoop {
	return &MentionLoop{
		config:  cfg,
		service: service,
		social:  social,
		ledger:  ledger,
		sleep:   sleepContext,
	}
}

// Listen 持續輪詢並處理提及，直到 ctx 被取消
func (l *MentionLoop) Listen(ctx context.Context) error {
	for {
		mentions, err := l.social.MentionsTimeline(ctx, l.config.Bot.MentionsPerQuery)
		if err != nil {
			common.LogError("提及輪詢失敗", zap.Error(err))
		} else {
			for _, mention := range mentions {
				l.handleMention(ctx, mention)
			}
		}

		common.LogDebug("等待下一輪輪詢", zap.Duration("間隔", l.config.Bot.PollInterval))
		l.sleep(ctx, l.config.Bot.PollInterval)
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// handleMention 處理單則提及。不管結果如何（成功回覆、
// 失敗道歉、或只是一般留言），提及最後都會標記為已處理；
// 唯一的例外是帳本查詢本身失敗，此時跳過不標記，
// 留待下一輪重新檢查，避免把沒處理過的提及燒掉。
func (l *MentionLoop) handleMention(ctx context.Context, mention twitter.Mention) {
	text := strings.TrimSpace(strings.ReplaceAll(strings.ToLower(mention.Text), l.config.Twitter.Username, ""))

	seen, err := l.ledger.Seen(ctx, mention.ID)
	if err != nil {
		common.LogError("帳本查詢失敗",
			zap.String("mention_id", mention.ID),
			zap.Error(err),
		)
		return
	}
	if seen {
		common.LogDebug("提及已處理過，略過",
			zap.String("mention_id", mention.ID),
			zap.String("user", mention.User.ScreenName),
		)
		return
	}

	common.LogInfo("處理提及",
		zap.String("mention_id", mention.ID),
		zap.String("user", mention.User.ScreenName),
		zap.String("text", text),
	)

	if action, ok := l.service.ParseRequest(text); ok {
		if err := l.answer(ctx, mention, action); err != nil {
			common.LogError("回覆提及失敗",
				zap.String("mention_id", mention.ID),
				zap.Error(err),
			)
			l.apologize(ctx, mention)
		}
	}

	// 成敗都標記，失敗的請求不再重試
	if err := l.ledger.MarkSeen(ctx, mention.ID); err != nil {
		common.LogError("帳本寫入失敗",
			zap.String("mention_id", mention.ID),
			zap.Error(err),
		)
	}
}

// answer 解析成功後組文並以串接回覆發佈。平台要求每則
// 回覆都帶明確的 @ 提及，否則不算對請求者的回覆。
func (l *MentionLoop) answer(ctx context.Context, mention twitter.Mention, action Action) error {
	tweet, _, err := l.service.BuildTweet(ctx, action.Mode, action.Terms)
	if err != nil {
		return err
	}

	tweet.Body = "@" + mention.User.ScreenName + "\n" + tweet.Body
	for i, reply := range tweet.Replies {
		tweet.Replies[i] = "@" + mention.User.ScreenName + " " + reply
	}

	return l.service.PostTweet(ctx, tweet, mention.ID)
}

// apologize 盡力而為的道歉回覆，本身失敗不再重試
func (l *MentionLoop) apologize(ctx context.Context, mention twitter.Mention) {
	response := "@" + mention.User.ScreenName + " " + l.config.Bot.ApologyReply
	if _, err := l.social.UpdateStatus(ctx, response, "", mention.ID); err != nil {
		common.LogError("道歉回覆失敗",
			zap.String("mention_id", mention.ID),
			zap.Error(err),
		)
	}
}
