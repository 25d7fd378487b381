package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cocktail-bot/internal/core/cocktail"
	"cocktail-bot/internal/core/cocktaildb"
	"cocktail-bot/internal/core/twitter"
	"cocktail-bot/internal/infrastructure/config"
)

// testConfig 與預設值一致的測試設定
func testConfig() *config.Config {
	return &config.Config{
		Twitter: config.TwitterConfig{
			Username: "@cocktailsbot",
		},
		Bot: config.BotConfig{
			Hashtags:          "#cocktail #drink #recipe #bar",
			MaxPostLength:     280,
			MaxRetries:        5,
			RetryDelay:        10 * time.Second,
			PollInterval:      20 * time.Second,
			MentionsPerQuery:  10,
			IngredientPattern: "make me something with",
			NamePattern:       "make me a",
			ApologyReply:      "Something went wrong. Either you used the wrong syntaxis (check the pinned tweet), or there are no results for your query.",
		},
	}
}

func testRawRecord() cocktail.RawRecord {
	return cocktail.RawRecord{
		"idDrink":         "11007",
		"strDrink":        "Margarita",
		"strInstructions": "Shake the ingredients with ice. Strain into a chilled glass.",
		"strAlcoholic":    "Alcoholic",
		"strGlass":        "Cocktail glass",
		"strDrinkThumb":   "https://example.com/images/margarita.jpg",
		"strIngredient1":  "Tequila",
		"strMeasure1":     "1 1/2 oz",
	}
}

// noSleep 讓測試不用等真實延遲
func noSleep(context.Context, time.Duration) {}

// fakeSource 可注入結果的酒譜來源
type fakeSource struct {
	record     cocktail.RawRecord
	resolveErr error
	thumbErr   error

	gotMode  cocktaildb.Mode
	gotTerms []string
}

func (f *fakeSource) Resolve(ctx context.Context, mode cocktaildb.Mode, terms []string) (cocktail.RawRecord, error) {
	f.gotMode = mode
	f.gotTerms = terms
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.record, nil
}

func (f *fakeSource) DownloadThumbnail(ctx context.Context, url string) (string, error) {
	if f.thumbErr != nil {
		return "", f.thumbErr
	}
	return "thumbnails/margarita.jpg", nil
}

// postedStatus 一次 UpdateStatus 呼叫的參數
type postedStatus struct {
	Status    string
	MediaID   string
	InReplyTo string
}

// fakeSocial 記錄所有發文呼叫的社群客戶端
type fakeSocial struct {
	mentions    []twitter.Mention
	mentionsErr error
	uploadErr   error
	statusErr   error

	statuses []postedStatus
	nextID   int
}

func (f *fakeSocial) UploadMedia(ctx context.Context, imagePath string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return "media-1", nil
}

func (f *fakeSocial) UpdateStatus(ctx context.Context, status, mediaID, inReplyTo string) (string, error) {
	if f.statusErr != nil {
		return "", f.statusErr
	}
	f.statuses = append(f.statuses, postedStatus{Status: status, MediaID: mediaID, InReplyTo: inReplyTo})
	f.nextID++
	return fmt.Sprintf("post-%d", f.nextID), nil
}

func (f *fakeSocial) MentionsTimeline(ctx context.Context, count int) ([]twitter.Mention, error) {
	if f.mentionsErr != nil {
		return nil, f.mentionsErr
	}
	return f.mentions, nil
}

// fakeLedger 記憶體帳本
type fakeLedger struct {
	seen      map[string]bool
	seenErr   error
	markErr   error
	markCalls []string
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{seen: make(map[string]bool)}
}

func (f *fakeLedger) Seen(ctx context.Context, id string) (bool, error) {
	if f.seenErr != nil {
		return false, f.seenErr
	}
	return f.seen[id], nil
}

func (f *fakeLedger) MarkSeen(ctx context.Context, id string) error {
	f.markCalls = append(f.markCalls, id)
	if f.markErr != nil {
		return f.markErr
	}
	f.seen[id] = true
	return nil
}

func testMention(id, user, text string) twitter.Mention {
	m := twitter.Mention{ID: id, Text: text}
	m.User.ScreenName = user
	return m
}

var errBoom = errors.New("boom")
