package cocktaildb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"cocktail-bot/internal/infrastructure/config"
	"cocktail-bot/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.CocktailDB.BaseURL = server.URL
	cfg.Bot.ThumbnailDir = t.TempDir()

	client := NewClient(cfg)
	// 測試用固定選擇，不靠隨機
	client.pick = func(int) int { return 0 }
	return client
}

func TestResolve_Random(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/random.php", r.URL.Path)
		w.Write([]byte(`{"drinks":[{"idDrink":"11007","strDrink":"Margarita"}]}`))
	}))

	record, err := client.Resolve(context.Background(), ModeRandom, nil)
	require.NoError(t, err)
	assert.Equal(t, "Margarita", record["strDrink"])
}

func TestResolve_NameJoinsTerms(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.php", r.URL.Path)
		// 查詢詞以 + 相接
		assert.Equal(t, "s=tom+collins", r.URL.RawQuery)
		w.Write([]byte(`{"drinks":[{"idDrink":"11002","strDrink":"Tom Collins"}]}`))
	}))

	record, err := client.Resolve(context.Background(), ModeName, []string{"tom", "collins"})
	require.NoError(t, err)
	assert.Equal(t, "Tom Collins", record["strDrink"])
}

func TestResolve_IngredientDoesLookup(t *testing.T) {
	var calls []string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Path)
		switch r.URL.Path {
		case "/filter.php":
			// filter 只回傳 id，需要再 lookup 一次
			w.Write([]byte(`{"drinks":[{"idDrink":"11007"}]}`))
		case "/lookup.php":
			assert.Equal(t, "i=11007", r.URL.RawQuery)
			w.Write([]byte(`{"drinks":[{"idDrink":"11007","strDrink":"Margarita"}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	record, err := client.Resolve(context.Background(), ModeIngredient, []string{"tequila"})
	require.NoError(t, err)
	assert.Equal(t, "Margarita", record["strDrink"])
	assert.Equal(t, []string{"/filter.php", "/lookup.php"}, calls)
}

func TestResolve_NoResults(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"null drinks", `{"drinks":null}`},
		{"empty drinks", `{"drinks":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))

			_, err := client.Resolve(context.Background(), ModeName, []string{"unicornade"})
			assert.ErrorIs(t, err, common.ErrNoResults)
		})
	}
}

func TestResolve_NullFieldsDecodeAsEmpty(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"drinks":[{"idDrink":"1","strDrink":"X","strIngredient2":null}]}`))
	}))

	record, err := client.Resolve(context.Background(), ModeRandom, nil)
	require.NoError(t, err)
	assert.Equal(t, "", record["strIngredient2"])
}

func TestDownloadThumbnail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/margarita.jpg", r.URL.Path)
		w.Write([]byte("jpeg-bytes"))
	}))

	path, err := client.DownloadThumbnail(context.Background(), client.config.CocktailDB.BaseURL+"/images/margarita.jpg")
	require.NoError(t, err)
	// 檔名取 URL 最後一段
	assert.Equal(t, "margarita.jpg", filepath.Base(path))

	content, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	assert.Equal(t, "jpeg-bytes", string(content))
}
