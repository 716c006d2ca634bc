package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/config"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/database"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/llm"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/metrics"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/models"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingTweet = "Acme CI turns a twenty minute pipeline into a coffee sip. Ship on every commit and let the build server finally catch its breath."

// stageGenerator answers every pipeline stage with a fixed reply
type stageGenerator struct {
	mu      sync.Mutex
	replies map[string]string
	stages  []string
}

func (g *stageGenerator) Generate(_ context.Context, _ string, opts llm.Options) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stages = append(g.stages, opts.Stage)
	return g.replies[opts.Stage], nil
}

type failingStore struct{ calls int }

func (s *failingStore) InsertPreference(context.Context, *models.PreferenceRecord) error {
	s.calls++
	return errors.New("connection refused")
}

func testConfig() *config.Config {
	return &config.Config{LLMProvider: "openai", Model: "llama-3.3-70b-versatile"}
}

func TestGenerateTweetEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store, err := database.NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))

	gen := &stageGenerator{replies: map[string]string{"generate": passingTweet, "evaluate": "9"}}
	service := services.NewTweetService(gen, services.StrictScoreParser{},
		services.NewPreferenceRecorder(store, 3, 0), metrics.Nop{})
	router := SetupRouter(testConfig(), Dependencies{Pipeline: service, Database: store}, "test")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/gen-tweets",
		strings.NewReader(`{"productDetails": "Acme CI", "tweetType": "Funny", "hashtags": false}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "coffee sip")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, []string{"generate", "evaluate"}, gen.stages)

	count, err := store.CountPreferences(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGenerateTweetValidationSkipsModel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	gen := &stageGenerator{}
	service := services.NewTweetService(gen, services.StrictScoreParser{}, nil, metrics.Nop{})
	router := SetupRouter(testConfig(), Dependencies{Pipeline: service}, "test")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/gen-tweets",
		strings.NewReader(`{"productDetails": "   ", "tweetType": "CTA"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, gen.stages)
}

func TestGenerateTweetPersistenceFailureSkipsModel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := &failingStore{}
	gen := &stageGenerator{}
	service := services.NewTweetService(gen, services.StrictScoreParser{},
		services.NewPreferenceRecorder(store, 3, 0), metrics.Nop{})
	router := SetupRouter(testConfig(), Dependencies{Pipeline: service}, "test")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/gen-tweets",
		strings.NewReader(`{"productDetails": "Acme CI", "tweetType": "CTA"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to save preferences")
	assert.Equal(t, 3, store.calls)
	assert.Empty(t, gen.stages)
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(testConfig(), Dependencies{Pipeline: services.NewTweetService(&stageGenerator{}, services.StrictScoreParser{}, nil, nil)}, "test")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/qc", nil)
	req.Header.Set("Origin", "https://tweetcraft.example")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthReportsDatabaseDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(testConfig(), Dependencies{Pipeline: services.NewTweetService(&stageGenerator{}, services.StrictScoreParser{}, nil, nil)}, "test")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"disabled"`)
}
