package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"MotivationGenerator/internal/config"
	"MotivationGenerator/internal/llm"
	"MotivationGenerator/internal/models"
	"MotivationGenerator/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func mockConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.LLM.Provider = config.ProviderMock
	cfg.LLM.StartupCheck = true
	cfg.Storage.DataDir = filepath.Join(t.TempDir(), "data")
	cfg.RateLimit.IPRatePerSecond = 0
	return cfg
}

func TestNewGenerator(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	gen, err := newGenerator(ctx, config.LLMConfig{Provider: config.ProviderMock}, logger)
	require.NoError(t, err)
	assert.IsType(t, &llm.MockClient{}, gen)

	gen, err = newGenerator(ctx, config.LLMConfig{Provider: config.ProviderOpenAI, APIKey: "k"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &llm.OpenAIClient{}, gen)

	_, err = newGenerator(ctx, config.LLMConfig{Provider: "other"}, logger)
	assert.Error(t, err)
}

func TestNewApp_CreatesFolders(t *testing.T) {
	cfg := mockConfig(t)

	a, err := newApp(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	for _, dir := range models.Folders(a.variants) {
		assert.DirExists(t, dir)
	}
}

func TestGenerateOnce(t *testing.T) {
	cfg := mockConfig(t)
	a, err := newApp(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	_, err = a.generateOnce(context.Background(), models.VariantDaily, "", "")
	assert.ErrorIs(t, err, storage.ErrEmpty)

	daily := a.variants[models.VariantDaily]
	input := `{"user_info":{"name":"Lea","age":33,"pregnancy_status":"postpartum","child_age":1,` +
		`"current_situation":"on leave","challenges":"sleep","goals":"patience"}}`
	require.NoError(t, os.WriteFile(filepath.Join(daily.InputDir, "input1.json"), []byte(input), 0644))

	out, err := a.generateOnce(context.Background(), models.VariantDaily, "", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(daily.OutputDir, "output1.json"), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var result models.GenerationResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Contains(t, result.MotivationalSentence, "Lea")

	_, err = a.generateOnce(context.Background(), "weekly", "", "")
	assert.Error(t, err)
}

func TestNewRouter_ServesPrefixedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := mockConfig(t)
	cfg.Server.RoutePrefix = "/api/motivation"
	a, err := newApp(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	router := newRouter(a)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/motivation/generate", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/api/motivation/input"`)
}
