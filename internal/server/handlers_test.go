package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptobuddy/advisor/internal/modules/catalog"
	"github.com/cryptobuddy/advisor/internal/modules/classify"
	"github.com/cryptobuddy/advisor/internal/modules/insight"
	"github.com/cryptobuddy/advisor/internal/modules/recommend"
)

type flatOracle struct{ price float64 }

func (o flatOracle) PriceOf(string) float64 { return o.price }

func newTestServer(t *testing.T) *Server {
	t.Helper()

	log := zerolog.Nop()
	builder, err := catalog.NewBuilder(flatOracle{price: 100}, log)
	require.NoError(t, err)

	return New(Config{
		Port:      0,
		Log:       log,
		Catalog:   catalog.NewStore(builder, log),
		Classify:  classify.NewService(log),
		Recommend: recommend.NewService(recommend.FallbackNone, log),
		Insight:   insight.NewService(nil, log),
	})
}

func doRequest(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}

	return rec, decoded
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rec, body := doRequest(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "cryptobuddy-advisor", body["service"])
}

func TestHandleListAssets(t *testing.T) {
	s := newTestServer(t)

	rec, body := doRequest(t, s, http.MethodGet, "/api/assets", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assets, ok := body["assets"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, assets)
	assert.NotEmpty(t, body["refreshed_at"])
}

func TestHandleGetAsset(t *testing.T) {
	s := newTestServer(t)

	rec, body := doRequest(t, s, http.MethodGet, "/api/assets/bitcoin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bitcoin", body["id"])
	assert.Equal(t, 100.0, body["current_price"])
}

func TestHandleGetAsset_NotFound(t *testing.T) {
	s := newTestServer(t)

	rec, body := doRequest(t, s, http.MethodGet, "/api/assets/notacoin", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, body["error"], "notacoin")
}

func TestHandleRefresh(t *testing.T) {
	s := newTestServer(t)

	before := s.catalog.Current()
	rec, body := doRequest(t, s, http.MethodPost, "/api/assets/refresh", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["refreshed_at"])
	assert.NotSame(t, before, s.catalog.Current())
}

func TestHandleTrending(t *testing.T) {
	s := newTestServer(t)

	rec, body := doRequest(t, s, http.MethodGet, "/api/trending", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assets, ok := body["assets"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, assets)

	for _, raw := range assets {
		a := raw.(map[string]any)
		trend := a["price_trend"].(string)
		assert.Contains(t, []string{"rising", "volatile"}, trend)
	}
}

func TestHandleSustainability(t *testing.T) {
	s := newTestServer(t)

	rec, body := doRequest(t, s, http.MethodGet, "/api/sustainability", "")
	require.Equal(t, http.StatusOK, rec.Code)

	ranking, ok := body["ranking"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, ranking)

	prev := 1.1
	for _, raw := range ranking {
		entry := raw.(map[string]any)
		score := entry["score"].(float64)
		assert.LessOrEqual(t, score, prev, "ranking must be descending")
		prev = score
	}
}

func TestHandleRecommendations(t *testing.T) {
	s := newTestServer(t)

	rec, body := doRequest(t, s, http.MethodGet, "/api/recommendations?profile=conservative", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "conservative", body["profile"])

	assets, ok := body["assets"].([]any)
	require.True(t, ok)
	for _, raw := range assets {
		a := raw.(map[string]any)
		assert.Greater(t, a["market_cap"].(float64), 100e9)
	}
}

func TestHandleRecommendations_UnknownProfile(t *testing.T) {
	s := newTestServer(t)

	_, body := doRequest(t, s, http.MethodGet, "/api/recommendations?profile=bogus", "")
	assert.Equal(t, "moderate", body["profile"])
}

func TestHandleSummary(t *testing.T) {
	s := newTestServer(t)

	rec, body := doRequest(t, s, http.MethodGet, "/api/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Greater(t, body["total_market_cap"].(float64), 0.0)
	assert.NotEmpty(t, body["trend_counts"])
}

func TestHandleInsight_NotConfigured(t *testing.T) {
	s := newTestServer(t)

	rec, body := doRequest(t, s, http.MethodPost, "/api/insight", `{"question":"Is BTC a buy?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "API key not configured", body["answer"])
}

func TestHandleInsight_EmptyQuestion(t *testing.T) {
	s := newTestServer(t)

	rec, _ := doRequest(t, s, http.MethodPost, "/api/insight", `{"question":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInsight_UnknownAsset(t *testing.T) {
	s := newTestServer(t)

	rec, body := doRequest(t, s, http.MethodPost, "/api/insight",
		`{"question":"What about this one?","asset_id":"notacoin"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, body["error"], "notacoin")
}
