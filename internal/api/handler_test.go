package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc-io/veridoc/internal/ensemble"
	"github.com/veridoc-io/veridoc/internal/export"
	"github.com/veridoc-io/veridoc/internal/specialist"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	engine := ensemble.NewEngine(ensemble.DefaultConfig(), specialist.NewRegistry().BuildAll(), nil, quietLogger())
	t.Cleanup(engine.Close)
	return NewRouter(NewHandler(engine, quietLogger()))
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestValidateEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := ValidateRequest{
		Tier: "fast",
		Pages: []PageRequest{
			{Number: 1, Data: bytes.Repeat([]byte{0x89}, 4096)},
		},
		Metadata: map[string]string{"title": "deck", "language": "en"},
	}

	w := doJSON(t, router, http.MethodPost, "/v1/validate", req)
	require.Equal(t, http.StatusOK, w.Code)

	var sc export.Scorecard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sc))
	assert.Equal(t, "fast", sc.Tier)
	assert.InDelta(t, 1.0, sc.Score, 1e-9)
	assert.Equal(t, "A+", sc.Grade)
	assert.NotEmpty(t, sc.RunID)
}

func TestValidateEndpoint_BadBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/validate", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestValidateEndpoint_MissingPages(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/validate", gin.H{"tier": "fast"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTiersEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/tiers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Tiers []TierResponse `json:"tiers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Tiers, 3)
	assert.Equal(t, "fast", body.Tiers[0].Name)
	assert.Equal(t, "premium", body.Tiers[2].Name)
	assert.Len(t, body.Tiers[2].Specialists, 5)
}

func TestCostEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/cost?tier=fast&pages=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Tier     string  `json:"tier"`
		Total    float64 `json:"total"`
		Currency string  `json:"currency"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "fast", body.Tier)
	assert.InDelta(t, 0.12, body.Total, 1e-9)
	assert.Equal(t, "USD", body.Currency)
}

func TestCostEndpoint_BadPages(t *testing.T) {
	router := newTestRouter(t)

	assert.Equal(t, http.StatusBadRequest, doJSON(t, router, http.MethodGet, "/v1/cost?pages=lots", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, router, http.MethodGet, "/v1/cost?pages=-2", nil).Code)
}

func TestCostEndpoint_EnrichmentAddon(t *testing.T) {
	router := newTestRouter(t)

	var plain, enriched struct {
		Total float64 `json:"total"`
	}
	w := doJSON(t, router, http.MethodGet, "/v1/cost?tier=fast&pages=5", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plain))
	w = doJSON(t, router, http.MethodGet, "/v1/cost?tier=fast&pages=5&enrichment=true", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &enriched))

	assert.Greater(t, enriched.Total, plain.Total)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
