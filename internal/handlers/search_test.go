package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"rentmap-backend/internal/models"
	"rentmap-backend/internal/services"
	"rentmap-backend/internal/translator"
	"rentmap-backend/pkg/lbc"
	"rentmap-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger(io.Discard, "ERROR")
	os.Exit(m.Run())
}

func newSearchRouter(upstreamURL string) *gin.Engine {
	svc := services.NewSearchService(
		lbc.NewClient(upstreamURL),
		translator.NewQueryTranslator(),
		translator.NewListingNormalizer(),
	)
	r := gin.New()
	r.POST("/api/search", NewSearchHandler(svc).Search)
	return r
}

func TestSearchHandler_ReturnsNormalizedResults(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ads": [{"list_id": 7, "subject": "T2 proche canal", "price": 640}]}`))
	}))
	defer upstream.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"price_max": 700}`))
	req.Header.Set("Content-Type", "application/json")
	newSearchRouter(upstream.URL).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}
	var resp models.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(resp.Results))
	}
	got := resp.Results[0]
	if got.Title != "T2 proche canal" || got.Price != "640 €" {
		t.Fatalf("result: %+v", got)
	}
	if got.URL != "https://www.leboncoin.fr/ad/locations/7" {
		t.Fatalf("url: got %q", got.URL)
	}
}

func TestSearchHandler_EmptyBodyIsUnfilteredSearch(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ads": []}`))
	}))
	defer upstream.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search", nil)
	newSearchRouter(upstream.URL).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"results":[]`) {
		t.Fatalf("expected empty results array, got %s", w.Body.String())
	}
}

func TestSearchHandler_MirrorsUpstreamStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("datadome challenge"))
	}))
	defer upstream.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	newSearchRouter(upstream.URL).ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status: got %d, want 403", w.Code)
	}
	var body struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "upstream search failed" {
		t.Fatalf("error: got %q", body.Error)
	}
	if body.Detail != "datadome challenge" {
		t.Fatalf("detail: got %q", body.Detail)
	}
}

func TestSearchHandler_MalformedBody(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"price_max": "cheap"}`))
	req.Header.Set("Content-Type", "application/json")
	newSearchRouter("http://unused.invalid").ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}
}
