package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/Goptar/gopgang-api/internal/http/handlers"
	"github.com/Goptar/gopgang-api/internal/infra"
	"github.com/Goptar/gopgang-api/internal/leaderboard"
	"github.com/Goptar/gopgang-api/internal/ledger"
	"github.com/Goptar/gopgang-api/internal/providers/roblox"
)

const testSecret = "test-secret"

func newTestRouter() (http.Handler, *ledger.Store) {
	store := ledger.NewStore()
	app := handlers.NewApp(
		store,
		leaderboard.NewFacade(store),
		roblox.NewClient(roblox.Options{APIBaseURL: "http://127.0.0.1:0", PassesBaseURL: "http://127.0.0.1:0"}),
		infra.NewMetricsWithRegisterer(prometheus.NewRegistry()),
		zerolog.Nop(),
	)
	cfg := &infra.Config{
		IngestAPIKey:    testSecret,
		RateLimitPerMin: 1000,
	}
	return NewRouter(app, cfg, zerolog.Nop()), store
}

func TestIngestRouteRejectsWrongCredential(t *testing.T) {
	router, store := newTestRouter()

	body := `{"donatorUserId":"A","recipientUserId":"B","amount":10}`

	for _, key := range []string{"", "wrong"} {
		req := httptest.NewRequest(http.MethodPost, "/ingame/donation", strings.NewReader(body))
		if key != "" {
			req.Header.Set("X-Api-Key", key)
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("key %q: got %d, want 401", key, rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "Unauthorized") {
			t.Fatalf("key %q: body %q", key, rr.Body.String())
		}
	}

	if store.Len() != 0 {
		t.Fatalf("unauthorized requests must not touch the store")
	}
}

func TestIngestThenReadThroughRouter(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/ingame/donation",
		strings.NewReader(`{"donatorUserId":"A","donatorName":"Alice","recipientUserId":"B","recipientName":"Bob","amount":100}`))
	req.Header.Set("X-Api-Key", testSecret)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("ingest: got %d (%s)", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/top-raised?limit=1", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("read: got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"id":"B"`) {
		t.Fatalf("leaderboard missing recipient: %s", rr.Body.String())
	}
}

func TestHealthAndMetricsRoutes(t *testing.T) {
	router, _ := newTestRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("healthz: got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics: got %d", rr.Code)
	}
}
