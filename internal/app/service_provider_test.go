package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roulette_backend/internal/config/env"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func newTestProvider(t *testing.T) *ServiceProvider {
	t.Helper()
	t.Setenv("PG_DSN", "")

	strategy, err := env.ParseStrategyConfig([]byte("strategy:\n  initial_bankroll: \"500\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	return NewServiceProvider(
		WithLogger(zap.NewNop()),
		WithStrategyConfig(strategy),
		WithRegistry(prometheus.NewRegistry()),
	)
}

func TestRouterWiring(t *testing.T) {
	sp := newTestProvider(t)
	defer sp.Close()
	router := sp.Router(context.Background())

	if sp.ArchiveRepository(context.Background()) != nil || sp.TXManager(context.Background()) != nil {
		t.Fatal("archive must stay disabled without PG_DSN")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/roulette/spin", strings.NewReader(`{"number": 0}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("spin status = %d: %s", w.Code, w.Body.String())
	}
	// 6 трансверсалей по 1 проигрывают, Zero Spiel приносит 9
	if !strings.Contains(w.Body.String(), `"balance":"503.00"`) {
		t.Fatalf("spin body = %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(w.Body.String(), `roulette_spins_total{outcome="win"} 1`) {
		t.Fatalf("metrics = %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/roulette/archive", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("archive status = %d", w.Code)
	}
}

func TestProviderReusesInstances(t *testing.T) {
	sp := newTestProvider(t)
	ctx := context.Background()

	if sp.RouletteService(ctx) != sp.RouletteService(ctx) {
		t.Fatal("service must be built once")
	}
	if sp.Metrics() != sp.Metrics() {
		t.Fatal("metrics must be registered once")
	}
}
