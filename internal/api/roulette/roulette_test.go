package roulette

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dto "roulette_backend/internal/api/dto/roulette"
	"roulette_backend/internal/metrics"
	"roulette_backend/internal/repository/history_repo"
	"roulette_backend/internal/repository/progression_repo"
	"roulette_backend/internal/repository/session_repo"
	rouletteServ "roulette_backend/internal/service/roulette"
	servModel "roulette_backend/internal/service/roulette/model"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	settings := servModel.DefaultSettings()
	serv := rouletteServ.NewRouletteService(
		progression_repo.NewProgressionRepository(settings.ActiveSectorSet()),
		history_repo.NewHistoryRepository(),
		session_repo.NewSessionRepository(settings),
		nil,
		nil,
		metrics.New(prometheus.NewRegistry()),
		zap.NewNop(),
	)
	h := NewHandler(HandlerDeps{Serv: serv, Log: zap.NewNop()})

	r := chi.NewRouter()
	r.Route("/roulette", func(rr chi.Router) {
		rr.Get("/session", h.Session)
		rr.Get("/bets", h.Bets)
		rr.Post("/spin", h.Spin)
		rr.Post("/undo", h.Undo)
		rr.Post("/reset", h.Reset)
		rr.Get("/settings", h.GetSettings)
		rr.Patch("/settings", h.UpdateSettings)
		rr.Get("/progression", h.Progression)
		rr.Get("/stats", h.Stats)
		rr.Get("/heatmap", h.Heatmap)
		rr.Get("/worst-case", h.WorstCase)
		rr.Get("/coverage", h.Coverage)
		rr.Get("/export/json", h.ExportJSON)
		rr.Get("/export/csv", h.ExportCSV)
		rr.Post("/archive", h.Archive)
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, w.Body.String())
	}
	return v
}

func TestSpinFlow(t *testing.T) {
	h := newTestRouter(t)

	bets := decode[dto.ProposalResponse](t, do(t, h, http.MethodGet, "/roulette/bets", ""))
	if len(bets.Bets) != 7 || bets.TotalStake != "6.50" {
		t.Fatalf("bets = %+v", bets)
	}

	w := do(t, h, http.MethodPost, "/roulette/spin", `{"number": 32}`)
	if w.Code != http.StatusOK {
		t.Fatalf("spin status = %d: %s", w.Code, w.Body.String())
	}
	spin := decode[dto.SpinResponse](t, w)
	if spin.Balance != "1010.00" || spin.NetResult != "10.00" || spin.Color != "red" {
		t.Fatalf("spin = %+v", spin)
	}
	if len(spin.WinningBets) != 2 || len(spin.LosingBets) != 5 {
		t.Fatalf("winning = %d, losing = %d", len(spin.WinningBets), len(spin.LosingBets))
	}

	progression := decode[[]dto.ProgressionState](t, do(t, h, http.MethodGet, "/roulette/progression", ""))
	if progression[0].FibonacciIndex != 1 || progression[5].FibonacciIndex != 0 {
		t.Fatalf("progression = %+v", progression)
	}

	session := decode[dto.SessionResponse](t, do(t, h, http.MethodGet, "/roulette/session", ""))
	if session.Spins != 1 || session.Balance != "1010.00" {
		t.Fatalf("session = %+v", session)
	}

	w = do(t, h, http.MethodPost, "/roulette/undo", "")
	if w.Code != http.StatusOK {
		t.Fatalf("undo status = %d", w.Code)
	}
	session = decode[dto.SessionResponse](t, do(t, h, http.MethodGet, "/roulette/session", ""))
	if session.Spins != 0 || session.Balance != "1000.00" {
		t.Fatalf("session after undo = %+v", session)
	}
}

func TestHandlerErrors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"number out of range", http.MethodPost, "/roulette/spin", `{"number": 37}`, http.StatusBadRequest},
		{"negative number", http.MethodPost, "/roulette/spin", `{"number": -1}`, http.StatusBadRequest},
		{"missing number", http.MethodPost, "/roulette/spin", `{}`, http.StatusBadRequest},
		{"broken json", http.MethodPost, "/roulette/spin", `{"number":`, http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/roulette/spin", `{"number": 3, "color": "red"}`, http.StatusBadRequest},
		{"undo on empty history", http.MethodPost, "/roulette/undo", "", http.StatusConflict},
		{"negative losses", http.MethodGet, "/roulette/worst-case?losses=-1", "", http.StatusBadRequest},
		{"losses not a number", http.MethodGet, "/roulette/worst-case?losses=abc", "", http.StatusBadRequest},
		{"archive without database", http.MethodPost, "/roulette/archive", "", http.StatusServiceUnavailable},
		{"step beyond sequence", http.MethodPatch, "/roulette/settings", `{"max_fibonacci_step": 17}`, http.StatusBadRequest},
		{"unknown sector", http.MethodPatch, "/roulette/settings", `{"active_sectors": ["LINE_1_7"]}`, http.StatusBadRequest},
		{"negative unit", http.MethodPatch, "/roulette/settings", `{"base_unit_sector": "-2"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, newTestRouter(t), tt.method, tt.path, tt.body)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestWorstCase(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/roulette/worst-case?losses=5", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	res := decode[dto.WorstCaseResponse](t, w)
	if res.TotalLoss != "74.50" || res.FinalBet != "5.00" || res.FibonacciStepReached != 4 {
		t.Fatalf("worst case = %+v", res)
	}
	if res.WouldExceedTableLimit || res.WouldExceedBankroll {
		t.Fatalf("worst case = %+v", res)
	}
}

func TestUpdateSettings(t *testing.T) {
	h := newTestRouter(t)

	w := do(t, h, http.MethodPatch, "/roulette/settings", `{"base_unit_sector": 2, "orphelins": true, "active_sectors": ["LINE_1_6", "LINE_31_36"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	settings := decode[dto.SettingsResponse](t, w)
	if settings.BaseUnitSector != "2" || !settings.ActiveCoverage.Orphelins || len(settings.ActiveSectors) != 2 {
		t.Fatalf("settings = %+v", settings)
	}

	bets := decode[dto.ProposalResponse](t, do(t, h, http.MethodGet, "/roulette/bets", ""))
	// 2 + 2 + 0.5 + 0.5
	if len(bets.Bets) != 4 || bets.TotalStake != "5.00" {
		t.Fatalf("bets = %+v", bets)
	}
}

func TestStatsAndCoverage(t *testing.T) {
	h := newTestRouter(t)
	do(t, h, http.MethodPost, "/roulette/spin", `{"number": 32}`)

	stats := decode[dto.StatsResponse](t, do(t, h, http.MethodGet, "/roulette/stats", ""))
	if stats.TotalSpins != 1 || stats.NetProfit != "10.00" || stats.ROI != "200.00" {
		t.Fatalf("stats = %+v", stats)
	}

	coverage := decode[dto.CoverageResponse](t, do(t, h, http.MethodGet, "/roulette/coverage", ""))
	if coverage.CoveragePercentage != "100.00" || len(coverage.CoveredNumbers) != 37 {
		t.Fatalf("coverage = %+v", coverage)
	}

	heatmap := decode[[]dto.HeatmapEntry](t, do(t, h, http.MethodGet, "/roulette/heatmap", ""))
	if len(heatmap) != 37 || heatmap[32].HitCount != 1 || heatmap[32].Intensity != 1 {
		t.Fatalf("heatmap[32] = %+v", heatmap[32])
	}
}

func TestExport(t *testing.T) {
	h := newTestRouter(t)
	do(t, h, http.MethodPost, "/roulette/spin", `{"number": 32}`)

	w := do(t, h, http.MethodGet, "/roulette/export/csv", "")
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "roulette-session.csv") {
		t.Fatalf("disposition = %q", w.Header().Get("Content-Disposition"))
	}
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 2 || lines[0] != "Spin,Number,Total Bet,Total Won,Net Result,Balance" || lines[1] != "1,32,5.00,15.00,10.00,1010.00" {
		t.Fatalf("csv = %q", w.Body.String())
	}

	w = do(t, h, http.MethodGet, "/roulette/export/json", "")
	doc := decode[map[string]json.RawMessage](t, w)
	if _, ok := doc["finalStats"]; !ok {
		t.Fatalf("json export = %s", w.Body.String())
	}
}

func TestReset(t *testing.T) {
	h := newTestRouter(t)
	before := decode[dto.SessionResponse](t, do(t, h, http.MethodGet, "/roulette/session", ""))
	do(t, h, http.MethodPost, "/roulette/spin", `{"number": 5}`)

	after := decode[dto.SessionResponse](t, do(t, h, http.MethodPost, "/roulette/reset", ""))
	if after.SessionID == before.SessionID || after.Spins != 0 || after.Balance != "1000.00" {
		t.Fatalf("session after reset = %+v", after)
	}
}
