package session_repo

import (
	"testing"
	"time"

	"roulette_backend/internal/model"

	"github.com/shopspring/decimal"
)

func TestStartSetsBalance(t *testing.T) {
	r := NewSessionRepository(model.Settings{})
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	r.Start("abc", start, decimal.NewFromInt(250))
	r.SetBalance(decimal.NewFromInt(260))
	r.Start("def", start, decimal.NewFromInt(300))

	info := r.Info()
	if info.ID != "def" || !info.StartTime.Equal(start) || !info.InitialBankroll.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("Info = %+v", info)
	}
	if !r.Balance().Equal(decimal.NewFromInt(300)) {
		t.Fatalf("Balance = %s, want 300", r.Balance())
	}
}

func TestSettingsAreCopied(t *testing.T) {
	in := model.Settings{
		FibonacciSequence: []int64{1, 1, 2},
		ActiveSectors:     []model.Sector{model.Line1to6},
	}
	r := NewSessionRepository(in)
	in.FibonacciSequence[0] = 100

	got := r.Settings()
	if got.FibonacciSequence[0] != 1 {
		t.Fatal("repository shares the input slice")
	}
	got.ActiveSectors[0] = model.Line31to36
	if r.Settings().ActiveSectors[0] != model.Line1to6 {
		t.Fatal("Settings leaked internal slice")
	}
}
