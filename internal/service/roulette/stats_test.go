package roulette

import (
	"errors"
	"testing"

	"roulette_backend/internal/model"
	servModel "roulette_backend/internal/service/roulette/model"
)

func spin(number model.Number, won, lost string, stakes ...string) model.SpinResult {
	res := model.SpinResult{
		Number:    number,
		TotalWon:  dec(won),
		TotalLost: dec(lost),
	}
	res.NetResult = res.TotalWon.Sub(res.TotalLost)
	for _, s := range stakes {
		res.LosingBets = append(res.LosingBets, model.BetPlacement{Kind: model.BetKindSector, Amount: dec(s)})
	}
	return res
}

func TestCalcStatsEmptyHistory(t *testing.T) {
	stats := CalcStats(nil, dec("1000"), dec("1000"))
	if stats.TotalSpins != 0 || stats.LongestLosingStreak != 0 || stats.CurrentStreak != 0 {
		t.Fatalf("stats = %+v", stats)
	}
	assertDecimal(t, "roi", stats.ROI, "0")
	assertDecimal(t, "wagered", stats.TotalWagered, "0")
	assertDecimal(t, "net", stats.NetProfit, "0")
}

func TestCalcStats(t *testing.T) {
	history := []model.SpinResult{
		spin(2, "0", "5", "5"),
		spin(3, "0", "2", "1", "1"),
		spin(0, "9", "6", "6", "0.5"),
		spin(4, "0", "1", "1"),
	}
	stats := CalcStats(history, dec("1000"), dec("995"))

	assertDecimal(t, "wagered", stats.TotalWagered, "14")
	assertDecimal(t, "won", stats.TotalWon, "9")
	assertDecimal(t, "lost", stats.TotalLost, "14")
	assertDecimal(t, "net", stats.NetProfit, "-5")
	assertDecimal(t, "highest bet", stats.HighestBet, "6.5")
	// -5 / 14 * 100
	assertDecimal(t, "roi", stats.ROI, "-35.71")

	if stats.LongestLosingStreak != 2 {
		t.Errorf("longest streak = %d, want 2", stats.LongestLosingStreak)
	}
	if stats.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1", stats.CurrentStreak)
	}
}

func TestCalcStatsBreakEvenResetsStreak(t *testing.T) {
	history := []model.SpinResult{
		spin(2, "0", "1"),
		spin(3, "1", "1"),
	}
	stats := CalcStats(history, dec("10"), dec("9"))
	if stats.CurrentStreak != 0 || stats.LongestLosingStreak != 1 {
		t.Fatalf("streaks = %d/%d", stats.CurrentStreak, stats.LongestLosingStreak)
	}
}

func TestCurrentStatsIncludesNextSpin(t *testing.T) {
	s, _ := newTestService(t, servModel.DefaultSettings())
	if _, err := s.RecordSpin(32); err != nil {
		t.Fatal(err)
	}

	stats := s.CurrentStats()
	if stats.TotalSpins != 1 {
		t.Fatalf("spins = %d", stats.TotalSpins)
	}
	assertDecimal(t, "net", stats.NetProfit, "10")
	assertDecimal(t, "roi", stats.ROI, "200")
	assertDecimal(t, "highest bet", stats.HighestBet, "6.5")
	// пять трансверсалей на шаге 1, LINE_31_36 на шаге 0, Zero Spiel
	assertDecimal(t, "next stake", stats.NextTotalStake, "6.5")
	assertDecimal(t, "coverage", stats.CoveragePercentage, "100")
}

func TestCalcHeatmap(t *testing.T) {
	history := []model.SpinResult{{Number: 5}, {Number: 17}, {Number: 5}}
	entries := CalcHeatmap(history)
	if len(entries) != model.NumbersCount {
		t.Fatalf("entries = %d", len(entries))
	}

	tests := []struct {
		n         model.Number
		hits      int
		lastSeen  int
		intensity float64
		color     model.Color
	}{
		{5, 2, 1, 1, model.Red},
		{17, 1, 2, 0.5, model.Black},
		{0, 0, 4, 0, model.Green},
	}
	for _, tt := range tests {
		e := entries[tt.n]
		if e.Number != tt.n || e.HitCount != tt.hits || e.LastSeenRoundsAgo != tt.lastSeen || e.Intensity != tt.intensity || e.Color != tt.color {
			t.Errorf("entry %d = %+v", tt.n, e)
		}
	}
}

func TestCalcHeatmapEmpty(t *testing.T) {
	for _, e := range CalcHeatmap(nil) {
		if e.HitCount != 0 || e.Intensity != 0 || e.LastSeenRoundsAgo != 1 {
			t.Fatalf("entry = %+v", e)
		}
	}
}

func TestCalcWorstCase(t *testing.T) {
	settings := servModel.DefaultSettings()

	t.Run("five losses", func(t *testing.T) {
		wc, err := CalcWorstCase(5, 6, settings, dec("1000"))
		if err != nil {
			t.Fatal(err)
		}
		// 6*(1+1+2+3+5) + 5*0.5
		assertDecimal(t, "total loss", wc.TotalLoss, "74.5")
		assertDecimal(t, "final bet", wc.FinalBet, "5")
		if wc.FibonacciStepReached != 4 || wc.WouldExceedTableLimit || wc.WouldExceedBankroll {
			t.Fatalf("scenario = %+v", wc)
		}
	})

	t.Run("capped at max step", func(t *testing.T) {
		wc, err := CalcWorstCase(15, 6, settings, dec("1000"))
		if err != nil {
			t.Fatal(err)
		}
		// fib[10] = 89
		assertDecimal(t, "final bet", wc.FinalBet, "89")
		if wc.FibonacciStepReached != 10 {
			t.Fatalf("step = %d", wc.FibonacciStepReached)
		}
		if !wc.WouldExceedBankroll {
			t.Fatalf("expected bankroll overrun: %+v", wc)
		}
	})

	t.Run("table limit", func(t *testing.T) {
		limited := settings.Clone()
		limited.TableLimitSector = dec("4")
		wc, err := CalcWorstCase(5, 6, limited, dec("1000"))
		if err != nil {
			t.Fatal(err)
		}
		if !wc.WouldExceedTableLimit {
			t.Fatalf("final bet %s must exceed limit 4", wc.FinalBet)
		}
	})

	t.Run("zero losses", func(t *testing.T) {
		wc, err := CalcWorstCase(0, 6, settings, dec("1000"))
		if err != nil {
			t.Fatal(err)
		}
		if !wc.TotalLoss.IsZero() || !wc.FinalBet.IsZero() || wc.FibonacciStepReached != 0 {
			t.Fatalf("scenario = %+v", wc)
		}
	})

	t.Run("negative", func(t *testing.T) {
		if _, err := CalcWorstCase(-1, 6, settings, dec("1000")); !errors.Is(err, model.ErrInvalidLossCount) {
			t.Fatalf("err = %v", err)
		}
	})
}

func TestWorstCaseUsesActiveSectors(t *testing.T) {
	settings := servModel.DefaultSettings()
	settings.ActiveSectors = []model.Sector{model.Line1to6, model.Line7to12}
	settings.ActiveCoverage.ZeroSpiel = false
	s, _ := newTestService(t, settings)

	wc, err := s.WorstCase(3)
	if err != nil {
		t.Fatal(err)
	}
	// 2*(1+1+2)
	assertDecimal(t, "total loss", wc.TotalLoss, "8")
}

func TestCalcCoverage(t *testing.T) {
	settings := servModel.DefaultSettings()
	s, _ := newTestService(t, settings)

	all := s.Coverage()
	if len(all.CoveredNumbers) != model.NumbersCount {
		t.Fatalf("covered = %v", all.CoveredNumbers)
	}
	assertDecimal(t, "percentage", all.CoveragePercentage, "100")
	wantOverlaps := []model.Number{12, 35, 3, 26, 32, 15}
	if len(all.Overlaps) != len(wantOverlaps) {
		t.Fatalf("overlaps = %v", all.Overlaps)
	}
	for i := range wantOverlaps {
		if all.Overlaps[i] != wantOverlaps[i] {
			t.Fatalf("overlaps = %v, want %v", all.Overlaps, wantOverlaps)
		}
	}

	var states [6]model.ProgressionState
	for i, sector := range model.Sectors {
		states[i] = model.ProgressionState{Sector: sector, Active: sector == model.Line31to36}
	}
	one := CalcCoverage(states, model.ActiveCoverage{ZeroSpiel: true})
	if len(one.CoveredNumbers) != 11 {
		t.Fatalf("covered = %v", one.CoveredNumbers)
	}
	// 11 / 37
	assertDecimal(t, "percentage", one.CoveragePercentage, "29.73")
	if len(one.Overlaps) != 2 || one.Overlaps[0] != 35 || one.Overlaps[1] != 32 {
		t.Fatalf("overlaps = %v", one.Overlaps)
	}
	for i := 1; i < len(one.CoveredNumbers); i++ {
		if one.CoveredNumbers[i-1] >= one.CoveredNumbers[i] {
			t.Fatalf("covered numbers not sorted: %v", one.CoveredNumbers)
		}
	}
}
