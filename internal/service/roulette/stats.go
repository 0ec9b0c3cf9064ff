package roulette

import (
	"roulette_backend/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalcStats Итоги по истории. Проигрышный спин - спин с отрицательным результатом
func CalcStats(history []model.SpinResult, initialBankroll, balance decimal.Decimal) model.SessionStats {
	stats := model.SessionStats{
		TotalSpins:   len(history),
		TotalWagered: decimal.Zero,
		TotalWon:     decimal.Zero,
		TotalLost:    decimal.Zero,
		HighestBet:   decimal.Zero,
		ROI:          decimal.Zero,
	}

	streak := 0
	for _, spin := range history {
		stats.TotalWagered = stats.TotalWagered.Add(spin.TotalLost)
		stats.TotalWon = stats.TotalWon.Add(spin.TotalWon)
		stats.TotalLost = stats.TotalLost.Add(spin.TotalLost)
		stats.SkippedBets += len(spin.SkippedBets)

		if stake := spin.TotalStake(); stake.GreaterThan(stats.HighestBet) {
			stats.HighestBet = stake
		}

		if spin.NetResult.IsNegative() {
			streak++
			if streak > stats.LongestLosingStreak {
				stats.LongestLosingStreak = streak
			}
		} else {
			streak = 0
		}
	}
	stats.CurrentStreak = streak

	stats.NetProfit = balance.Sub(initialBankroll)
	if !stats.TotalWagered.IsZero() {
		stats.ROI = stats.NetProfit.Mul(hundred).Div(stats.TotalWagered).Round(2)
	}

	return stats
}

// CurrentStats Статистика текущей сессии вместе с данными о следующем спине
func (s *serv) CurrentStats() model.SessionStats {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.stats()
}

func (s *serv) stats() model.SessionStats {
	info := s.sessionRepo.Info()
	stats := CalcStats(s.historyRepo.List(), info.InitialBankroll, s.sessionRepo.Balance())

	proposal := s.proposal()
	stats.PendingSkipped = proposal.Skipped
	stats.NextTotalStake = proposal.TotalStake()
	stats.CoveragePercentage = CalcCoverage(s.progressionRepo.States(), s.sessionRepo.Settings().ActiveCoverage).CoveragePercentage

	return stats
}
