package roulette

import (
	"sort"

	"roulette_backend/internal/model"
	servModel "roulette_backend/internal/service/roulette/model"

	"github.com/shopspring/decimal"
)

// CalcCoverage Номера, закрытые активными трансверсалями и покрывающими ставками.
// Overlaps - номера покрывающих ставок, которые уже закрыты трансверсалью
func CalcCoverage(states [6]model.ProgressionState, active model.ActiveCoverage) model.CoverageInfo {
	covered := make(map[model.Number]bool, model.NumbersCount)
	bySector := make(map[model.Number]bool, model.NumbersCount)

	for _, st := range states {
		if !st.Active {
			continue
		}
		for _, n := range servModel.SectorMembers(st.Sector) {
			covered[n] = true
			bySector[n] = true
		}
	}

	overlaps := make([]model.Number, 0)
	for _, kind := range active.Kinds() {
		for _, n := range servModel.CoverageMembers(kind) {
			if bySector[n] {
				overlaps = append(overlaps, n)
			}
			covered[n] = true
		}
	}

	numbers := make([]model.Number, 0, len(covered))
	for n := range covered {
		numbers = append(numbers, n)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })

	percentage := decimal.NewFromInt(int64(len(numbers))).
		Mul(hundred).
		Div(decimal.NewFromInt(model.NumbersCount)).
		Round(2)

	return model.CoverageInfo{
		CoveredNumbers:     numbers,
		CoveragePercentage: percentage,
		Overlaps:           overlaps,
	}
}

func (s *serv) Coverage() model.CoverageInfo {
	return CalcCoverage(s.progressionRepo.States(), s.sessionRepo.Settings().ActiveCoverage)
}
