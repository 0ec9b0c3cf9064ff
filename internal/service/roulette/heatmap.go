package roulette

import (
	"roulette_backend/internal/model"
	servModel "roulette_backend/internal/service/roulette/model"
)

// CalcHeatmap Частоты по всем 37 номерам.
// LastSeenRoundsAgo: 1 - выпал в последнем спине, len(history)+1 - не выпадал ни разу
func CalcHeatmap(history []model.SpinResult) []model.HeatmapEntry {
	var counts [model.NumbersCount]int
	var lastIndex [model.NumbersCount]int
	for i := range lastIndex {
		lastIndex[i] = -1
	}

	maxHits := 0
	for i, spin := range history {
		n := int(spin.Number)
		if n < 0 || n >= model.NumbersCount {
			continue
		}
		counts[n]++
		lastIndex[n] = i
		if counts[n] > maxHits {
			maxHits = counts[n]
		}
	}

	entries := make([]model.HeatmapEntry, 0, model.NumbersCount)
	for n := 0; n < model.NumbersCount; n++ {
		lastSeen := len(history) + 1
		if lastIndex[n] >= 0 {
			lastSeen = len(history) - lastIndex[n]
		}

		var intensity float64
		if maxHits > 0 {
			intensity = float64(counts[n]) / float64(maxHits)
		}

		// n всегда в диапазоне колеса
		color, _ := servModel.ColorOf(model.Number(n))

		entries = append(entries, model.HeatmapEntry{
			Number:            model.Number(n),
			HitCount:          counts[n],
			LastSeenRoundsAgo: lastSeen,
			Intensity:         intensity,
			Color:             color,
		})
	}

	return entries
}

func (s *serv) Heatmap() []model.HeatmapEntry {
	return CalcHeatmap(s.historyRepo.List())
}
