package roulette

import (
	"fmt"

	"roulette_backend/internal/model"
	servModel "roulette_backend/internal/service/roulette/model"

	"github.com/shopspring/decimal"
)

// Evaluate Рассчитывает спин по уже сформированным ставкам. Состояние не меняет.
// Выигрыши трансверсали и покрывающей ставки считаются независимо и складываются.
// Баланс в результате не заполняется
func Evaluate(number model.Number, bets []model.BetPlacement, settings model.Settings) (model.SpinResult, []model.SectorOutcome, error) {
	hitSector, err := servModel.SectorOf(number)
	if err != nil {
		return model.SpinResult{}, nil, err
	}
	overlaps, err := servModel.CoverageOverlaps(number, settings.ActiveCoverage)
	if err != nil {
		return model.SpinResult{}, nil, err
	}

	one := decimal.NewFromInt(1)
	sectorMult := settings.SectorPayout.Add(one)
	coverageMult := settings.CoveragePayout.Add(one)

	res := model.SpinResult{
		Number:      number,
		WinningBets: make([]model.BetPlacement, 0),
		LosingBets:  make([]model.BetPlacement, 0),
		TotalWon:    decimal.Zero,
		TotalLost:   decimal.Zero,
	}
	outcomes := make([]model.SectorOutcome, 0, len(model.Sectors))

	for _, bet := range bets {
		var won bool
		var mult decimal.Decimal

		switch bet.Kind {
		case model.BetKindSector:
			// 0 не входит ни в одну трансверсаль
			won = hitSector != model.SectorNone && bet.Sector == hitSector
			mult = sectorMult
			outcomes = append(outcomes, model.SectorOutcome{Sector: bet.Sector, Won: won})
		case model.BetKindCoverage:
			won = containsKind(overlaps, bet.Coverage)
			mult = coverageMult
		default:
			return model.SpinResult{}, nil, fmt.Errorf("unknown bet kind %q", bet.Kind)
		}

		if won {
			res.TotalWon = res.TotalWon.Add(bet.Amount.Mul(mult))
			res.WinningBets = append(res.WinningBets, bet)
		} else {
			res.TotalLost = res.TotalLost.Add(bet.Amount)
			res.LosingBets = append(res.LosingBets, bet)
		}
	}

	res.NetResult = res.TotalWon.Sub(res.TotalLost)
	return res, outcomes, nil
}

func containsKind(kinds []model.CoverageKind, kind model.CoverageKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
