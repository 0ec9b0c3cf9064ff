package roulette

import (
	"roulette_backend/internal/model"
	servModel "roulette_backend/internal/service/roulette/model"
)

// ProposeBets формирует ставки на следующий спин.
// Порядок фиксирован: активные трансверсали в каноническом порядке, затем покрывающие ставки.
// Трансверсаль со ставкой выше лимита стола не ставится и попадает в список пропущенных
func ProposeBets(states [6]model.ProgressionState, settings model.Settings) ([]model.BetPlacement, []model.SkippedBet) {
	bets := make([]model.BetPlacement, 0, len(states)+len(model.CoverageKinds))
	var skipped []model.SkippedBet

	for _, st := range states {
		if !st.Active {
			continue
		}
		stake := settings.Stake(st.FibonacciIndex)
		if stake.GreaterThan(settings.TableLimitSector) {
			skipped = append(skipped, model.SkippedBet{
				Sector:         st.Sector,
				FibonacciIndex: st.FibonacciIndex,
				Stake:          stake,
				TableLimit:     settings.TableLimitSector,
			})
			continue
		}
		bets = append(bets, model.BetPlacement{
			Kind:    model.BetKindSector,
			Sector:  st.Sector,
			Amount:  stake,
			Numbers: servModel.SectorMembers(st.Sector),
		})
	}

	for _, kind := range settings.ActiveCoverage.Kinds() {
		bets = append(bets, model.BetPlacement{
			Kind:     model.BetKindCoverage,
			Coverage: kind,
			Amount:   settings.BaseUnitCoverage,
			Numbers:  servModel.CoverageMembers(kind),
		})
	}

	return bets, skipped
}

// ProposeBets Ставки на следующий спин для текущей сессии
func (s *serv) ProposeBets() model.Proposal {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.proposal()
}

func (s *serv) proposal() model.Proposal {
	bets, skipped := ProposeBets(s.progressionRepo.States(), s.sessionRepo.Settings())
	return model.Proposal{Bets: bets, Skipped: skipped}
}
