package roulette

import (
	"fmt"

	"roulette_backend/internal/model"

	"github.com/shopspring/decimal"
)

// CalcWorstCase Симуляция серии проигрышей с нулевого шага прогрессии по всем активным трансверсалям.
// Реальное состояние не меняется
func CalcWorstCase(consecutiveLosses, activeSectors int, settings model.Settings, balance decimal.Decimal) (model.WorstCaseScenario, error) {
	if consecutiveLosses < 0 {
		return model.WorstCaseScenario{}, fmt.Errorf("%w: %d", model.ErrInvalidLossCount, consecutiveLosses)
	}

	coverageStake := settings.BaseUnitCoverage.Mul(decimal.NewFromInt(int64(len(settings.ActiveCoverage.Kinds()))))
	sectors := decimal.NewFromInt(int64(activeSectors))

	totalLoss := decimal.Zero
	finalBet := decimal.Zero
	for i := 0; i < consecutiveLosses; i++ {
		betPerSector := settings.Stake(i)
		totalLoss = totalLoss.Add(betPerSector.Mul(sectors)).Add(coverageStake)
		finalBet = betPerSector
	}

	step := consecutiveLosses - 1
	if step > settings.MaxFibonacciStep {
		step = settings.MaxFibonacciStep
	}
	if step < 0 {
		step = 0
	}

	return model.WorstCaseScenario{
		ConsecutiveLosses:     consecutiveLosses,
		TotalLoss:             totalLoss,
		FinalBet:              finalBet,
		FibonacciStepReached:  step,
		WouldExceedTableLimit: finalBet.GreaterThan(settings.TableLimitSector),
		WouldExceedBankroll:   totalLoss.GreaterThan(balance),
	}, nil
}

func (s *serv) WorstCase(consecutiveLosses int) (model.WorstCaseScenario, error) {
	active := 0
	for _, st := range s.progressionRepo.States() {
		if st.Active {
			active++
		}
	}
	return CalcWorstCase(consecutiveLosses, active, s.sessionRepo.Settings(), s.sessionRepo.Balance())
}
