package roulette

import (
	"roulette_backend/internal/model"

	"go.uber.org/zap"
)

// RecordSpin выполняет спин по выпавшему номеру.
// Неверный номер отклоняется до любых изменений; иначе история, прогрессия и баланс обновляются вместе
func (s *serv) RecordSpin(number model.Number) (model.SpinResult, error) {
	if err := number.Validate(); err != nil {
		return model.SpinResult{}, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	settings := s.sessionRepo.Settings()
	statesBefore := s.progressionRepo.States()

	// Ставки, которые стояли перед этим спином
	bets, skipped := ProposeBets(statesBefore, settings)

	res, outcomes, err := Evaluate(number, bets, settings)
	if err != nil {
		return model.SpinResult{}, err
	}
	res.SkippedBets = skipped
	res.Balance = s.sessionRepo.Balance().Add(res.NetResult)

	s.historyRepo.Append(model.SpinRecord{
		Result:       res,
		StatesBefore: statesBefore,
	})
	s.progressionRepo.Apply(outcomes, settings.MaxFibonacciStep)
	s.sessionRepo.SetBalance(res.Balance)

	s.observeSpin(res)
	return res, nil
}

func (s *serv) observeSpin(res model.SpinResult) {
	outcome := "even"
	switch {
	case res.NetResult.IsPositive():
		outcome = "win"
	case res.NetResult.IsNegative():
		outcome = "loss"
	}
	s.metrics.Spins.WithLabelValues(outcome).Inc()
	s.metrics.Balance.Set(res.Balance.InexactFloat64())

	for _, sk := range res.SkippedBets {
		s.metrics.BetsSkipped.WithLabelValues(sk.Sector.String()).Inc()
		s.log.Warn("sector bet skipped: stake above table limit",
			zap.String("sector", sk.Sector.String()),
			zap.Int("fibonacci_index", sk.FibonacciIndex),
			zap.String("stake", sk.Stake.String()),
			zap.String("table_limit", sk.TableLimit.String()),
		)
	}

	s.log.Info("spin recorded",
		zap.Int("number", int(res.Number)),
		zap.Int("winning_bets", len(res.WinningBets)),
		zap.Int("losing_bets", len(res.LosingBets)),
		zap.String("net", res.NetResult.StringFixed(2)),
		zap.String("balance", res.Balance.StringFixed(2)),
	)
}
