package roulette

import (
	"roulette_backend/internal/model"

	"go.uber.org/zap"
)

// UndoLastSpin снимает последний спин: баланс = баланс спина - его результат,
// прогрессия возвращается к снимку, сохраненному перед спином
func (s *serv) UndoLastSpin() (model.SpinResult, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	rec, ok := s.historyRepo.Pop()
	if !ok {
		return model.SpinResult{}, model.ErrEmptyHistory
	}

	settings := s.sessionRepo.Settings()
	balance := rec.Result.Balance.Sub(rec.Result.NetResult)

	s.progressionRepo.Restore(rec.StatesBefore)
	// Настройки могли поменяться после спина
	s.progressionRepo.SetActive(settings.ActiveSectorSet())
	s.progressionRepo.ClampIndex(settings.MaxFibonacciStep)
	s.sessionRepo.SetBalance(balance)

	s.metrics.Undo.Inc()
	s.metrics.Balance.Set(balance.InexactFloat64())
	s.log.Info("spin undone",
		zap.Int("number", int(rec.Result.Number)),
		zap.String("balance", balance.StringFixed(2)),
	)

	return rec.Result, nil
}

// ResetSession начинает новую сессию с текущими настройками
func (s *serv) ResetSession() model.SessionState {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	prev := s.sessionRepo.Info()
	info := s.startSession()

	s.metrics.Resets.Inc()
	s.log.Info("session reset",
		zap.String("previous_session_id", prev.ID),
		zap.String("session_id", info.ID),
		zap.String("bankroll", info.InitialBankroll.StringFixed(2)),
	)

	return s.Session()
}
