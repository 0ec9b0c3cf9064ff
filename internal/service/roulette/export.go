package roulette

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"roulette_backend/internal/model"

	"go.uber.org/zap"
)

var csvHeader = []string{"Spin", "Number", "Total Bet", "Total Won", "Net Result", "Balance"}

// export Снимок сессии на текущий момент
func (s *serv) export() model.SessionExport {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	info := s.sessionRepo.Info()
	balance := s.sessionRepo.Balance()
	history := s.historyRepo.List()

	return model.SessionExport{
		SessionID:       info.ID,
		StartTime:       info.StartTime,
		EndTime:         s.now(),
		Settings:        s.sessionRepo.Settings(),
		History:         history,
		FinalStats:      s.stats(),
		InitialBankroll: info.InitialBankroll,
		FinalBalance:    balance,
	}
}

// ExportJSON Выгрузка сессии: sessionId, startTime, endTime, settings, history, finalStats
func (s *serv) ExportJSON() ([]byte, error) {
	out, err := json.MarshalIndent(s.export(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	return out, nil
}

// ExportCSV Одна строка на спин, суммы с двумя знаками. Total Bet - сумма проигравших ставок спина
func (s *serv) ExportCSV() ([]byte, error) {
	history := s.historyRepo.List()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for i, spin := range history {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(int(spin.Number)),
			spin.TotalLost.StringFixed(2),
			spin.TotalWon.StringFixed(2),
			spin.NetResult.StringFixed(2),
			spin.Balance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Archive Сохраняет сессию в Postgres одной транзакцией
func (s *serv) Archive(ctx context.Context) error {
	if s.archiveRepo == nil || s.txManager == nil {
		return model.ErrArchiveDisabled
	}

	export := s.export()
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.archiveRepo.SaveSession(txCtx, export)
	})
	if err != nil {
		s.log.Error("archive session failed", zap.String("session_id", export.SessionID), zap.Error(err))
		return fmt.Errorf("archive session %s: %w", export.SessionID, err)
	}

	s.metrics.Archived.Inc()
	s.log.Info("session archived",
		zap.String("session_id", export.SessionID),
		zap.Int("spins", len(export.History)),
	)
	return nil
}
