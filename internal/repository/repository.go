package repository

import (
	"context"
	"time"

	"roulette_backend/internal/model"

	"github.com/shopspring/decimal"
)

// ProgressionRepository Состояние прогрессии по шести трансверсалям
type ProgressionRepository interface {
	States() [6]model.ProgressionState
	Apply(outcomes []model.SectorOutcome, maxStep int)
	Reset(active [6]bool)
	SetActive(active [6]bool)
	ClampIndex(maxStep int)
	Restore(states [6]model.ProgressionState)
}

// HistoryRepository История спинов текущей сессии (только добавление в хвост и снятие с хвоста)
type HistoryRepository interface {
	Append(rec model.SpinRecord)
	Last() (model.SpinRecord, bool)
	Pop() (model.SpinRecord, bool)
	List() []model.SpinResult
	Len() int
	Clear()
}

// SessionRepository Метаданные, баланс и настройки сессии
type SessionRepository interface {
	Info() model.SessionInfo
	Start(id string, startTime time.Time, initialBankroll decimal.Decimal)
	Balance() decimal.Decimal
	SetBalance(balance decimal.Decimal)
	Settings() model.Settings
	SetSettings(settings model.Settings)
}

// ArchiveRepository Долговременное хранение завершенных сессий
type ArchiveRepository interface {
	SaveSession(ctx context.Context, export model.SessionExport) error
}
