package service

import (
	"context"

	"roulette_backend/internal/model"
)

type RouletteService interface {
	// Ставки
	ProposeBets() model.Proposal
	RecordSpin(number model.Number) (model.SpinResult, error)
	UndoLastSpin() (model.SpinResult, error)
	ResetSession() model.SessionState

	// Настройки
	Settings() model.Settings
	UpdateSettings(patch model.SettingsPatch) (model.Settings, error)

	// Аналитика
	Session() model.SessionState
	History() []model.SpinResult
	ProgressionStates() [6]model.ProgressionState
	CurrentStats() model.SessionStats
	Heatmap() []model.HeatmapEntry
	WorstCase(consecutiveLosses int) (model.WorstCaseScenario, error)
	Coverage() model.CoverageInfo

	// Выгрузка
	ExportJSON() ([]byte, error)
	ExportCSV() ([]byte, error)
	Archive(ctx context.Context) error
}
