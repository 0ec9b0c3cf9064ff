package model

import (
	"roulette_backend/internal/model"

	"github.com/shopspring/decimal"
)

const (
	// SectorPayout Выплата six line 5:1
	SectorPayout = 5
	// CoveragePayout Упрощенная средняя выплата Zero Spiel / Orphelins
	CoveragePayout = 17
	// DefaultMaxFibonacciStep Шаг, дальше которого прогрессия не растет
	DefaultMaxFibonacciStep = 10
)

// DefaultFibonacciSequence Таблица множителей прогрессии
var DefaultFibonacciSequence = []int64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 377, 610, 987, 1597}

// DefaultSettings Настройки стратегии по умолчанию
func DefaultSettings() model.Settings {
	return model.Settings{
		BaseUnitSector:    decimal.NewFromInt(1),
		BaseUnitCoverage:  decimal.RequireFromString("0.5"),
		FibonacciSequence: append([]int64(nil), DefaultFibonacciSequence...),
		MaxFibonacciStep:  DefaultMaxFibonacciStep,
		TableLimitSector:  decimal.NewFromInt(500),
		ActiveCoverage: model.ActiveCoverage{
			ZeroSpiel: true,
			Orphelins: false,
		},
		ActiveSectors:   append([]model.Sector(nil), model.Sectors[:]...),
		InitialBankroll: decimal.NewFromInt(1000),
		SectorPayout:    decimal.NewFromInt(SectorPayout),
		CoveragePayout:  decimal.NewFromInt(CoveragePayout),
	}
}
