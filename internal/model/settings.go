package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ActiveCoverage Какие покрывающие ставки сейчас играются
type ActiveCoverage struct {
	ZeroSpiel bool `json:"zeroSpiel" yaml:"zero_spiel"`
	Orphelins bool `json:"orphelins" yaml:"orphelins"`
}

// Kinds возвращает включенные ставки в каноническом порядке
func (a ActiveCoverage) Kinds() []CoverageKind {
	kinds := make([]CoverageKind, 0, len(CoverageKinds))
	if a.ZeroSpiel {
		kinds = append(kinds, ZeroSpiel)
	}
	if a.Orphelins {
		kinds = append(kinds, Orphelins)
	}
	return kinds
}

// Settings Параметры стратегии. Во время расчета спина не меняются
type Settings struct {
	BaseUnitSector    decimal.Decimal `json:"baseUnitSector"`
	BaseUnitCoverage  decimal.Decimal `json:"baseUnitCoverage"`
	FibonacciSequence []int64         `json:"fibonacciSequence"`
	MaxFibonacciStep  int             `json:"maxFibonacciStep"`
	TableLimitSector  decimal.Decimal `json:"tableLimitSector"`
	ActiveCoverage    ActiveCoverage  `json:"activeCoverage"`
	ActiveSectors     []Sector        `json:"activeSectors"`
	InitialBankroll   decimal.Decimal `json:"initialBankroll"`
	// Выплата six line 5:1
	SectorPayout decimal.Decimal `json:"sectorPayout"`
	// Упрощенная средняя выплата покрывающей ставки
	CoveragePayout decimal.Decimal `json:"coveragePayout"`
}

// IsSectorActive проверяет, играется ли трансверсаль
func (s Settings) IsSectorActive(sector Sector) bool {
	for _, a := range s.ActiveSectors {
		if a == sector {
			return true
		}
	}
	return false
}

// ActiveSectorSet флаги активности по индексу сектора
func (s Settings) ActiveSectorSet() [6]bool {
	var set [6]bool
	for _, a := range s.ActiveSectors {
		if i := a.Index(); i >= 0 {
			set[i] = true
		}
	}
	return set
}

// Stake возвращает ставку на трансверсаль для шага прогрессии (шаг ограничен MaxFibonacciStep)
func (s Settings) Stake(index int) decimal.Decimal {
	if index > s.MaxFibonacciStep {
		index = s.MaxFibonacciStep
	}
	if index < 0 {
		index = 0
	}
	return s.BaseUnitSector.Mul(decimal.NewFromInt(s.FibonacciSequence[index]))
}

// Clone глубокая копия (слайсы не разделяются)
func (s Settings) Clone() Settings {
	out := s
	out.FibonacciSequence = append([]int64(nil), s.FibonacciSequence...)
	out.ActiveSectors = append([]Sector(nil), s.ActiveSectors...)
	return out
}

// Validate проверяет все ограничения и возвращает одну ошибку со всеми нарушениями
func (s Settings) Validate() error {
	var errs []string

	if s.BaseUnitSector.IsNegative() {
		errs = append(errs, "baseUnitSector must be >= 0")
	}
	if s.BaseUnitCoverage.IsNegative() {
		errs = append(errs, "baseUnitCoverage must be >= 0")
	}
	if s.TableLimitSector.IsNegative() {
		errs = append(errs, "tableLimitSector must be >= 0")
	}
	if s.InitialBankroll.IsNegative() {
		errs = append(errs, "initialBankroll must be >= 0")
	}
	if s.SectorPayout.IsNegative() {
		errs = append(errs, "sectorPayout must be >= 0")
	}
	if s.CoveragePayout.IsNegative() {
		errs = append(errs, "coveragePayout must be >= 0")
	}

	if len(s.FibonacciSequence) == 0 {
		errs = append(errs, "fibonacciSequence must not be empty")
	}
	for i, v := range s.FibonacciSequence {
		if v < 0 {
			errs = append(errs, fmt.Sprintf("fibonacciSequence[%d] must be >= 0", i))
		}
	}
	if s.MaxFibonacciStep < 0 {
		errs = append(errs, "maxFibonacciStep must be >= 0")
	} else if len(s.FibonacciSequence) > 0 && s.MaxFibonacciStep >= len(s.FibonacciSequence) {
		errs = append(errs, fmt.Sprintf("maxFibonacciStep must be < %d (length of fibonacciSequence)", len(s.FibonacciSequence)))
	}

	seen := make(map[Sector]bool, len(s.ActiveSectors))
	for _, a := range s.ActiveSectors {
		if a.Index() < 0 {
			errs = append(errs, fmt.Sprintf("activeSectors contains unknown sector %s", a))
			continue
		}
		if seen[a] {
			errs = append(errs, fmt.Sprintf("activeSectors contains %s twice", a))
		}
		seen[a] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSettings, strings.Join(errs, "; "))
	}
	return nil
}

// SettingsPatch Частичное обновление настроек. nil - поле не меняется
type SettingsPatch struct {
	BaseUnitSector    *decimal.Decimal
	BaseUnitCoverage  *decimal.Decimal
	FibonacciSequence []int64
	MaxFibonacciStep  *int
	TableLimitSector  *decimal.Decimal
	ZeroSpiel         *bool
	Orphelins         *bool
	ActiveSectors     *[]Sector
	InitialBankroll   *decimal.Decimal
	SectorPayout      *decimal.Decimal
	CoveragePayout    *decimal.Decimal
}

// Apply накладывает патч на копию настроек
func (p SettingsPatch) Apply(s Settings) Settings {
	out := s.Clone()

	if p.BaseUnitSector != nil {
		out.BaseUnitSector = *p.BaseUnitSector
	}
	if p.BaseUnitCoverage != nil {
		out.BaseUnitCoverage = *p.BaseUnitCoverage
	}
	if len(p.FibonacciSequence) > 0 {
		out.FibonacciSequence = append([]int64(nil), p.FibonacciSequence...)
	}
	if p.MaxFibonacciStep != nil {
		out.MaxFibonacciStep = *p.MaxFibonacciStep
	}
	if p.TableLimitSector != nil {
		out.TableLimitSector = *p.TableLimitSector
	}
	if p.ZeroSpiel != nil {
		out.ActiveCoverage.ZeroSpiel = *p.ZeroSpiel
	}
	if p.Orphelins != nil {
		out.ActiveCoverage.Orphelins = *p.Orphelins
	}
	if p.ActiveSectors != nil {
		out.ActiveSectors = append([]Sector(nil), (*p.ActiveSectors)...)
	}
	if p.InitialBankroll != nil {
		out.InitialBankroll = *p.InitialBankroll
	}
	if p.SectorPayout != nil {
		out.SectorPayout = *p.SectorPayout
	}
	if p.CoveragePayout != nil {
		out.CoveragePayout = *p.CoveragePayout
	}

	return out
}
