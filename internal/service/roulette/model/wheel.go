package model

import (
	"fmt"

	"roulette_backend/internal/model"
)

// redNumbers Красные номера европейского колеса
var redNumbers = map[model.Number]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// coverageMembers Номера покрывающих ставок в порядке расположения на колесе
var coverageMembers = map[model.CoverageKind][]model.Number{
	model.ZeroSpiel: {12, 35, 3, 26, 0, 32, 15},
	model.Orphelins: {1, 20, 14, 31, 9, 17, 34, 6},
}

// SectorOf возвращает трансверсаль номера. Для 0 - SectorNone
func SectorOf(n model.Number) (model.Sector, error) {
	if err := n.Validate(); err != nil {
		return model.SectorNone, err
	}
	if n == 0 {
		return model.SectorNone, nil
	}
	return model.Sectors[(int(n)-1)/6], nil
}

// SectorMembers возвращает шесть номеров трансверсали по возрастанию
func SectorMembers(sector model.Sector) []model.Number {
	i := sector.Index()
	if i < 0 {
		return nil
	}
	numbers := make([]model.Number, 0, 6)
	for n := i*6 + 1; n <= i*6+6; n++ {
		numbers = append(numbers, model.Number(n))
	}
	return numbers
}

// ColorOf возвращает цвет ячейки
func ColorOf(n model.Number) (model.Color, error) {
	if err := n.Validate(); err != nil {
		return "", err
	}
	switch {
	case n == 0:
		return model.Green, nil
	case redNumbers[n]:
		return model.Red, nil
	default:
		return model.Black, nil
	}
}

// CoverageMembers возвращает копию набора номеров покрывающей ставки
func CoverageMembers(kind model.CoverageKind) []model.Number {
	return append([]model.Number(nil), coverageMembers[kind]...)
}

// IsCovered проверяет, входит ли номер в покрывающую ставку
func IsCovered(kind model.CoverageKind, n model.Number) bool {
	for _, m := range coverageMembers[kind] {
		if m == n {
			return true
		}
	}
	return false
}

// CoverageOverlaps возвращает активные покрывающие ставки, в которые входит номер
func CoverageOverlaps(n model.Number, active model.ActiveCoverage) ([]model.CoverageKind, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	var kinds []model.CoverageKind
	for _, kind := range active.Kinds() {
		if IsCovered(kind, n) {
			kinds = append(kinds, kind)
		}
	}
	return kinds, nil
}

// BetNumbers номера, закрытые ставкой
func BetNumbers(kind model.BetKind, sector model.Sector, coverage model.CoverageKind) ([]model.Number, error) {
	switch kind {
	case model.BetKindSector:
		if sector.Index() < 0 {
			return nil, fmt.Errorf("unknown sector %s", sector)
		}
		return SectorMembers(sector), nil
	case model.BetKindCoverage:
		if _, ok := coverageMembers[coverage]; !ok {
			return nil, fmt.Errorf("unknown coverage kind %s", coverage)
		}
		return CoverageMembers(coverage), nil
	}
	return nil, fmt.Errorf("unknown bet kind %q", kind)
}
