package model

import "fmt"

// Number номер ячейки европейского колеса (0..36)
type Number int

const (
	MinNumber Number = 0
	MaxNumber Number = 36
	// NumbersCount Всего ячеек на колесе
	NumbersCount = 37
)

// Validate проверяет, что номер лежит в диапазоне колеса
func (n Number) Validate() error {
	if n < MinNumber || n > MaxNumber {
		return fmt.Errorf("%w: %d is outside [%d,%d]", ErrInvalidNumber, int(n), MinNumber, MaxNumber)
	}
	return nil
}

type Color string

const (
	Red   Color = "red"
	Black Color = "black"
	Green Color = "green"
)

// Sector Трансверсаль (six line). Нулевое значение - SectorNone, сектор числа 0
type Sector int

const (
	SectorNone Sector = iota
	Line1to6
	Line7to12
	Line13to18
	Line19to24
	Line25to30
	Line31to36
)

// Sectors Канонический порядок трансверсалей
var Sectors = [6]Sector{Line1to6, Line7to12, Line13to18, Line19to24, Line25to30, Line31to36}

var sectorNames = map[Sector]string{
	SectorNone: "NONE",
	Line1to6:   "LINE_1_6",
	Line7to12:  "LINE_7_12",
	Line13to18: "LINE_13_18",
	Line19to24: "LINE_19_24",
	Line25to30: "LINE_25_30",
	Line31to36: "LINE_31_36",
}

var sectorLabels = map[Sector]string{
	Line1to6:   "1-6",
	Line7to12:  "7-12",
	Line13to18: "13-18",
	Line19to24: "19-24",
	Line25to30: "25-30",
	Line31to36: "31-36",
}

func (s Sector) String() string {
	if name, ok := sectorNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Sector(%d)", int(s))
}

// Label Короткая подпись для интерфейса, например "31-36"
func (s Sector) Label() string {
	return sectorLabels[s]
}

// Index позиция сектора в Sectors, -1 для SectorNone и неизвестных значений
func (s Sector) Index() int {
	if s < Line1to6 || s > Line31to36 {
		return -1
	}
	return int(s) - 1
}

func (s Sector) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Sector) UnmarshalText(b []byte) error {
	parsed, err := ParseSector(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSector разбирает имя вида LINE_31_36
func ParseSector(name string) (Sector, error) {
	for _, s := range Sectors {
		if sectorNames[s] == name {
			return s, nil
		}
	}
	if name == sectorNames[SectorNone] {
		return SectorNone, nil
	}
	return SectorNone, fmt.Errorf("unknown sector %q", name)
}

// CoverageKind Покрывающая ставка с фиксированным набором чисел
type CoverageKind int

const (
	CoverageNone CoverageKind = iota
	ZeroSpiel
	Orphelins
)

// CoverageKinds Канонический порядок покрывающих ставок
var CoverageKinds = [2]CoverageKind{ZeroSpiel, Orphelins}

var coverageNames = map[CoverageKind]string{
	CoverageNone: "NONE",
	ZeroSpiel:    "ZERO_SPIEL",
	Orphelins:    "ORPHELINS",
}

var coverageLabels = map[CoverageKind]string{
	ZeroSpiel: "Zero Spiel (Jeu 0)",
	Orphelins: "Orphelins",
}

func (c CoverageKind) String() string {
	if name, ok := coverageNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CoverageKind(%d)", int(c))
}

func (c CoverageKind) Label() string {
	return coverageLabels[c]
}

func (c CoverageKind) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *CoverageKind) UnmarshalText(b []byte) error {
	for _, k := range CoverageKinds {
		if coverageNames[k] == string(b) {
			*c = k
			return nil
		}
	}
	return fmt.Errorf("unknown coverage kind %q", string(b))
}
