package roulette

import (
	"time"

	"github.com/shopspring/decimal"
)

type SpinRequest struct {
	Number *int `json:"number"` // Выпавший номер 0..36
}

type Bet struct {
	Type    string `json:"type"`   // sector | coverage
	Target  string `json:"target"` // LINE_31_36, ZERO_SPIEL
	Label   string `json:"label"`  // 31-36, Zero Spiel (Jeu 0)
	Amount  string `json:"amount"`
	Numbers []int  `json:"numbers"`
}

type SkippedBet struct {
	Sector         string `json:"sector"`
	Label          string `json:"label"`
	FibonacciIndex int    `json:"fibonacci_index"`
	Stake          string `json:"stake"`
	TableLimit     string `json:"table_limit"`
}

type ProposalResponse struct {
	Bets       []Bet        `json:"bets"`
	Skipped    []SkippedBet `json:"skipped"`
	TotalStake string       `json:"total_stake"`
}

type SpinResponse struct {
	Number      int          `json:"number"`
	Color       string       `json:"color"`
	WinningBets []Bet        `json:"winning_bets"`
	LosingBets  []Bet        `json:"losing_bets"`
	SkippedBets []SkippedBet `json:"skipped_bets"`
	TotalWon    string       `json:"total_won"`
	TotalLost   string       `json:"total_lost"`
	NetResult   string       `json:"net_result"`
	Balance     string       `json:"balance"` // Баланс после спина
}

type SessionResponse struct {
	SessionID       string    `json:"session_id"`
	StartTime       time.Time `json:"start_time"`
	InitialBankroll string    `json:"initial_bankroll"`
	Balance         string    `json:"balance"`
	Spins           int       `json:"spins"`
}

type ActiveCoverage struct {
	ZeroSpiel bool `json:"zero_spiel"`
	Orphelins bool `json:"orphelins"`
}

type SettingsResponse struct {
	BaseUnitSector    string         `json:"base_unit_sector"`
	BaseUnitCoverage  string         `json:"base_unit_coverage"`
	FibonacciSequence []int64        `json:"fibonacci_sequence"`
	MaxFibonacciStep  int            `json:"max_fibonacci_step"`
	TableLimitSector  string         `json:"table_limit_sector"`
	ActiveCoverage    ActiveCoverage `json:"active_coverage"`
	ActiveSectors     []string       `json:"active_sectors"`
	InitialBankroll   string         `json:"initial_bankroll"`
	SectorPayout      string         `json:"sector_payout"`
	CoveragePayout    string         `json:"coverage_payout"`
}

// SettingsRequest Частичное обновление: отсутствующие поля не меняются.
// Суммы принимаются и числом, и строкой
type SettingsRequest struct {
	BaseUnitSector    *decimal.Decimal `json:"base_unit_sector"`
	BaseUnitCoverage  *decimal.Decimal `json:"base_unit_coverage"`
	FibonacciSequence []int64          `json:"fibonacci_sequence"`
	MaxFibonacciStep  *int             `json:"max_fibonacci_step"`
	TableLimitSector  *decimal.Decimal `json:"table_limit_sector"`
	ZeroSpiel         *bool            `json:"zero_spiel"`
	Orphelins         *bool            `json:"orphelins"`
	ActiveSectors     *[]string        `json:"active_sectors"`
	InitialBankroll   *decimal.Decimal `json:"initial_bankroll"`
	SectorPayout      *decimal.Decimal `json:"sector_payout"`
	CoveragePayout    *decimal.Decimal `json:"coverage_payout"`
}

type ProgressionState struct {
	Sector            string `json:"sector"`
	Label             string `json:"label"`
	FibonacciIndex    int    `json:"fibonacci_index"`
	CurrentStake      string `json:"current_stake"`
	Active            bool   `json:"active"`
	ConsecutiveLosses int    `json:"consecutive_losses"`
	TotalWins         int    `json:"total_wins"`
	TotalLosses       int    `json:"total_losses"`
}

type StatsResponse struct {
	TotalSpins          int          `json:"total_spins"`
	TotalWagered        string       `json:"total_wagered"`
	TotalWon            string       `json:"total_won"`
	TotalLost           string       `json:"total_lost"`
	NetProfit           string       `json:"net_profit"`
	HighestBet          string       `json:"highest_bet"`
	LongestLosingStreak int          `json:"longest_losing_streak"`
	CurrentStreak       int          `json:"current_streak"`
	ROI                 string       `json:"roi"`
	SkippedBets         int          `json:"skipped_bets"`
	PendingSkipped      []SkippedBet `json:"pending_skipped"`
	NextTotalStake      string       `json:"next_total_stake"`
	CoveragePercentage  string       `json:"coverage_percentage"`
}

type HeatmapEntry struct {
	Number            int     `json:"number"`
	HitCount          int     `json:"hit_count"`
	LastSeenRoundsAgo int     `json:"last_seen_rounds_ago"`
	Intensity         float64 `json:"intensity"`
	Color             string  `json:"color"`
}

type WorstCaseResponse struct {
	ConsecutiveLosses     int    `json:"consecutive_losses"`
	TotalLoss             string `json:"total_loss"`
	FinalBet              string `json:"final_bet"`
	FibonacciStepReached  int    `json:"fibonacci_step_reached"`
	WouldExceedTableLimit bool   `json:"would_exceed_table_limit"`
	WouldExceedBankroll   bool   `json:"would_exceed_bankroll"`
}

type CoverageResponse struct {
	CoveredNumbers     []int  `json:"covered_numbers"`
	CoveragePercentage string `json:"coverage_percentage"`
	Overlaps           []int  `json:"overlaps"`
}
