package converter

import (
	"fmt"

	dto "roulette_backend/internal/api/dto/roulette"
	"roulette_backend/internal/model"
	servModel "roulette_backend/internal/service/roulette/model"

	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func toNumbers(numbers []model.Number) []int {
	result := make([]int, len(numbers))
	for i, n := range numbers {
		result[i] = int(n)
	}
	return result
}

func toBets(bets []model.BetPlacement) []dto.Bet {
	result := make([]dto.Bet, len(bets))
	for i, b := range bets {
		label := b.Sector.Label()
		if b.Kind == model.BetKindCoverage {
			label = b.Coverage.Label()
		}
		result[i] = dto.Bet{
			Type:    string(b.Kind),
			Target:  b.Target(),
			Label:   label,
			Amount:  money(b.Amount),
			Numbers: toNumbers(b.Numbers),
		}
	}
	return result
}

func toSkipped(skipped []model.SkippedBet) []dto.SkippedBet {
	result := make([]dto.SkippedBet, len(skipped))
	for i, s := range skipped {
		result[i] = dto.SkippedBet{
			Sector:         s.Sector.String(),
			Label:          s.Sector.Label(),
			FibonacciIndex: s.FibonacciIndex,
			Stake:          money(s.Stake),
			TableLimit:     money(s.TableLimit),
		}
	}
	return result
}

func ToProposalResponse(p model.Proposal) dto.ProposalResponse {
	return dto.ProposalResponse{
		Bets:       toBets(p.Bets),
		Skipped:    toSkipped(p.Skipped),
		TotalStake: money(p.TotalStake()),
	}
}

func ToNumber(req dto.SpinRequest) (model.Number, error) {
	if req.Number == nil {
		return 0, fmt.Errorf("%w: number is required", model.ErrInvalidNumber)
	}
	return model.Number(*req.Number), nil
}

func ToSpinResponse(res model.SpinResult) dto.SpinResponse {
	color, _ := servModel.ColorOf(res.Number)
	return dto.SpinResponse{
		Number:      int(res.Number),
		Color:       string(color),
		WinningBets: toBets(res.WinningBets),
		LosingBets:  toBets(res.LosingBets),
		SkippedBets: toSkipped(res.SkippedBets),
		TotalWon:    money(res.TotalWon),
		TotalLost:   money(res.TotalLost),
		NetResult:   money(res.NetResult),
		Balance:     money(res.Balance),
	}
}

func ToSessionResponse(s model.SessionState) dto.SessionResponse {
	return dto.SessionResponse{
		SessionID:       s.ID,
		StartTime:       s.StartTime,
		InitialBankroll: money(s.InitialBankroll),
		Balance:         money(s.Balance),
		Spins:           s.Spins,
	}
}

func ToSettingsResponse(s model.Settings) dto.SettingsResponse {
	sectors := make([]string, len(s.ActiveSectors))
	for i, sector := range s.ActiveSectors {
		sectors[i] = sector.String()
	}
	return dto.SettingsResponse{
		BaseUnitSector:    s.BaseUnitSector.String(),
		BaseUnitCoverage:  s.BaseUnitCoverage.String(),
		FibonacciSequence: s.FibonacciSequence,
		MaxFibonacciStep:  s.MaxFibonacciStep,
		TableLimitSector:  s.TableLimitSector.String(),
		ActiveCoverage: dto.ActiveCoverage{
			ZeroSpiel: s.ActiveCoverage.ZeroSpiel,
			Orphelins: s.ActiveCoverage.Orphelins,
		},
		ActiveSectors:   sectors,
		InitialBankroll: s.InitialBankroll.String(),
		SectorPayout:    s.SectorPayout.String(),
		CoveragePayout:  s.CoveragePayout.String(),
	}
}

func ToSettingsPatch(req dto.SettingsRequest) (model.SettingsPatch, error) {
	patch := model.SettingsPatch{
		BaseUnitSector:    req.BaseUnitSector,
		BaseUnitCoverage:  req.BaseUnitCoverage,
		FibonacciSequence: req.FibonacciSequence,
		MaxFibonacciStep:  req.MaxFibonacciStep,
		TableLimitSector:  req.TableLimitSector,
		ZeroSpiel:         req.ZeroSpiel,
		Orphelins:         req.Orphelins,
		InitialBankroll:   req.InitialBankroll,
		SectorPayout:      req.SectorPayout,
		CoveragePayout:    req.CoveragePayout,
	}

	if req.ActiveSectors != nil {
		sectors := make([]model.Sector, 0, len(*req.ActiveSectors))
		for _, name := range *req.ActiveSectors {
			s, err := model.ParseSector(name)
			if err != nil {
				return model.SettingsPatch{}, fmt.Errorf("%w: %v", model.ErrInvalidSettings, err)
			}
			sectors = append(sectors, s)
		}
		patch.ActiveSectors = &sectors
	}

	return patch, nil
}

func ToProgressionResponse(states [6]model.ProgressionState, settings model.Settings) []dto.ProgressionState {
	result := make([]dto.ProgressionState, len(states))
	for i, st := range states {
		result[i] = dto.ProgressionState{
			Sector:            st.Sector.String(),
			Label:             st.Sector.Label(),
			FibonacciIndex:    st.FibonacciIndex,
			CurrentStake:      money(settings.Stake(st.FibonacciIndex)),
			Active:            st.Active,
			ConsecutiveLosses: st.ConsecutiveLosses,
			TotalWins:         st.TotalWins,
			TotalLosses:       st.TotalLosses,
		}
	}
	return result
}

func ToStatsResponse(s model.SessionStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalSpins:          s.TotalSpins,
		TotalWagered:        money(s.TotalWagered),
		TotalWon:            money(s.TotalWon),
		TotalLost:           money(s.TotalLost),
		NetProfit:           money(s.NetProfit),
		HighestBet:          money(s.HighestBet),
		LongestLosingStreak: s.LongestLosingStreak,
		CurrentStreak:       s.CurrentStreak,
		ROI:                 money(s.ROI),
		SkippedBets:         s.SkippedBets,
		PendingSkipped:      toSkipped(s.PendingSkipped),
		NextTotalStake:      money(s.NextTotalStake),
		CoveragePercentage:  money(s.CoveragePercentage),
	}
}

func ToHeatmapResponse(entries []model.HeatmapEntry) []dto.HeatmapEntry {
	result := make([]dto.HeatmapEntry, len(entries))
	for i, e := range entries {
		result[i] = dto.HeatmapEntry{
			Number:            int(e.Number),
			HitCount:          e.HitCount,
			LastSeenRoundsAgo: e.LastSeenRoundsAgo,
			Intensity:         e.Intensity,
			Color:             string(e.Color),
		}
	}
	return result
}

func ToWorstCaseResponse(w model.WorstCaseScenario) dto.WorstCaseResponse {
	return dto.WorstCaseResponse{
		ConsecutiveLosses:     w.ConsecutiveLosses,
		TotalLoss:             money(w.TotalLoss),
		FinalBet:              money(w.FinalBet),
		FibonacciStepReached:  w.FibonacciStepReached,
		WouldExceedTableLimit: w.WouldExceedTableLimit,
		WouldExceedBankroll:   w.WouldExceedBankroll,
	}
}

func ToCoverageResponse(c model.CoverageInfo) dto.CoverageResponse {
	return dto.CoverageResponse{
		CoveredNumbers:     toNumbers(c.CoveredNumbers),
		CoveragePercentage: money(c.CoveragePercentage),
		Overlaps:           toNumbers(c.Overlaps),
	}
}
