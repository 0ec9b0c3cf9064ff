package main

import (
	"fmt"
	"strconv"
	"strings"

	"roulette_backend/internal/model"
	servModel "roulette_backend/internal/service/roulette/model"

	"github.com/pterm/pterm"
)

func betLabel(b model.BetPlacement) string {
	if b.Kind == model.BetKindCoverage {
		return b.Coverage.Label()
	}
	return b.Sector.Label()
}

func colored(n model.Number) string {
	color, _ := servModel.ColorOf(n)
	s := strconv.Itoa(int(n))
	switch color {
	case model.Red:
		return pterm.BgRed.Sprint(" " + s + " ")
	case model.Green:
		return pterm.BgGreen.Sprint(" " + s + " ")
	default:
		return pterm.BgBlack.Sprint(" " + s + " ")
	}
}

// printProposal Таблица ставок на следующий спин
func printProposal(p model.Proposal, session model.SessionState) {
	data := pterm.TableData{{"Bet", "Type", "Stake"}}
	for _, b := range p.Bets {
		data = append(data, []string{betLabel(b), string(b.Kind), b.Amount.StringFixed(2)})
	}
	for _, sk := range p.Skipped {
		data = append(data, []string{
			pterm.LightRed(sk.Sector.Label()),
			"skipped",
			pterm.LightRed(fmt.Sprintf("%s > %s", sk.Stake.StringFixed(2), sk.TableLimit.StringFixed(2))),
		})
	}

	pterm.DefaultSection.Printfln("Next bets: %s total, balance %s", p.TotalStake().StringFixed(2), session.Balance.StringFixed(2))
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printSpin(res model.SpinResult) {
	var sb strings.Builder
	for _, b := range res.WinningBets {
		sb.WriteString(pterm.LightGreen("won  ") + betLabel(b) + "\n")
	}
	for _, b := range res.LosingBets {
		sb.WriteString(pterm.LightRed("lost ") + betLabel(b) + "\n")
	}
	sb.WriteString(fmt.Sprintf("\nNet %s, balance %s", res.NetResult.StringFixed(2), res.Balance.StringFixed(2)))

	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	pbox.WithTitle("|SPIN " + colored(res.Number) + "|").WithTitleTopCenter().Println(sb.String())
}

func printStats(s model.SessionStats) {
	data := pterm.TableData{
		{"Spins", strconv.Itoa(s.TotalSpins)},
		{"Wagered", s.TotalWagered.StringFixed(2)},
		{"Won", s.TotalWon.StringFixed(2)},
		{"Net profit", s.NetProfit.StringFixed(2)},
		{"ROI %", s.ROI.StringFixed(2)},
		{"Highest bet", s.HighestBet.StringFixed(2)},
		{"Longest losing streak", strconv.Itoa(s.LongestLosingStreak)},
		{"Current streak", strconv.Itoa(s.CurrentStreak)},
		{"Skipped bets", strconv.Itoa(s.SkippedBets)},
		{"Next total stake", s.NextTotalStake.StringFixed(2)},
		{"Coverage %", s.CoveragePercentage.StringFixed(2)},
	}
	_ = pterm.DefaultTable.WithData(data).Render()
}

func printHeatmap(entries []model.HeatmapEntry) {
	data := pterm.TableData{{"Number", "Hits", "Last seen", "Intensity"}}
	for _, e := range entries {
		if e.HitCount == 0 {
			continue
		}
		data = append(data, []string{
			colored(e.Number),
			strconv.Itoa(e.HitCount),
			strconv.Itoa(e.LastSeenRoundsAgo),
			fmt.Sprintf("%.2f", e.Intensity),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printCoverage(c model.CoverageInfo) {
	nums := make([]string, len(c.CoveredNumbers))
	for i, n := range c.CoveredNumbers {
		nums[i] = strconv.Itoa(int(n))
	}
	overlaps := make([]string, len(c.Overlaps))
	for i, n := range c.Overlaps {
		overlaps[i] = strconv.Itoa(int(n))
	}
	pterm.Info.Printfln("Covered %s%% of the wheel: %s", c.CoveragePercentage.StringFixed(2), strings.Join(nums, " "))
	pterm.Info.Printfln("Overlaps: %s", strings.Join(overlaps, " "))
}

func printWorstCase(w model.WorstCaseScenario) {
	data := pterm.TableData{
		{"Consecutive losses", strconv.Itoa(w.ConsecutiveLosses)},
		{"Total loss", w.TotalLoss.StringFixed(2)},
		{"Final bet per sector", w.FinalBet.StringFixed(2)},
		{"Fibonacci step", strconv.Itoa(w.FibonacciStepReached)},
	}
	_ = pterm.DefaultTable.WithData(data).Render()
	if w.WouldExceedTableLimit {
		pterm.Warning.Println("Final bet exceeds the table limit")
	}
	if w.WouldExceedBankroll {
		pterm.Warning.Println("Total loss exceeds the balance")
	}
}
