package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"

	"roulette_backend/internal/app"
	"roulette_backend/internal/config"
	"roulette_backend/internal/config/env"
	"roulette_backend/internal/model"
	"roulette_backend/internal/service"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"go.uber.org/zap"
)

const helpText = `0-36   record the drawn number
u      undo last spin
r      reset session
s      session statistics
h      heatmap
c      coverage
w N    worst case for N consecutive losses
e      export session (json + csv) to the current directory
a      archive session to postgres
q      quit`

func main() {
	configFlag := flag.String("config", "config.yaml", "strategy config file")
	flag.Parse()

	_ = config.Load(".env")

	strategy, err := env.NewStrategyConfigFromYAML(*configFlag)
	if err != nil {
		pterm.Error.Printfln("config: %v", err)
		os.Exit(1)
	}

	sp := app.NewServiceProvider(
		app.WithLogger(zap.NewNop()),
		app.WithStrategyConfig(strategy),
	)
	defer sp.Close()

	ctx := context.Background()
	serv := sp.RouletteService(ctx)

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Trans", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("versale", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}
	pterm.Info.Printfln("Session %s, bankroll %s", serv.Session().ID, serv.Session().Balance.StringFixed(2))
	pterm.Println(helpText)

	for {
		printProposal(serv.ProposeBets(), serv.Session())

		input, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Number or command").
			Show()
		input = strings.TrimSpace(input)
		pterm.Println()

		if input == "q" {
			return
		}
		if err := handle(ctx, serv, input); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
}

func handle(ctx context.Context, serv service.RouletteService, input string) error {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "u":
		res, err := serv.UndoLastSpin()
		if err != nil {
			return err
		}
		pterm.Success.Printfln("Undid spin %d, balance back to %s", int(res.Number), res.Balance.Sub(res.NetResult).StringFixed(2))
	case "r":
		s := serv.ResetSession()
		pterm.Success.Printfln("New session %s", s.ID)
	case "s":
		printStats(serv.CurrentStats())
	case "h":
		printHeatmap(serv.Heatmap())
	case "c":
		printCoverage(serv.Coverage())
	case "w":
		if len(fields) != 2 {
			return errors.New("usage: w N")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		wc, err := serv.WorstCase(n)
		if err != nil {
			return err
		}
		printWorstCase(wc)
	case "e":
		return export(serv)
	case "a":
		if err := serv.Archive(ctx); err != nil {
			return err
		}
		pterm.Success.Println("Session archived")
	case "?", "help":
		pterm.Println(helpText)
	default:
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return errors.New("unknown command, type help")
		}
		res, err := serv.RecordSpin(model.Number(n))
		if err != nil {
			return err
		}
		printSpin(res)
	}
	return nil
}

func export(serv service.RouletteService) error {
	id := serv.Session().ID

	js, err := serv.ExportJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile("session-"+id+".json", js, 0o644); err != nil {
		return err
	}

	csv, err := serv.ExportCSV()
	if err != nil {
		return err
	}
	if err := os.WriteFile("session-"+id+".csv", csv, 0o644); err != nil {
		return err
	}

	pterm.Success.Printfln("Exported session-%s.json and session-%s.csv", id, id)
	return nil
}
