package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"squad-tactics/internal/archive"
	"squad-tactics/internal/config"
	"squad-tactics/internal/game"
	"squad-tactics/internal/logging"
	"squad-tactics/internal/scenario"

	"github.com/rs/zerolog"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a config file (yaml, json or toml)")
	scenarioPath := flag.String("scenario", "", "Scenario file to play; overrides the config")
	history := flag.Bool("history", false, "Print recent mission debriefs and exit")
	replay := flag.Uint("replay", 0, "Print the event log of the debrief with this id and exit")
	flag.Parse()

	if err := run(*cfgPath, *scenarioPath, *history, *replay); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath, scenarioPath string, history bool, replay uint) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if scenarioPath != "" {
		cfg.Scenario = scenarioPath
	}

	// The screen owns the terminal, so logs only go to a file.
	logger := zerolog.Nop()
	if cfg.LogFile != "" {
		l, f, err := logging.Open(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = l
	}

	var store *archive.Store
	if cfg.Archive.Enabled || history || replay != 0 {
		store, err = archive.Open(cfg.Archive.Path, logger)
		if err != nil {
			return err
		}
		defer store.Close()
	}
	if history {
		return printHistory(os.Stdout, store)
	}
	if replay != 0 {
		return printReplay(os.Stdout, store, replay)
	}

	r, err := cfg.Rules()
	if err != nil {
		return err
	}
	seed := cfg.MissionSeed()
	next, err := scenario.Source(cfg.Scenario, r, rand.New(rand.NewSource(seed)), logger)
	if err != nil {
		return err
	}
	logger.Info().Int64("seed", seed).Str("scenario", cfg.Scenario).Msg("starting")

	g, err := game.New(next, game.Options{
		Commander: os.Getenv("USER"),
		Seed:      seed,
		Archive:   store,
		Log:       logger,
	})
	if err != nil {
		return err
	}
	return g.Run()
}

func printHistory(out io.Writer, store *archive.Store) error {
	sum, err := store.Summarize()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d missions, %d victories, %d defeats\n", sum.Missions, sum.Victories, sum.Defeats)

	recent, err := store.Recent(10)
	if err != nil {
		return err
	}
	for _, d := range recent {
		fmt.Fprintf(out, "#%-4d %s  %-24s %-9s turns %-3d aliens %d/%d  lost %d/%d  acc %.0f%%  seed %d\n",
			d.ID, d.CreatedAt.Format("2006-01-02 15:04"), d.Mission, d.Outcome, d.Turns,
			d.AliensKilled, d.AliensDeployed, d.SoldiersLost, d.SoldiersDeployed,
			d.Accuracy()*100, d.Seed)
	}
	return nil
}

// printReplay lists the recorded event stream of one archived mission.
func printReplay(out io.Writer, store *archive.Store, id uint) error {
	d, err := store.Get(id)
	if err != nil {
		return err
	}
	events, err := d.Events()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "#%d %s (%s) commander %s, %d events\n", d.ID, d.Mission, d.Outcome, d.Commander, len(events))
	for _, e := range events {
		fmt.Fprintln(out, e)
	}
	return nil
}
