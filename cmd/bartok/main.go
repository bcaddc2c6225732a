package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/minaorangina/bartok/config"
	"github.com/minaorangina/bartok/deck"
	"github.com/minaorangina/bartok/engine"
	"github.com/minaorangina/bartok/game"
	"github.com/minaorangina/bartok/layout"
	"github.com/minaorangina/bartok/store"
	"github.com/sirupsen/logrus"
)

const resultsPollInterval = 20 * time.Millisecond

func main() {
	log := logrus.New()

	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		log.WithError(err).Fatal("could not load config")
	}
	log.SetLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout, log); err != nil && err != context.Canceled {
		log.WithError(err).Fatal("game failed")
	}
}

func run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer, log logrus.FieldLogger) error {
	opts, err := engineOpts(cfg, log)
	if err != nil {
		return err
	}

	ge, err := engine.NewGameEngine(opts)
	if err != nil {
		return err
	}

	games := store.NewInMemoryGameStore()
	if err := games.AddGame(ge); err != nil {
		return err
	}
	defer games.RemoveGame(ge.ID())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go ge.Listen(ctx)

	if err := ge.Start(ctx); err != nil {
		return err
	}

	if seat := opts.Layout.HumanSlot(); seat >= 0 {
		p := &engine.CLIPlayer{PlayerID: seat + 1, In: in, Out: out}
		if err := p.Play(ctx, ge, cfg.Rounds); err != nil {
			return err
		}
	} else if err := waitForRounds(ctx, ge, cfg.Rounds); err != nil {
		return err
	}

	results, err := ge.Results(ctx)
	if err != nil {
		return err
	}
	for _, r := range results {
		log.WithFields(logrus.Fields{
			"game_id": r.GameID,
			"round":   r.Round,
			"winner":  r.Winner,
			"turns":   r.Turns,
		}).Info("result")
	}
	return nil
}

func engineOpts(cfg config.Config, log logrus.FieldLogger) (engine.GameEngineOpts, error) {
	opts := engine.GameEngineOpts{
		Layout:           layout.Default(cfg.Players, cfg.HumanSlot),
		Definition:       deck.StandardDefinition(),
		NumStartingCards: cfg.StartingCards,
		Seed:             cfg.Seed,
		RestartDelay:     cfg.RestartDelay,
		AutoSettle:       true,
		Logger:           log,
	}

	if cfg.DeckFile != "" {
		f, err := os.Open(cfg.DeckFile)
		if err != nil {
			return opts, err
		}
		defer f.Close()
		if opts.Definition, err = deck.LoadDefinition(f); err != nil {
			return opts, fmt.Errorf("%s: %w", cfg.DeckFile, err)
		}
	}

	if cfg.LayoutFile != "" {
		f, err := os.Open(cfg.LayoutFile)
		if err != nil {
			return opts, err
		}
		defer f.Close()
		if opts.Layout, err = layout.Load(f); err != nil {
			return opts, fmt.Errorf("%s: %w", cfg.LayoutFile, err)
		}
	}

	rules, err := game.WithHouseRules(cfg.HouseRules...)
	if err != nil {
		return opts, err
	}
	opts.Rules = rules

	return opts, nil
}

// waitForRounds blocks until the engine has finished n games.
func waitForRounds(ctx context.Context, ge engine.GameEngine, n int) error {
	ticker := time.NewTicker(resultsPollInterval)
	defer ticker.Stop()

	for {
		results, err := ge.Results(ctx)
		if err != nil {
			return err
		}
		if len(results) >= n {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
