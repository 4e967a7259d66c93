package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vhristo/betty/internal/cli"
	"github.com/vhristo/betty/internal/config"
	"github.com/vhristo/betty/internal/game"
	"github.com/vhristo/betty/internal/infra/logging"
	"github.com/vhristo/betty/internal/rng"
	"github.com/vhristo/betty/internal/session"
	"github.com/vhristo/betty/pkg/envconf"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running betty: %v\n", err)
		//nolint:gocritic
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	out := &cli.ANSIPrinter{W: os.Stdout}

	cfg := new(config.Console)

	err := envconf.Load(cfg)
	if err != nil {
		out.Error(fmt.Sprintf("configuration missing or invalid: %v", err))
		return fmt.Errorf("init config: %w", err)
	}

	log := logging.SetupText(os.Stderr, cfg.LogLevel)

	settings, err := game.NewSettings(
		cfg.Game.MinBet, cfg.Game.MaxBet,
		cfg.Game.LossChance, cfg.Game.WinX2Chance, cfg.Game.WinX2ToX10Chance,
	)
	if err != nil {
		out.Error(fmt.Sprintf("invalid game settings: %v", err))
		return fmt.Errorf("game settings: %w", err)
	}

	src, err := newSource()
	if err != nil {
		return fmt.Errorf("random source: %w", err)
	}

	s := session.New(settings, src, cfg.StartingBalance, log)

	menu := cli.NewMenu(os.Stdin, out, s)

	err = menu.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			// interrupted at the prompt; not an error
			out.Info("")
			return nil
		}

		return fmt.Errorf("menu: %w", err)
	}

	return nil
}

func newSource() (rng.Source, error) {
	var seeds [2]uint64

	err := binary.Read(rand.Reader, binary.LittleEndian, &seeds)
	if err != nil {
		return nil, fmt.Errorf("seed prng: %w", err)
	}

	return rng.NewSeeded(seeds[0], seeds[1]), nil
}
