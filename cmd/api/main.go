package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/vhristo/betty/internal/api"
	"github.com/vhristo/betty/internal/config"
	"github.com/vhristo/betty/internal/game"
	"github.com/vhristo/betty/internal/infra/logging"
	"github.com/vhristo/betty/internal/rng"
	"github.com/vhristo/betty/internal/session"
	"github.com/vhristo/betty/pkg/envconf"
	"github.com/vhristo/betty/pkg/shutdownqueue"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running api: %v\n", err)
		//nolint:gocritic
		os.Exit(1)
	}
}

func run(ctx context.Context) (retErr error) {
	cfg := new(config.API)

	err := envconf.Load(cfg)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	log := logging.SetupJSON(cfg.LogLevel)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		serr := shutdownqueue.Shutdown(shutdownCtx)
		if serr != nil {
			retErr = errors.Join(retErr, serr)
		}
	}()

	settings, err := game.NewSettings(
		cfg.Game.MinBet, cfg.Game.MaxBet,
		cfg.Game.LossChance, cfg.Game.WinX2Chance, cfg.Game.WinX2ToX10Chance,
	)
	if err != nil {
		return fmt.Errorf("game settings: %w", err)
	}

	// Each session gets its own provably fair source; the session id is
	// reused as the client seed.
	newSource := func() rng.Source {
		serverSeed, serr := rng.NewServerSeed()
		if serr != nil {
			// crypto/rand failing means the process is in no shape to
			// serve; fall back to the commitment-less seeded source.
			log.Error("server seed generation failed", "error", serr)
			return rng.NewSeeded(uint64(os.Getpid()), 0)
		}

		return rng.NewProvablyFair(serverSeed, uuid.NewString())
	}

	mgr := session.NewManager(settings, newSource, log)

	// --- HTTP server ---
	srv := api.NewServer(cfg.Port, mgr)

	// Register HTTP server graceful shutdown
	shutdownqueue.Add(func(c context.Context) error {
		slog.Info("Shut down server")

		err := srv.Shutdown(c)
		if err != nil {
			return fmt.Errorf("shutdown srv: %w", err)
		}

		return nil
	})

	// Run server
	errCh := make(chan error, 1)

	go func() {
		serr := srv.ListenAndServe()
		// http.ErrServerClosed is the normal path during Shutdown
		if serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
			return
		}

		errCh <- nil
	}()

	slog.Info("API started", "port", cfg.Port)

	// --- Wait until either context cancels or server errors out ---
	select {
	case <-ctx.Done():
		// graceful path; deferred shutdownqueue.Shutdown will run
		return nil
	case serr := <-errCh:
		if serr != nil {
			return fmt.Errorf("server error: %w", serr)
		}

		return nil
	}
}
