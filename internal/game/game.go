// Package game maps one bet and one random draw to a win amount under a
// three-way partition of the probability space: loss, double, or an
// extended multiplier in [2.01, 10.00].
package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/vhristo/betty/internal/rng"
)

var ErrBetOutOfRange = errors.New("bet out of range")

var two = decimal.NewFromInt(2)

// Game is stateless per call; all state lives in the injected settings and
// random source.
type Game struct {
	settings Settings
	src      rng.Source
	log      *slog.Logger
}

func New(settings Settings, src rng.Source, log *slog.Logger) *Game {
	return &Game{settings: settings, src: src, log: log}
}

func (g *Game) Settings() Settings {
	return g.settings
}

// Play resolves one round for the given bet and returns the win amount;
// zero denotes a loss. The bet must be inside [MinBet, MaxBet]: violations
// fail before any random draw is consumed, and the caller is expected to
// refund the already-debited bet. Play never touches a wallet.
func (g *Game) Play(bet decimal.Decimal) (decimal.Decimal, error) {
	if bet.LessThan(g.settings.MinBet) || bet.GreaterThan(g.settings.MaxBet) {
		return decimal.Zero, fmt.Errorf("%w: bet must be between %s and %s",
			ErrBetOutOfRange, g.settings.MinBet.StringFixed(2), g.settings.MaxBet.StringFixed(2))
	}

	roll := g.src.Float64()

	switch {
	case roll < g.settings.LossChance:
		g.log.Debug("round lost", "roll", roll, "bet", bet.String())
		return decimal.Zero, nil

	case roll < g.settings.LossChance+g.settings.WinX2Chance:
		win := bet.Mul(two)
		g.log.Debug("round won x2", "roll", roll, "bet", bet.String(), "win", win.String())

		return win, nil

	default:
		// Multiplier in [2.01, 10.00] in 0.01 steps.
		n := g.src.IntInRange(201, 1000)
		multiplier := decimal.New(int64(n), -2)
		win := bet.Mul(multiplier)
		g.log.Debug("round won multiplier", "roll", roll, "multiplier", multiplier.String(), "bet", bet.String(), "win", win.String())

		return win, nil
	}
}
