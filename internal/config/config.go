// Package config declares the environment-driven settings of both
// binaries. The five game values have no defaults: their absence is a
// fatal startup condition.
package config

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

type Game struct {
	MinBet           decimal.Decimal `env:"BETTY_MIN_BET"`
	MaxBet           decimal.Decimal `env:"BETTY_MAX_BET"`
	LossChance       float64         `env:"BETTY_LOSS_CHANCE"`
	WinX2Chance      float64         `env:"BETTY_WIN_X2_CHANCE"`
	WinX2ToX10Chance float64         `env:"BETTY_WIN_X2_TO_X10_CHANCE"`
}

type Console struct {
	Game Game

	StartingBalance decimal.Decimal `env:"BETTY_STARTING_BALANCE" envDefault:"0"`
	LogLevel        slog.Level      `env:"BETTY_LOG_LEVEL" envDefault:"warn"`
}

type API struct {
	Game Game

	Port            uint16        `env:"BETTY_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"BETTY_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        slog.Level    `env:"BETTY_LOG_LEVEL" envDefault:"info"`
}
