package game

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidBetRange    = errors.New("invalid bet range")
	ErrInvalidProbability = errors.New("probability must be in [0, 1]")
	ErrProbabilitySum     = errors.New("outcome probabilities sum to more than 1")
)

// Settings are the five tunables of the payout engine, fixed for the
// lifetime of a session.
type Settings struct {
	MinBet decimal.Decimal
	MaxBet decimal.Decimal

	// Probability mass of each outcome tier. Their sum may be below 1;
	// the remainder falls through to the multiplier tier. A sum above 1
	// would silently eat into the multiplier tier, so it is rejected.
	LossChance       float64
	WinX2Chance      float64
	WinX2ToX10Chance float64
}

func NewSettings(minBet, maxBet decimal.Decimal, lossChance, winX2Chance, winX2ToX10Chance float64) (Settings, error) {
	if minBet.Sign() <= 0 || maxBet.LessThan(minBet) {
		return Settings{}, fmt.Errorf("%w: min %s, max %s", ErrInvalidBetRange, minBet.StringFixed(2), maxBet.StringFixed(2))
	}

	for name, p := range map[string]float64{
		"lossChance":       lossChance,
		"winX2Chance":      winX2Chance,
		"winX2ToX10Chance": winX2ToX10Chance,
	} {
		if p < 0 || p > 1 {
			return Settings{}, fmt.Errorf("%w: %s = %v", ErrInvalidProbability, name, p)
		}
	}

	if lossChance+winX2Chance+winX2ToX10Chance > 1 {
		return Settings{}, fmt.Errorf("%w: %v", ErrProbabilitySum, lossChance+winX2Chance+winX2ToX10Chance)
	}

	return Settings{
		MinBet:           minBet,
		MaxBet:           maxBet,
		LossChance:       lossChance,
		WinX2Chance:      winX2Chance,
		WinX2ToX10Chance: winX2ToX10Chance,
	}, nil
}
