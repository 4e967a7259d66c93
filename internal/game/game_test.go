package game

import (
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays pre-recorded draws and counts consumption so tests
// can assert that no draw is made on the failure path.
type scriptedSource struct {
	floats []float64
	ints   []int

	floatCalls int
	intCalls   int
}

func (s *scriptedSource) Float64() float64 {
	f := s.floats[s.floatCalls]
	s.floatCalls++

	return f
}

func (s *scriptedSource) IntInRange(lo, hi int) int {
	n := s.ints[s.intCalls]
	s.intCalls++

	if n < lo || n > hi {
		panic("scripted int outside requested range")
	}

	return n
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}

	return d
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSettings(t *testing.T) Settings {
	t.Helper()

	s, err := NewSettings(dec(t, "1"), dec(t, "100"), 0.5, 0.4, 0.1)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}

	return s
}

func TestGame_Play_Tiers(t *testing.T) {
	t.Parallel()

	// lossChance=0.5, winX2Chance=0.4, remaining mass 0.1 for multiplier
	tests := []struct {
		name    string
		roll    float64
		ints    []int
		bet     string
		wantWin string
	}{
		{name: "loss_at_zero", roll: 0, bet: "10", wantWin: "0.00"},
		{name: "loss_just_below_threshold", roll: 0.499999, bet: "10", wantWin: "0.00"},
		{name: "x2_at_loss_threshold", roll: 0.5, bet: "10", wantWin: "20.00"},
		{name: "x2_just_below_upper_threshold", roll: 0.899999, bet: "10", wantWin: "20.00"},
		{name: "multiplier_at_upper_threshold", roll: 0.9, ints: []int{500}, bet: "10", wantWin: "50.00"},
		{name: "multiplier_lowest_step", roll: 0.95, ints: []int{201}, bet: "10", wantWin: "20.10"},
		{name: "multiplier_highest_step", roll: 0.999999, ints: []int{1000}, bet: "10", wantWin: "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := &scriptedSource{floats: []float64{tt.roll}, ints: tt.ints}
			g := New(testSettings(t), src, testLogger())

			win, err := g.Play(dec(t, tt.bet))
			require.NoError(t, err)

			assert.Equal(t, tt.wantWin, win.StringFixed(2))
			assert.Equal(t, 1, src.floatCalls)
			assert.Equal(t, len(tt.ints), src.intCalls)
		})
	}
}

func TestGame_Play_BetOutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bet  string
	}{
		{name: "below_min", bet: "0.99"},
		{name: "above_max", bet: "100.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := &scriptedSource{}
			g := New(testSettings(t), src, testLogger())

			win, err := g.Play(dec(t, tt.bet))

			require.ErrorIs(t, err, ErrBetOutOfRange)
			assert.Contains(t, err.Error(), "1.00")
			assert.Contains(t, err.Error(), "100.00")
			assert.True(t, win.IsZero())

			// no random draw consumed on the failure path
			assert.Zero(t, src.floatCalls)
			assert.Zero(t, src.intCalls)
		})
	}
}

func TestGame_Play_BoundaryBetsAccepted(t *testing.T) {
	t.Parallel()

	for _, bet := range []string{"1", "100"} {
		src := &scriptedSource{floats: []float64{0}}
		g := New(testSettings(t), src, testLogger())

		_, err := g.Play(dec(t, bet))

		require.NoError(t, err, "bet %s", bet)
	}
}

func TestNewSettings_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		min     string
		max     string
		loss    float64
		x2      float64
		x2x10   float64
		wantErr error
	}{
		{name: "valid", min: "1", max: "100", loss: 0.5, x2: 0.4, x2x10: 0.1},
		{name: "valid_sum_below_one", min: "1", max: "100", loss: 0.3, x2: 0.3, x2x10: 0.1},
		{name: "min_above_max", min: "100", max: "1", loss: 0.5, x2: 0.4, x2x10: 0.1, wantErr: ErrInvalidBetRange},
		{name: "non_positive_min", min: "0", max: "100", loss: 0.5, x2: 0.4, x2x10: 0.1, wantErr: ErrInvalidBetRange},
		{name: "probability_above_one", min: "1", max: "100", loss: 1.5, x2: 0, x2x10: 0, wantErr: ErrInvalidProbability},
		{name: "negative_probability", min: "1", max: "100", loss: 0.5, x2: -0.1, x2x10: 0.1, wantErr: ErrInvalidProbability},
		{name: "sum_above_one", min: "1", max: "100", loss: 0.6, x2: 0.3, x2x10: 0.2, wantErr: ErrProbabilitySum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewSettings(dec(t, tt.min), dec(t, tt.max), tt.loss, tt.x2, tt.x2x10)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
