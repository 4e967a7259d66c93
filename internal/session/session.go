// Package session ties one player's wallet and game together and keeps the
// round history. Sessions are explicit objects rather than process-wide
// state, so many can coexist in the service mode.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vhristo/betty/internal/game"
	"github.com/vhristo/betty/internal/rng"
	"github.com/vhristo/betty/internal/wallet"
)

// historyCap bounds the per-session round history.
const historyCap = 100

var ErrBetRejected = errors.New("bet rejected")

// Round records one resolved game round. Win of zero denotes a loss.
type Round struct {
	Ref      uuid.UUID
	Bet      decimal.Decimal
	Win      decimal.Decimal
	Balance  decimal.Decimal
	PlayedAt time.Time
}

type Session struct {
	ID uuid.UUID

	mu      sync.Mutex
	wallet  *wallet.Wallet
	game    *game.Game
	history []Round
	log     *slog.Logger
}

func New(settings game.Settings, src rng.Source, initial decimal.Decimal, log *slog.Logger) *Session {
	id := uuid.New()
	log = log.With("session", id.String())

	return &Session{
		ID:     id,
		wallet: wallet.New(initial, log),
		game:   game.New(settings, src, log),
		log:    log,
	}
}

func (s *Session) Balance() decimal.Decimal {
	return s.wallet.Balance()
}

func (s *Session) Settings() game.Settings {
	return s.game.Settings()
}

func (s *Session) Deposit(amount decimal.Decimal) wallet.Outcome {
	return s.wallet.Deposit(amount)
}

func (s *Session) Withdraw(amount decimal.Decimal) wallet.Outcome {
	return s.wallet.Withdraw(amount)
}

// PlayRound runs the full bet flow: debit the bet, resolve the round,
// credit any win. A bet the game engine rejects as out of range is refunded
// in full, restoring the balance to its pre-bet value exactly.
func (s *Session) PlayRound(bet decimal.Decimal) (Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	placed := s.wallet.PlaceBet(bet)
	if !placed.Success {
		return Round{}, fmt.Errorf("%w: %s", ErrBetRejected, placed.Message)
	}

	win, err := s.game.Play(bet)
	if err != nil {
		// Refund the debited bet.
		s.wallet.AcceptWin(bet)
		s.log.Warn("bet refunded", "bet", bet.String(), "reason", err.Error())

		return Round{}, fmt.Errorf("play round: %w", err)
	}

	s.wallet.AcceptWin(win)

	round := Round{
		Ref:      uuid.New(),
		Bet:      bet,
		Win:      win,
		Balance:  s.wallet.Balance(),
		PlayedAt: time.Now(),
	}

	s.history = append(s.history, round)
	if len(s.history) > historyCap {
		s.history = s.history[len(s.history)-historyCap:]
	}

	return round, nil
}

// Rounds returns a copy of the recorded history, oldest first.
func (s *Session) Rounds() []Round {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Round, len(s.history))
	copy(out, s.history)

	return out
}
