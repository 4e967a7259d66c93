// Package wallet owns the player balance. Every mutation is an atomic
// check-then-mutate under the wallet lock and reports an Outcome; the
// balance can never go negative.
package wallet

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Wallet is safe for concurrent use; each wallet is an independently
// lockable unit so sessions never contend with each other.
type Wallet struct {
	mu      sync.Mutex
	balance decimal.Decimal
	log     *slog.Logger
}

// New returns a wallet holding the given starting balance. A negative
// starting balance is treated as zero.
func New(initial decimal.Decimal, log *slog.Logger) *Wallet {
	if initial.Sign() < 0 {
		log.Warn("negative starting balance, using zero", "requested", initial.String())
		initial = decimal.Zero
	}

	return &Wallet{balance: initial, log: log}
}

// Balance returns the current balance.
func (w *Wallet) Balance() decimal.Decimal {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.balance
}

// Deposit credits amount to the balance. Fails if amount is not positive.
func (w *Wallet) Deposit(amount decimal.Decimal) Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()

	if amount.Sign() <= 0 {
		return failed(fmt.Sprintf("deposit %v: %s", ErrNonPositiveAmount, amount.StringFixed(2)), w.balance)
	}

	w.balance = w.balance.Add(amount)
	w.log.Info("deposit", "amount", amount.String(), "balance", w.balance.String())

	return succeeded(fmt.Sprintf("deposited %s, balance is %s", amount.StringFixed(2), w.balance.StringFixed(2)), w.balance)
}

// Withdraw debits amount from the balance. Fails if amount is not positive
// or exceeds the balance.
func (w *Wallet) Withdraw(amount decimal.Decimal) Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()

	if amount.Sign() <= 0 {
		return failed(fmt.Sprintf("withdrawal %v: %s", ErrNonPositiveAmount, amount.StringFixed(2)), w.balance)
	}

	if amount.GreaterThan(w.balance) {
		return failed(fmt.Sprintf("%v: balance %s, requested %s", ErrInsufficientFunds, w.balance.StringFixed(2), amount.StringFixed(2)), w.balance)
	}

	w.balance = w.balance.Sub(amount)
	w.log.Info("withdrawal", "amount", amount.String(), "balance", w.balance.String())

	return succeeded(fmt.Sprintf("withdrew %s, balance is %s", amount.StringFixed(2), w.balance.StringFixed(2)), w.balance)
}

// PlaceBet debits the bet amount. Same rules as Withdraw, bet-specific
// messages.
func (w *Wallet) PlaceBet(amount decimal.Decimal) Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()

	if amount.Sign() <= 0 {
		return failed(fmt.Sprintf("bet %v: %s", ErrNonPositiveAmount, amount.StringFixed(2)), w.balance)
	}

	if amount.GreaterThan(w.balance) {
		return failed(fmt.Sprintf("%v for bet: balance %s, bet %s", ErrInsufficientFunds, w.balance.StringFixed(2), amount.StringFixed(2)), w.balance)
	}

	w.balance = w.balance.Sub(amount)
	w.log.Info("bet placed", "amount", amount.String(), "balance", w.balance.String())

	return succeeded(fmt.Sprintf("bet %s placed, balance is %s", amount.StringFixed(2), w.balance.StringFixed(2)), w.balance)
}

// AcceptWin credits a game win. A zero win is a loss and leaves the balance
// untouched. A negative win means the payout engine misbehaved: the amount
// is discarded and the event logged at error level. Fire-and-forget, the
// only observable effect is the balance.
func (w *Wallet) AcceptWin(amount decimal.Decimal) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if amount.Sign() < 0 {
		w.log.Error("negative win discarded", "amount", amount.String(), "balance", w.balance.String())
		return
	}

	if amount.Sign() == 0 {
		return
	}

	w.balance = w.balance.Add(amount)
	w.log.Info("win accepted", "amount", amount.String(), "balance", w.balance.String())
}
