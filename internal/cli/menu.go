// Package cli drives the interactive console session: a synchronous menu
// loop, one wallet or game action per choice.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vhristo/betty/internal/game"
	"github.com/vhristo/betty/internal/session"
)

type Menu struct {
	in      *bufio.Scanner
	out     Printer
	session *session.Session
}

func NewMenu(in io.Reader, out Printer, s *session.Session) *Menu {
	return &Menu{
		in:      bufio.NewScanner(in),
		out:     out,
		session: s,
	}
}

// Run loops until the player exits, input ends, or ctx is canceled.
func (m *Menu) Run(ctx context.Context) error {
	settings := m.session.Settings()
	m.out.Info(fmt.Sprintf("Welcome to Betty! Bets from %s to %s.",
		settings.MinBet.StringFixed(2), settings.MaxBet.StringFixed(2)))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		m.out.Info("")
		m.out.Info("1) Deposit  2) Withdraw  3) Bet  4) Balance  5) History  6) Exit")

		choice, ok := m.prompt("choose an option: ")
		if !ok {
			return m.in.Err()
		}

		switch choice {
		case "1":
			m.deposit()
		case "2":
			m.withdraw()
		case "3":
			m.bet()
		case "4":
			m.out.Info(fmt.Sprintf("balance is %s", m.session.Balance().StringFixed(2)))
		case "5":
			m.history()
		case "6", "q", "quit", "exit":
			m.out.Info("Goodbye!")
			return nil
		default:
			m.out.Warning(fmt.Sprintf("unknown option %q", choice))
		}
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	m.out.Info(label)

	if !m.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) promptAmount(label string) (decimal.Decimal, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		m.out.Warning(fmt.Sprintf("not a valid amount: %q", raw))
		return decimal.Zero, false
	}

	return amount, true
}

func (m *Menu) deposit() {
	amount, ok := m.promptAmount("amount to deposit: ")
	if !ok {
		return
	}

	out := m.session.Deposit(amount)
	if !out.Success {
		m.out.Warning(out.Message)
		return
	}

	m.out.Success(out.Message)
}

func (m *Menu) withdraw() {
	amount, ok := m.promptAmount("amount to withdraw: ")
	if !ok {
		return
	}

	out := m.session.Withdraw(amount)
	if !out.Success {
		m.out.Warning(out.Message)
		return
	}

	m.out.Success(out.Message)
}

func (m *Menu) bet() {
	amount, ok := m.promptAmount("amount to bet: ")
	if !ok {
		return
	}

	round, err := m.session.PlayRound(amount)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrBetOutOfRange):
			m.out.Warning(fmt.Sprintf("bet refunded: %v", err))
		case errors.Is(err, session.ErrBetRejected):
			m.out.Warning(err.Error())
		default:
			m.out.Error(err.Error())
		}

		return
	}

	m.out.Verbose(fmt.Sprintf("round %s resolved", round.Ref))

	if round.Win.Sign() == 0 {
		m.out.Warning(fmt.Sprintf("you lost %s, balance is %s",
			round.Bet.StringFixed(2), round.Balance.StringFixed(2)))
		return
	}

	m.out.Success(fmt.Sprintf("you won %s, balance is %s",
		round.Win.StringFixed(2), round.Balance.StringFixed(2)))
}

func (m *Menu) history() {
	rounds := m.session.Rounds()
	if len(rounds) == 0 {
		m.out.Info("no rounds played yet")
		return
	}

	for _, r := range rounds {
		m.out.Info(fmt.Sprintf("%s  bet %s  win %s  balance %s",
			r.PlayedAt.Format("15:04:05"), r.Bet.StringFixed(2),
			r.Win.StringFixed(2), r.Balance.StringFixed(2)))
	}
}
