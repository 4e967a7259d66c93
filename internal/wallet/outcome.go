package wallet

import "github.com/shopspring/decimal"

// Outcome is the immutable result of a wallet mutation. Callers use it for
// display and logging decisions; the balance it carries is the balance after
// the operation (unchanged on failure).
type Outcome struct {
	Success bool
	Message string
	Balance decimal.Decimal
}

func succeeded(message string, balance decimal.Decimal) Outcome {
	return Outcome{Success: true, Message: message, Balance: balance}
}

func failed(message string, balance decimal.Decimal) Outcome {
	return Outcome{Success: false, Message: message, Balance: balance}
}
