package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const dateFormat = "2006-01-02"

// Transaction is one converted row, ready to render as a balanced
// double-entry: the processing account leg carries Magnitude, the other
// account leg its negation.
type Transaction struct {
	Date              time.Time
	ProcessingAccount string
	OtherAccount      string
	Currency          string
	Magnitude         decimal.Decimal
	Payee             string // empty = render no payee clause
	Description       string
}

// String renders the transaction in ledger text format: one header line
// followed by the two posting lines. No trailing newline.
func (t Transaction) String() string {
	payee := ""
	if t.Payee != "" {
		payee = `"` + t.Payee + `" `
	}
	return fmt.Sprintf("%s * %s\"%s\"\n  %s %s %s\n  %s %s %s",
		t.Date.Format(dateFormat),
		payee,
		t.Description,
		t.ProcessingAccount, t.Magnitude, t.Currency,
		t.OtherAccount, t.Magnitude.Neg(), t.Currency,
	)
}
