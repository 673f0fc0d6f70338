// Package convert maps delimited transaction rows onto double-entry
// ledger transactions and renders them.
package convert

import (
	"fmt"
	"io"

	timefmt "github.com/itchyny/timefmt-go"
	"github.com/shopspring/decimal"

	"github.com/csv2bean-dev/csv2bean/internal/config"
	"github.com/csv2bean-dev/csv2bean/internal/model"
	"github.com/csv2bean-dev/csv2bean/internal/rules"
)

// Converter turns rows into transactions using a loaded config document.
type Converter struct {
	cfg   *config.Config
	rules rules.Table
}

// New creates a Converter from a loaded config document.
func New(f *config.File) *Converter {
	return &Converter{cfg: &f.CSV, rules: rules.Table(f.Transactions)}
}

// Run reads delimited records from r and writes one rendered transaction
// per row to w, in input order, separated by a single blank line. The
// first error aborts the run; output already written stands.
func (c *Converter) Run(r io.Reader, w io.Writer) error {
	delim, err := c.cfg.DelimiterRune()
	if err != nil {
		return err
	}
	quote, err := c.cfg.QuoteRune()
	if err != nil {
		return err
	}

	rd := NewReader(r, delim, quote)
	skip := c.cfg.SkipRows()
	first := true
	for row := 1; ; row++ {
		record, err := rd.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
		if row <= skip {
			continue
		}

		txn, err := c.Build(record)
		if err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}

		if first {
			first = false
		} else {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w, txn); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
}

// Build assembles one Transaction from a record.
func (c *Converter) Build(record []string) (model.Transaction, error) {
	payee := ""
	if c.cfg.Payee != nil {
		v, err := field(record, *c.cfg.Payee, "payee")
		if err != nil {
			return model.Transaction{}, err
		}
		payee = v
	}

	rawDesc, err := field(record, c.cfg.Description, "description")
	if err != nil {
		return model.Transaction{}, err
	}
	dateField, err := field(record, c.cfg.Date, "date")
	if err != nil {
		return model.Transaction{}, err
	}
	inField, err := field(record, c.cfg.AmountIn, "amount_in")
	if err != nil {
		return model.Transaction{}, err
	}
	outField, err := field(record, c.cfg.AmountOut, "amount_out")
	if err != nil {
		return model.Transaction{}, err
	}

	date, err := timefmt.Parse(dateField, c.cfg.DateFormat)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", dateField, err)
	}

	description, account := c.rules.Resolve(rawDesc, c.cfg.DefaultAccount)

	magnitude, err := resolveMagnitude(inField, outField, description, c.cfg.ToggleSignSet())
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		Date:              date,
		ProcessingAccount: c.cfg.ProcessingAccount,
		OtherAccount:      account,
		Currency:          c.cfg.Currency,
		Magnitude:         magnitude,
		Payee:             payee,
		Description:       description,
	}, nil
}

// resolveMagnitude parses the in column as the amount in its literal
// sign, falling back to the negated out column, then applies the
// configured sign toggle.
func resolveMagnitude(in, out, description string, toggle bool) (decimal.Decimal, error) {
	amt, err := decimal.NewFromString(in)
	if err != nil {
		amt, err = decimal.NewFromString(out)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("could not parse either in or out amounts for %s", description)
		}
		amt = amt.Neg()
	}
	if toggle {
		amt = amt.Neg()
	}
	return amt, nil
}

func field(record []string, idx int, name string) (string, error) {
	if idx < 0 || idx >= len(record) {
		return "", fmt.Errorf("no %s column %d in record with %d fields", name, idx, len(record))
	}
	return record[idx], nil
}
