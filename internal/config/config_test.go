package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
csv:
  currency: USD
  processing_account: Assets:Checking
  default_account: Expenses:Unknown
  date_format: "%Y-%m-%d"
  date: 0
  amount_in: 1
  amount_out: 2
  description: 3
  payee: 4
  delimiter: ";"
  skip: 2
  toggle_sign: true
  quote: "'"
transactions:
  "COFFEE SHOP":
    account: Expenses:Coffee
    info: Coffee
  "GYM MEMBERSHIP":
    account: Expenses:Fitness
`)

	f, err := Load(path)
	require.NoError(t, err)

	cfg := f.CSV
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "Assets:Checking", cfg.ProcessingAccount)
	assert.Equal(t, "Expenses:Unknown", cfg.DefaultAccount)
	assert.Equal(t, "%Y-%m-%d", cfg.DateFormat)
	assert.Equal(t, 0, cfg.Date)
	assert.Equal(t, 1, cfg.AmountIn)
	assert.Equal(t, 2, cfg.AmountOut)
	assert.Equal(t, 3, cfg.Description)
	require.NotNil(t, cfg.Payee)
	assert.Equal(t, 4, *cfg.Payee)
	assert.Equal(t, 2, cfg.SkipRows())
	assert.True(t, cfg.ToggleSignSet())

	delim, err := cfg.DelimiterRune()
	require.NoError(t, err)
	assert.Equal(t, ';', delim)
	quote, err := cfg.QuoteRune()
	require.NoError(t, err)
	assert.Equal(t, '\'', quote)

	require.Len(t, f.Transactions, 2)
	coffee := f.Transactions["COFFEE SHOP"]
	acct, ok := coffee.AccountOverride()
	require.True(t, ok)
	assert.Equal(t, "Expenses:Coffee", acct)
	info, ok := coffee.InfoOverride()
	require.True(t, ok)
	assert.Equal(t, "Coffee", info)

	gym := f.Transactions["GYM MEMBERSHIP"]
	_, ok = gym.InfoOverride()
	assert.False(t, ok)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
csv:
  currency: USD
  processing_account: Assets:Checking
  default_account: Expenses:Unknown
  date_format: "%Y-%m-%d"
  date: 0
  amount_in: 1
  amount_out: 2
  description: 3
`)

	f, err := Load(path)
	require.NoError(t, err)

	cfg := f.CSV
	assert.Nil(t, cfg.Payee)
	assert.Equal(t, 0, cfg.SkipRows())
	assert.False(t, cfg.ToggleSignSet())
	assert.Nil(t, f.Transactions)

	delim, err := cfg.DelimiterRune()
	require.NoError(t, err)
	assert.Equal(t, ',', delim)
	quote, err := cfg.QuoteRune()
	require.NoError(t, err)
	assert.Equal(t, '"', quote)
}

func TestLoadPayeeZeroIsPresent(t *testing.T) {
	path := writeConfig(t, `
csv:
  currency: USD
  processing_account: Assets:Checking
  default_account: Expenses:Unknown
  date_format: "%Y-%m-%d"
  date: 1
  amount_in: 2
  amount_out: 3
  description: 4
  payee: 0
`)

	f, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, f.CSV.Payee)
	assert.Equal(t, 0, *f.CSV.Payee)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "csv: [not, a, mapping\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestDelimiterMultiRune(t *testing.T) {
	path := writeConfig(t, `
csv:
  currency: USD
  processing_account: Assets:Checking
  default_account: Expenses:Unknown
  date_format: "%Y-%m-%d"
  date: 0
  amount_in: 1
  amount_out: 2
  description: 3
  delimiter: "ab"
`)

	f, err := Load(path)
	require.NoError(t, err)
	_, err = f.CSV.DelimiterRune()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single character")
}

func TestRuleOverridesAbsent(t *testing.T) {
	var r Rule
	_, ok := r.AccountOverride()
	assert.False(t, ok)
	_, ok = r.InfoOverride()
	assert.False(t, ok)
}
