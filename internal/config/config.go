package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// File represents the top-level conversion config document.
type File struct {
	CSV          Config          `yaml:"csv"`
	Transactions map[string]Rule `yaml:"transactions,omitempty"`
}

// Config describes how columns of the input file map onto transactions.
// Optional settings are pointers so that absence is distinguishable from
// a zero value.
type Config struct {
	Currency          string `yaml:"currency"`
	ProcessingAccount string `yaml:"processing_account"`
	DefaultAccount    string `yaml:"default_account"`
	DateFormat        string `yaml:"date_format"` // strftime pattern, e.g. "%Y-%m-%d"

	// Zero-based column indices into each row.
	Date        int  `yaml:"date"`
	AmountIn    int  `yaml:"amount_in"`
	AmountOut   int  `yaml:"amount_out"`
	Description int  `yaml:"description"`
	Payee       *int `yaml:"payee,omitempty"`

	Delimiter  *string `yaml:"delimiter,omitempty"`
	Skip       *int    `yaml:"skip,omitempty"`
	ToggleSign *bool   `yaml:"toggle_sign,omitempty"`
	Quote      *string `yaml:"quote,omitempty"`
}

// Rule overrides the destination account and/or description for rows
// whose raw description matches the rule's key exactly.
type Rule struct {
	Account *string `yaml:"account,omitempty"`
	Info    *string `yaml:"info,omitempty"`
}

// AccountOverride returns the rule's account override, if present.
func (r Rule) AccountOverride() (string, bool) {
	if r.Account == nil {
		return "", false
	}
	return *r.Account, true
}

// InfoOverride returns the rule's description override, if present.
func (r Rule) InfoOverride() (string, bool) {
	if r.Info == nil {
		return "", false
	}
	return *r.Info, true
}

// Load reads a config document from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &f, nil
}

// DelimiterRune returns the configured field delimiter, default ','.
func (c *Config) DelimiterRune() (rune, error) {
	return runeSetting("delimiter", c.Delimiter, ',')
}

// QuoteRune returns the configured quote character, default '"'.
func (c *Config) QuoteRune() (rune, error) {
	return runeSetting("quote", c.Quote, '"')
}

// SkipRows returns the number of leading records to discard, default 0.
func (c *Config) SkipRows() int {
	if c.Skip == nil {
		return 0
	}
	return *c.Skip
}

// ToggleSignSet reports whether every amount's sign should be inverted.
func (c *Config) ToggleSignSet() bool {
	return c.ToggleSign != nil && *c.ToggleSign
}

func runeSetting(name string, value *string, fallback rune) (rune, error) {
	if value == nil {
		return fallback, nil
	}
	r, size := utf8.DecodeRuneInString(*value)
	if r == utf8.RuneError || size != len(*value) {
		return 0, fmt.Errorf("%s must be a single character, got %q", name, *value)
	}
	return r, nil
}
