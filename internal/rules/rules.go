// Package rules resolves per-description overrides for converted rows.
package rules

import "github.com/csv2bean-dev/csv2bean/internal/config"

// Table maps a raw description (exact, case-sensitive) to its rule.
// A nil Table is valid and matches nothing.
type Table map[string]config.Rule

// Resolve returns the effective description and destination account for
// a row. A matching rule's overrides win; anything the rule leaves unset
// falls back to the raw description and defaultAccount. A lookup miss
// and an absent table behave identically.
func (t Table) Resolve(rawDescription, defaultAccount string) (description, account string) {
	description = rawDescription
	account = defaultAccount

	rule, ok := t[rawDescription]
	if !ok {
		return description, account
	}
	if info, ok := rule.InfoOverride(); ok {
		description = info
	}
	if acct, ok := rule.AccountOverride(); ok {
		account = acct
	}
	return description, account
}
