// Package rates supplies currency conversion to the ledger core. The table
// is filled by a periodic fetch from an external exchange-rate service; when
// no rate is known for a currency the conversion degrades to identity.
package rates

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Converter is the narrow capability the ledger core consumes.
type Converter interface {
	Convert(from, to string, amount decimal.Decimal) decimal.Decimal
}

// ratePrecision is the scale the cross rate is carried at before the
// converted amount is rounded down to presentation precision.
const ratePrecision = 10

// Table holds the current conversion rates, all quoted against one base
// currency. A refresh swaps in a complete new map; readers never observe a
// partially updated table.
type Table struct {
	mu    sync.RWMutex
	rates map[string]decimal.Decimal
}

func NewTable() *Table {
	return &Table{rates: make(map[string]decimal.Decimal)}
}

// Replace installs a freshly fetched rate map in one step.
func (t *Table) Replace(rates map[string]decimal.Decimal) {
	t.mu.Lock()
	t.rates = rates
	t.mu.Unlock()
}

// Clear drops all rates, so every conversion falls back to identity until
// the next successful refresh.
func (t *Table) Clear() {
	t.mu.Lock()
	t.rates = make(map[string]decimal.Decimal)
	t.mu.Unlock()
}

// Len reports how many currencies the table currently knows.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rates)
}

func (t *Table) rate(currency string) decimal.Decimal {
	if r, ok := t.rates[currency]; ok {
		return r
	}
	return decimal.NewFromInt(1)
}

// Convert translates amount from one currency to another. The cross rate
// rate(to)/rate(from) is carried to 10 fractional digits (round half up),
// then the converted amount is rounded to 2 fractional digits with banker's
// rounding. Unknown currencies are treated as rate 1.
func (t *Table) Convert(from, to string, amount decimal.Decimal) decimal.Decimal {
	t.mu.RLock()
	fromRate := t.rate(from)
	toRate := t.rate(to)
	t.mu.RUnlock()

	rate := toRate.DivRound(fromRate, ratePrecision)
	return amount.Mul(rate).RoundBank(2)
}
