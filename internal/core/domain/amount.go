package domain

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Amount is the monetary shape exchanged on the wire: a decimal string,
// an ISO 4217-style currency code and the ledger direction.
type Amount struct {
	Amount    string    `json:"amount"`
	Currency  string    `json:"currency"`
	Direction Direction `json:"direction"`
}

// amountPattern accepts non-negative decimal literals only. A leading sign,
// exponent notation or an empty string all fail.
var amountPattern = regexp.MustCompile(`^[0-9]*\.?[0-9]+$`)

// ParseAmount validates and parses a wire amount string.
// Anything that is not a non-negative decimal literal returns ErrNegativeAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	if !amountPattern.MatchString(s) {
		return decimal.Zero, ErrNegativeAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrNegativeAmount
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return d, nil
}
