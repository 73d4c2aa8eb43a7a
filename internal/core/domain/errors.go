package domain

import "errors"

// Domain errors. The HTTP layer maps these to status codes;
// nothing below the handlers knows about HTTP.
var (
	// ErrInvalidDirection means the transaction direction does not match the
	// operation (deposits must be CREDIT, authorizations must be DEBIT).
	ErrInvalidDirection = errors.New("invalid transaction direction")

	// ErrNegativeAmount covers negative amounts and amount strings that are
	// not valid non-negative decimal literals.
	ErrNegativeAmount = errors.New("amount must be a non-negative number")

	// ErrNotFound means the account has no events at all.
	ErrNotFound = errors.New("no events found for account")
)
