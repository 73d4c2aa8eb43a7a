package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountAcceptsDecimalLiterals(t *testing.T) {
	for _, s := range []string{"0", "200", "10.50", "0.01", ".5", "123.456"} {
		d, err := ParseAmount(s)
		require.NoError(t, err, "amount %q", s)
		assert.False(t, d.IsNegative())
	}
}

func TestParseAmountRejectsBadInput(t *testing.T) {
	for _, s := range []string{"", "-5", "-0.01", "abc", "1e5", "10.", "1,000", "+5", "5 "} {
		_, err := ParseAmount(s)
		assert.ErrorIs(t, err, ErrNegativeAmount, "amount %q", s)
	}
}

func TestEventVariantsFixDirection(t *testing.T) {
	dep, err := ParseAmount("200")
	require.NoError(t, err)

	d := NewDeposit("acct-1", dep, "USD")
	assert.Equal(t, KindDeposit, d.Kind)
	assert.Equal(t, Credit, d.Direction)
	assert.Empty(t, d.Decision)
	assert.NotEmpty(t, d.ID)
	assert.False(t, d.CreatedAt.IsZero())

	a := NewAuthorization("acct-1", dep, "USD", Declined)
	assert.Equal(t, KindAuthorization, a.Kind)
	assert.Equal(t, Debit, a.Direction)
	assert.Equal(t, Declined, a.Decision)
}
