package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/smdp2000/Banking-Ledger-System/internal/core/domain"
)

func TestBalanceCombinesSnapshotAndTail(t *testing.T) {
	f := newFixture()

	f.snapshots.Replace("acct-1", decimal.RequireFromString("100.00"), time.Now())
	f.log.Append("acct-1", domain.NewDeposit("acct-1", decimal.RequireFromString("50"), "USD"))

	projector := NewProjector(f.log, f.snapshots, f.table, "USD")
	assert.Equal(t, "150.00", projector.Balance("acct-1", "USD").StringFixedBank(2))
}

func TestDeclinedAuthorizationsContributeNothing(t *testing.T) {
	f := newFixture()

	f.log.Append("acct-1", domain.NewDeposit("acct-1", decimal.RequireFromString("80"), "USD"))
	f.log.Append("acct-1", domain.NewAuthorization("acct-1", decimal.RequireFromString("500"), "USD", domain.Declined))
	f.log.Append("acct-1", domain.NewAuthorization("acct-1", decimal.RequireFromString("30"), "USD", domain.Approved))

	projector := NewProjector(f.log, f.snapshots, f.table, "USD")
	assert.Equal(t, "50.00", projector.Balance("acct-1", "USD").StringFixedBank(2))
}

func TestTailEventsAreConvertedToBase(t *testing.T) {
	f := newFixture()
	f.table.Replace(map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.9"),
	})

	f.log.Append("acct-1", domain.NewDeposit("acct-1", decimal.RequireFromString("90"), "EUR"))

	projector := NewProjector(f.log, f.snapshots, f.table, "USD")
	assert.Equal(t, "100.00", projector.Balance("acct-1", "USD").StringFixedBank(2))
}

func TestEmptyAccountProjectsToZero(t *testing.T) {
	f := newFixture()
	projector := NewProjector(f.log, f.snapshots, f.table, "USD")
	assert.Equal(t, "0.00", projector.Balance("nobody", "USD").StringFixedBank(2))
}

func TestProjectionIgnoresRatesForSameCurrency(t *testing.T) {
	f := newFixture()
	f.table.Replace(map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.5")})

	f.log.Append("acct-1", domain.NewDeposit("acct-1", decimal.RequireFromString("200"), "EUR"))

	projector := NewProjector(f.log, f.snapshots, f.table, "EUR")
	assert.Equal(t, "200.00", projector.Balance("acct-1", "EUR").StringFixedBank(2))
}
