package storage

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smdp2000/Banking-Ledger-System/internal/core/domain"
)

func deposit(accountID, amount string) domain.Event {
	return domain.NewDeposit(accountID, decimal.RequireFromString(amount), "USD")
}

func TestAppendPreservesCallOrder(t *testing.T) {
	log := NewEventLog()
	for i := 0; i < 5; i++ {
		log.Append("acct-1", deposit("acct-1", fmt.Sprintf("%d", i+1)))
	}

	events := log.EventsOf("acct-1")
	require.Len(t, events, 5)
	for i, e := range events {
		assert.Equal(t, fmt.Sprintf("%d", i+1), e.Amount.String())
	}
}

func TestEventsOfUnknownAccountIsEmpty(t *testing.T) {
	log := NewEventLog()
	assert.Empty(t, log.EventsOf("nobody"))
	assert.Empty(t, log.EventsSince("nobody", time.Time{}))
}

func TestEventsSinceIsStrictlyAfter(t *testing.T) {
	log := NewEventLog()
	first := deposit("acct-1", "10")
	second := deposit("acct-1", "20")
	log.Append("acct-1", first)
	log.Append("acct-1", second)

	// A cutoff equal to an event's timestamp must exclude that event.
	tail := log.EventsSince("acct-1", first.CreatedAt)
	require.Len(t, tail, 1)
	assert.Equal(t, second.ID, tail[0].ID)

	assert.Len(t, log.EventsSince("acct-1", time.Time{}), 2)
	assert.Empty(t, log.EventsSince("acct-1", second.CreatedAt))
}

func TestAccountsAreIndependent(t *testing.T) {
	log := NewEventLog()
	log.Append("acct-1", deposit("acct-1", "10"))
	log.Append("acct-2", deposit("acct-2", "20"))
	log.Append("acct-1", deposit("acct-1", "30"))

	assert.Len(t, log.EventsOf("acct-1"), 2)
	assert.Len(t, log.EventsOf("acct-2"), 1)
}

func TestEventsOfReturnsACopy(t *testing.T) {
	log := NewEventLog()
	log.Append("acct-1", deposit("acct-1", "10"))

	events := log.EventsOf("acct-1")
	events[0].Amount = decimal.RequireFromString("999")

	assert.Equal(t, "10", log.EventsOf("acct-1")[0].Amount.String())
}

func TestConcurrentAppendsLoseNothing(t *testing.T) {
	log := NewEventLog()
	const writers = 50
	const perWriter = 20

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			account := fmt.Sprintf("acct-%d", w%5)
			for i := 0; i < perWriter; i++ {
				log.Append(account, deposit(account, "1"))
			}
		}(w)
	}
	wg.Wait()

	total := 0
	for i := 0; i < 5; i++ {
		total += len(log.EventsOf(fmt.Sprintf("acct-%d", i)))
	}
	assert.Equal(t, writers*perWriter, total)
}
