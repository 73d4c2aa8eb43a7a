package storage

import (
	"sync"
	"time"

	"github.com/smdp2000/Banking-Ledger-System/internal/core/domain"
)

// accountLog holds one account's ordered event history behind its own lock,
// so appends on different accounts never contend with each other.
type accountLog struct {
	mu     sync.Mutex
	events []domain.Event
}

// EventLog is the append-only, in-memory event store. Accounts come into
// existence implicitly on first append; events are never mutated or removed.
type EventLog struct {
	mu       sync.RWMutex
	accounts map[string]*accountLog
}

func NewEventLog() *EventLog {
	return &EventLog{accounts: make(map[string]*accountLog)}
}

// log returns the per-account log, creating it when create is set.
func (l *EventLog) log(accountID string, create bool) *accountLog {
	l.mu.RLock()
	al, ok := l.accounts[accountID]
	l.mu.RUnlock()
	if ok || !create {
		return al
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if al, ok = l.accounts[accountID]; ok {
		return al
	}
	al = &accountLog{}
	l.accounts[accountID] = al
	return al
}

// Append adds one event to the account's sequence, preserving call order.
func (l *EventLog) Append(accountID string, event domain.Event) {
	al := l.log(accountID, true)
	al.mu.Lock()
	al.events = append(al.events, event)
	al.mu.Unlock()
}

// EventsOf returns a copy of the account's full ordered history.
// Unknown accounts yield an empty slice, not an error.
func (l *EventLog) EventsOf(accountID string) []domain.Event {
	al := l.log(accountID, false)
	if al == nil {
		return nil
	}
	al.mu.Lock()
	defer al.mu.Unlock()
	out := make([]domain.Event, len(al.events))
	copy(out, al.events)
	return out
}

// EventsSince returns the events created strictly after t, in original order.
func (l *EventLog) EventsSince(accountID string, t time.Time) []domain.Event {
	al := l.log(accountID, false)
	if al == nil {
		return nil
	}
	al.mu.Lock()
	defer al.mu.Unlock()
	var out []domain.Event
	for _, e := range al.events {
		if e.CreatedAt.After(t) {
			out = append(out, e)
		}
	}
	return out
}
