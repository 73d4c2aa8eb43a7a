package storage

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is an account's cached balance in the base currency, together
// with the instant it was computed at. One current snapshot per account;
// no history is retained.
type Snapshot struct {
	AccountID string
	Balance   decimal.Decimal
	AsOf      time.Time
}

// SnapshotStore is a last-writer-wins store of per-account snapshots.
// It does no compare-and-swap; callers serialize writes per account.
type SnapshotStore struct {
	mu    sync.RWMutex
	snaps map[string]Snapshot
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{snaps: make(map[string]Snapshot)}
}

// Latest returns the current snapshot, or a zero-balance default with the
// zero time when the account has never been snapshotted.
func (s *SnapshotStore) Latest(accountID string) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if snap, ok := s.snaps[accountID]; ok {
		return snap
	}
	return Snapshot{AccountID: accountID, Balance: decimal.Zero}
}

// Replace overwrites the account's snapshot unconditionally.
func (s *SnapshotStore) Replace(accountID string, balance decimal.Decimal, asOf time.Time) {
	s.mu.Lock()
	s.snaps[accountID] = Snapshot{AccountID: accountID, Balance: balance, AsOf: asOf}
	s.mu.Unlock()
}
