package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smdp2000/Banking-Ledger-System/internal/adapter/storage"
	"github.com/smdp2000/Banking-Ledger-System/internal/core/domain"
)

// Receipt is the outcome of a processed transaction: the post-event balance
// in the request's currency, and for authorizations the recorded decision.
type Receipt struct {
	Balance  decimal.Decimal
	Currency string
	Decision domain.Decision
}

// Processor validates and applies deposits and authorization requests,
// appending to the event log and keeping the snapshot store current.
//
// The whole read-decide-append-resnapshot sequence runs under a per-account
// mutex: without it, two concurrent authorizations can read the same
// pre-event balance and both approve, over-authorizing the account. Accounts
// stay independent; only requests for the same account serialize.
type Processor struct {
	log       *storage.EventLog
	snapshots *storage.SnapshotStore
	projector *Projector
	base      string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewProcessor(log *storage.EventLog, snapshots *storage.SnapshotStore, projector *Projector, baseCurrency string) *Processor {
	return &Processor{
		log:       log,
		snapshots: snapshots,
		projector: projector,
		base:      baseCurrency,
		locks:     make(map[string]*sync.Mutex),
	}
}

// accountLock returns the mutex for one account, creating it on first use.
func (p *Processor) accountLock(accountID string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	l, ok := p.locks[accountID]
	if !ok {
		l = &sync.Mutex{}
		p.locks[accountID] = l
	}
	return l
}

// resnapshot recomputes the account balance in the base currency and
// replaces the snapshot. Callers hold the account lock.
func (p *Processor) resnapshot(accountID string) {
	balance := p.projector.Balance(accountID, p.base)
	p.snapshots.Replace(accountID, balance, time.Now())
}

// Deposit applies a CREDIT to the account and returns the post-event balance
// in the request's currency. Validation happens before any state changes.
func (p *Processor) Deposit(accountID string, tx domain.Amount) (Receipt, error) {
	if tx.Direction != domain.Credit {
		return Receipt{}, fmt.Errorf("load transactions must be of type CREDIT: %w", domain.ErrInvalidDirection)
	}
	amount, err := domain.ParseAmount(tx.Amount)
	if err != nil {
		return Receipt{}, err
	}

	l := p.accountLock(accountID)
	l.Lock()
	defer l.Unlock()

	p.log.Append(accountID, domain.NewDeposit(accountID, amount, tx.Currency))
	p.resnapshot(accountID)

	return Receipt{
		Balance:  p.projector.Balance(accountID, tx.Currency),
		Currency: tx.Currency,
	}, nil
}

// Authorize decides APPROVED when the current balance covers the requested
// amount, DECLINED otherwise, records the outcome as a DEBIT event and
// returns the post-event balance. A declined authorization leaves the
// balance untouched.
func (p *Processor) Authorize(accountID string, tx domain.Amount) (Receipt, error) {
	if tx.Direction != domain.Debit {
		return Receipt{}, fmt.Errorf("authorization transactions must be of type DEBIT: %w", domain.ErrInvalidDirection)
	}
	amount, err := domain.ParseAmount(tx.Amount)
	if err != nil {
		return Receipt{}, err
	}

	l := p.accountLock(accountID)
	l.Lock()
	defer l.Unlock()

	decision := domain.Declined
	if p.projector.Balance(accountID, tx.Currency).GreaterThanOrEqual(amount) {
		decision = domain.Approved
	}

	p.log.Append(accountID, domain.NewAuthorization(accountID, amount, tx.Currency, decision))
	p.resnapshot(accountID)

	return Receipt{
		Balance:  p.projector.Balance(accountID, tx.Currency),
		Currency: tx.Currency,
		Decision: decision,
	}, nil
}

// Events returns the account's full ordered history, or ErrNotFound when no
// events exist at all.
func (p *Processor) Events(accountID string) ([]domain.Event, error) {
	events := p.log.EventsOf(accountID)
	if len(events) == 0 {
		return nil, domain.ErrNotFound
	}
	return events, nil
}

// Balance is a read-only projection of the account's current balance.
// It takes no lock: the snapshot and the log only advance together, so a
// snapshot paired with any later tail still folds to the latest balance.
func (p *Processor) Balance(accountID, currency string) decimal.Decimal {
	return p.projector.Balance(accountID, currency)
}
