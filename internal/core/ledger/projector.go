// Package ledger is the projection-and-decision core: it folds the
// append-only event log onto cached snapshots and makes the approve/decline
// call for authorizations.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/smdp2000/Banking-Ledger-System/internal/adapter/storage"
	"github.com/smdp2000/Banking-Ledger-System/internal/core/domain"
	"github.com/smdp2000/Banking-Ledger-System/internal/core/rates"
)

// Projector computes current balances by replaying only the events appended
// after the account's last snapshot, never the full history.
type Projector struct {
	log       *storage.EventLog
	snapshots *storage.SnapshotStore
	converter rates.Converter
	base      string
}

func NewProjector(log *storage.EventLog, snapshots *storage.SnapshotStore, converter rates.Converter, baseCurrency string) *Projector {
	return &Projector{
		log:       log,
		snapshots: snapshots,
		converter: converter,
		base:      baseCurrency,
	}
}

// Balance returns the account's current balance expressed in targetCurrency.
//
// A deposit adds its amount converted to the base currency; an approved
// authorization is folded by converting the negated amount, so rounding on
// debit legs matches credit legs exactly. Declined authorizations contribute
// nothing.
func (p *Projector) Balance(accountID, targetCurrency string) decimal.Decimal {
	snap := p.snapshots.Latest(accountID)
	balance := snap.Balance

	for _, e := range p.log.EventsSince(accountID, snap.AsOf) {
		switch e.Kind {
		case domain.KindDeposit:
			balance = balance.Add(p.converter.Convert(e.Currency, p.base, e.Amount))
		case domain.KindAuthorization:
			if e.Decision == domain.Approved {
				balance = balance.Add(p.converter.Convert(e.Currency, p.base, e.Amount.Neg()))
			}
		}
	}

	return p.converter.Convert(p.base, targetCurrency, balance)
}
