package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smdp2000/Banking-Ledger-System/internal/core/rates"
)

// Fetcher pulls a fresh rate map from the external rate service.
type Fetcher interface {
	Fetch(ctx context.Context) (map[string]decimal.Decimal, error)
}

// RateRefresher keeps the conversion table current on a fixed interval.
// Fetch failures never reach request paths: the table is cleared so all
// conversions degrade to identity until the next successful refresh.
type RateRefresher struct {
	table    *rates.Table
	fetcher  Fetcher
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// StartRateRefresher refreshes once right away, then on every interval tick,
// until Stop is called.
func StartRateRefresher(table *rates.Table, fetcher Fetcher, interval time.Duration) *RateRefresher {
	r := &RateRefresher{
		table:    table,
		fetcher:  fetcher,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	go func() {
		defer close(r.done)
		slog.Info("👷 Rate refresher started", "interval", interval.String())

		r.refresh()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.refresh()
			case <-r.stop:
				return
			}
		}
	}()

	return r
}

// Stop halts the refresh loop and waits for it to exit.
func (r *RateRefresher) Stop() {
	close(r.stop)
	<-r.done
}

func (r *RateRefresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fetched, err := r.fetcher.Fetch(ctx)
	if err != nil {
		slog.Error("Failed to fetch conversion rates, defaulting to rate of 1", "error", err)
		r.table.Clear()
		return
	}

	r.table.Replace(fetched)
	slog.Info("✅ Conversion rates refreshed", "currencies", len(fetched))
}
