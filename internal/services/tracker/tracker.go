// Package tracker runs one balance measurement cycle.
package tracker

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"stablewatch/internal/entity"
)

// Store persists balance observations and yields the most recent one.
type Store interface {
	Latest() (entity.BalanceRecord, error)
	Store(value decimal.Decimal) error
}

// Reader reports the current tracked balance held on the account.
type Reader interface {
	TotalFreeBalance(ctx context.Context) (decimal.Decimal, error)
}

// Result is the outcome of one completed cycle.
type Result struct {
	Current  decimal.Decimal
	Previous entity.BalanceRecord
	Delta    decimal.Decimal
	// Percent is the delta relative to the previous value, in percent.
	// Zero when no prior observation exists.
	Percent decimal.Decimal
}

// Tracker orchestrates load-latest, observe, diff, persist.
type Tracker struct {
	store  Store
	reader Reader
	logger *zap.Logger
}

func New(store Store, reader Reader, logger *zap.Logger) *Tracker {
	return &Tracker{
		store:  store,
		reader: reader,
		logger: logger,
	}
}

// Cycle performs one measurement pass. The delta is computed against the
// record as it was before this cycle; the new value is persisted only after
// that, and nothing is persisted when the read fails. Errors abort the cycle,
// there are no retries at this layer.
func (t *Tracker) Cycle(ctx context.Context) (Result, error) {
	last, err := t.store.Latest()
	if err != nil {
		return Result{}, errors.Wrap(err, "load last balance record")
	}

	current, err := t.reader.TotalFreeBalance(ctx)
	if err != nil {
		return Result{}, errors.Wrap(err, "read current balance")
	}

	delta := current.Sub(last.Value)
	percent := decimal.Zero
	if !last.Value.IsZero() {
		percent = delta.Div(last.Value).Mul(decimal.NewFromInt(100))
	}

	if err := t.store.Store(current); err != nil {
		return Result{}, errors.Wrap(err, "persist balance record")
	}

	t.logger.Info("balance observed",
		zap.String("current", current.StringFixed(2)),
		zap.String("delta", delta.StringFixed(2)),
		zap.String("previous_at", last.Timestamp))

	return Result{
		Current:  current,
		Previous: last,
		Delta:    delta,
		Percent:  percent,
	}, nil
}
