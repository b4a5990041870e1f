// Package balance reads the tracked stablecoin holdings of an exchange account.
package balance

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Source yields the free (unencumbered) amount of a single asset held on the account.
// Locked amounts are excluded by policy: only the balance available for immediate
// use is tracked.
type Source interface {
	FreeBalance(ctx context.Context, asset string) (decimal.Decimal, error)
}

// Reader sums free balances across a fixed, configured list of stable-value assets.
type Reader struct {
	source Source
	assets []string
}

// NewReader creates a Reader over the given source and asset list.
func NewReader(source Source, assets []string) *Reader {
	return &Reader{
		source: source,
		assets: assets,
	}
}

// TotalFreeBalance returns the sum of free balances over all configured assets.
// A failure for any single asset fails the whole read: a partial sum would
// silently understate holdings.
func (r *Reader) TotalFreeBalance(ctx context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, asset := range r.assets {
		free, err := r.source.FreeBalance(ctx, asset)
		if err != nil {
			return decimal.Zero, errors.Wrapf(err, "failed to read free balance for %s", asset)
		}
		total = total.Add(free)
	}

	return total, nil
}
