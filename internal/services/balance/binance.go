package balance

import (
	"context"

	"github.com/adshao/go-binance/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// BinanceSource reads free asset balances from a Binance spot account.
type BinanceSource struct {
	client *binance.Client
}

func NewBinanceSource(client *binance.Client) *BinanceSource {
	return &BinanceSource{client: client}
}

func (s *BinanceSource) FreeBalance(ctx context.Context, asset string) (decimal.Decimal, error) {
	account, err := s.client.NewGetAccountService().Do(ctx)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to get binance account balance")
	}

	for _, b := range account.Balances {
		if b.Asset != asset {
			continue
		}
		free, err := decimal.NewFromString(b.Free)
		if err != nil {
			return decimal.Zero, errors.Wrapf(err, "failed to parse free balance of %s", asset)
		}
		return free, nil
	}

	// An asset absent from the account snapshot is an error, not a silent zero.
	return decimal.Zero, errors.Errorf("asset %s not found in binance account", asset)
}
