package balance

import (
	"context"

	"github.com/hirokisan/bybit/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// BybitSource reads free asset balances from a Bybit unified account.
type BybitSource struct {
	client *bybit.Client
}

func NewBybitSource(client *bybit.Client) *BybitSource {
	return &BybitSource{client: client}
}

func (s *BybitSource) FreeBalance(_ context.Context, asset string) (decimal.Decimal, error) {
	res, err := s.client.V5().Account().GetWalletBalance(bybit.AccountTypeV5("UNIFIED"), nil)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to get bybit wallet balance")
	}
	if len(res.Result.List) == 0 {
		return decimal.Zero, errors.New("empty bybit wallet balance response")
	}

	for _, coin := range res.Result.List[0].Coin {
		if string(coin.Coin) != asset {
			continue
		}

		wallet, err := parseAmount(coin.WalletBalance)
		if err != nil {
			return decimal.Zero, errors.Wrapf(err, "failed to parse wallet balance of %s", asset)
		}
		locked, err := parseAmount(coin.Locked)
		if err != nil {
			return decimal.Zero, errors.Wrapf(err, "failed to parse locked balance of %s", asset)
		}
		return wallet.Sub(locked), nil
	}

	return decimal.Zero, errors.Errorf("asset %s not found in bybit account", asset)
}

// parseAmount treats the empty strings Bybit returns for untouched fields as zero.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
