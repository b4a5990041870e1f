package balance

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	free map[string]decimal.Decimal
	fail map[string]error
}

func (s *stubSource) FreeBalance(_ context.Context, asset string) (decimal.Decimal, error) {
	if err, ok := s.fail[asset]; ok {
		return decimal.Zero, err
	}
	if free, ok := s.free[asset]; ok {
		return free, nil
	}
	return decimal.Zero, errors.Errorf("asset %s not found", asset)
}

func TestTotalFreeBalanceSumsConfiguredAssets(t *testing.T) {
	source := &stubSource{free: map[string]decimal.Decimal{
		"BUSD": decimal.NewFromFloat(100.5),
		"USDT": decimal.NewFromFloat(200.25),
		"USDC": decimal.NewFromFloat(0.25),
	}}
	reader := NewReader(source, []string{"BUSD", "USDT", "USDC"})

	total, err := reader.TotalFreeBalance(context.Background())
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromFloat(301)), "got %s", total)
}

func TestTotalFreeBalanceFailsFast(t *testing.T) {
	source := &stubSource{
		free: map[string]decimal.Decimal{
			"BUSD": decimal.NewFromInt(100),
			"USDC": decimal.NewFromInt(300),
		},
		fail: map[string]error{
			"USDT": errors.New("binance: request rejected"),
		},
	}
	reader := NewReader(source, []string{"BUSD", "USDT", "USDC"})

	total, err := reader.TotalFreeBalance(context.Background())
	require.Error(t, err, "one failing asset must fail the whole read")
	assert.Contains(t, err.Error(), "USDT")
	assert.True(t, total.IsZero(), "no partial sum may leak out")
}

func TestTotalFreeBalanceUnknownAsset(t *testing.T) {
	source := &stubSource{free: map[string]decimal.Decimal{
		"USDT": decimal.NewFromInt(50),
	}}
	reader := NewReader(source, []string{"USDT", "DOGE"})

	_, err := reader.TotalFreeBalance(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DOGE")
}
