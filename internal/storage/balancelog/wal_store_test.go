package balancelog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stablewatch/internal/entity"
)

func newTestStore(t *testing.T) *WALStore {
	t.Helper()

	store, err := NewWALStore(t.TempDir())
	require.NoError(t, err, "failed to open balance log")
	t.Cleanup(func() {
		assert.NoError(t, store.Close(), "failed to close balance log")
	})

	return store
}

func TestLatestOnEmptyLogReturnsBlankRecord(t *testing.T) {
	store := newTestStore(t)

	record, err := store.Latest()
	require.NoError(t, err, "empty log must not be an error")

	assert.True(t, record.Value.IsZero())
	_, err = time.Parse(entity.TimeLayout, record.Timestamp)
	assert.NoError(t, err, "blank record timestamp must be well-formed")
}

func TestLatestIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Store(decimal.NewFromFloat(42.5)))

	first, err := store.Latest()
	require.NoError(t, err)
	second, err := store.Latest()
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated reads without a store must match")
}

func TestLatestReflectsLastAppend(t *testing.T) {
	store := newTestStore(t)

	values := []decimal.Decimal{
		decimal.NewFromInt(10),
		decimal.NewFromFloat(20.75),
		decimal.NewFromInt(15),
	}
	for _, v := range values {
		require.NoError(t, store.Store(v))
	}

	record, err := store.Latest()
	require.NoError(t, err)
	assert.True(t, record.Value.Equal(decimal.NewFromInt(15)), "got %s", record.Value)
}

func TestStoreThenLatestRoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Store(decimal.NewFromFloat(1234.56)))

	record, err := store.Latest()
	require.NoError(t, err)
	assert.True(t, record.Value.Equal(decimal.NewFromFloat(1234.56)), "got %s", record.Value)
	_, err = time.Parse(entity.TimeLayout, record.Timestamp)
	assert.NoError(t, err, "stored record timestamp must be well-formed")
}

func TestStoreStampsRecordFromClock(t *testing.T) {
	store := newTestStore(t)
	at := time.Date(2024, 3, 7, 12, 30, 45, 0, time.UTC)
	store.now = func() time.Time { return at }

	require.NoError(t, store.Store(decimal.NewFromInt(100)))

	record, err := store.Latest()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-07 12:30:45", record.Timestamp)
}
