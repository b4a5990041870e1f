// Package balancelog persists balance observations in an append-only log.
package balancelog

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/gowal"

	"stablewatch/internal/entity"
)

const (
	defaultLogDir   = "/data/db"
	logSegmentLimit = 1000
	logMaxSegments  = 100
	recordKey       = "balance"
)

// WALStore is a WAL-backed append-only log of balance records. Records are
// never mutated in place; every observation is a new append. Single-writer:
// concurrent processes writing the same directory are not synchronized.
type WALStore struct {
	wal *gowal.Wal
	now func() time.Time
	mu  sync.RWMutex
}

// NewWALStore opens (or creates) the balance log under the provided directory.
func NewWALStore(dir string) (*WALStore, error) {
	if dir == "" {
		dir = defaultLogDir
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create balance log dir")
	}

	cfg := gowal.Config{
		Dir:              dir,
		Prefix:           "balance_",
		SegmentThreshold: logSegmentLimit,
		MaxSegments:      logMaxSegments,
		IsInSyncDiskMode: true,
	}

	wal, err := gowal.NewWAL(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "init balance log WAL")
	}

	return &WALStore{wal: wal, now: time.Now}, nil
}

// Store appends a new record with the given value, stamped from the store's clock.
func (s *WALStore) Store(value decimal.Decimal) error {
	if s == nil || s.wal == nil {
		return errors.New("balance log is not initialized")
	}

	payload, err := json.Marshal(entity.NewBalanceRecord(value, s.now()))
	if err != nil {
		return errors.Wrap(err, "marshal balance record")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wal.Write(s.wal.CurrentIndex()+1, recordKey, payload)
}

// Latest returns the most recently appended record, or the blank record
// (zero value, fresh timestamp) when the log is empty. An empty log is a
// defined state, not an error.
func (s *WALStore) Latest() (entity.BalanceRecord, error) {
	if s == nil || s.wal == nil {
		return entity.BalanceRecord{}, errors.New("balance log is not initialized")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.wal.CurrentIndex()
	if idx == 0 {
		return entity.BlankRecord(s.now()), nil
	}

	_, payload, err := s.wal.Get(idx)
	if err != nil {
		return entity.BalanceRecord{}, errors.Wrap(err, "read balance record")
	}
	if payload == nil {
		return entity.BlankRecord(s.now()), nil
	}

	var record entity.BalanceRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return entity.BalanceRecord{}, errors.Wrap(err, "decode balance record")
	}

	return record, nil
}

// Close closes the underlying WAL.
func (s *WALStore) Close() error {
	if s == nil || s.wal == nil {
		return errors.New("balance log is not initialized")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wal.Close()
}
