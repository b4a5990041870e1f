package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeLayout is the canonical timestamp layout for balance records,
// second precision, always UTC.
const TimeLayout = "2006-01-02 15:04:05"

// Timestamp renders t in the canonical record layout.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// BalanceRecord is a single balance observation. Immutable once created;
// the timestamp is always assigned at creation time, never by callers.
type BalanceRecord struct {
	Value     decimal.Decimal `json:"balance"`
	Timestamp string          `json:"timestamp"`
}

// NewBalanceRecord creates a record for value observed at the given moment.
func NewBalanceRecord(value decimal.Decimal, at time.Time) BalanceRecord {
	return BalanceRecord{
		Value:     value,
		Timestamp: Timestamp(at),
	}
}

// BlankRecord is the sentinel returned when no prior observation exists:
// zero value, fresh timestamp.
func BlankRecord(at time.Time) BalanceRecord {
	return NewBalanceRecord(decimal.Zero, at)
}
