// Package notifier composes balance-change notifications and delivers them.
package notifier

import (
	"fmt"

	"github.com/shopspring/decimal"

	"stablewatch/internal/entity"
)

type category int

const (
	categoryStronglyPositive category = iota
	categoryPositive
	categoryNegative
)

const (
	glyphFire        = "\U0001F525"
	glyphGreenSquare = "\U0001F7E9"
	glyphRedSquare   = "\U0001F7E5"
)

// strongDeltaThreshold marks a change worth celebrating.
var strongDeltaThreshold = decimal.NewFromInt(100)

// classify maps a delta to its category. First match wins: >= 100 is
// strongly positive, >= 0 positive, anything below negative.
func classify(delta decimal.Decimal) category {
	switch {
	case delta.GreaterThanOrEqual(strongDeltaThreshold):
		return categoryStronglyPositive
	case delta.GreaterThanOrEqual(decimal.Zero):
		return categoryPositive
	default:
		return categoryNegative
	}
}

func (c category) glyph() string {
	switch c {
	case categoryStronglyPositive:
		return glyphFire
	case categoryPositive:
		return glyphGreenSquare
	default:
		return glyphRedSquare
	}
}

// Composer builds notification messages bound to a chat destination.
type Composer struct {
	chatID int64
}

func NewComposer(chatID int64) *Composer {
	return &Composer{chatID: chatID}
}

// Compose renders the balance and its change into a message. Pure: the same
// inputs always produce the same text. Amounts render with exactly two
// decimal places, negative deltas carry the minus inside the number.
func (c *Composer) Compose(balance, delta decimal.Decimal) entity.Message {
	text := fmt.Sprintf("%s Balance: $%s, Change: $%s",
		classify(delta).glyph(), balance.StringFixed(2), delta.StringFixed(2))

	return entity.Message{
		Text:   text,
		ChatID: c.chatID,
	}
}
