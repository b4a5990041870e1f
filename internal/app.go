package internal

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"stablewatch/internal/entity"
	"stablewatch/internal/services/notifier"
	"stablewatch/internal/services/tracker"
)

// Tracker runs one measurement cycle.
type Tracker interface {
	Cycle(ctx context.Context) (tracker.Result, error)
}

// Notifier delivers a composed message to the chat sink.
type Notifier interface {
	Deliver(msg entity.Message) notifier.Outcome
}

// Recorder appends an observation row to the spreadsheet sink.
type Recorder interface {
	Append(ctx context.Context, timestamp string, balance decimal.Decimal) error
}

// App wires one full pass: measure, persist, compose, deliver. The record is
// persisted inside the tracker before any sink runs, so sink failures can
// never roll it back.
type App struct {
	tracker  Tracker
	composer *notifier.Composer
	chat     Notifier
	recorder Recorder
	now      func() time.Time
	logger   *zap.Logger
}

// NewApp creates the orchestrator. recorder may be nil when spreadsheet
// recording is disabled.
func NewApp(trk Tracker, composer *notifier.Composer, chat Notifier, recorder Recorder, logger *zap.Logger) *App {
	return &App{
		tracker:  trk,
		composer: composer,
		chat:     chat,
		recorder: recorder,
		now:      time.Now,
		logger:   logger,
	}
}

// Run executes one cycle. A failure before or during persistence aborts the
// run; failures in the delivery sinks are logged and swallowed.
func (a *App) Run(ctx context.Context) error {
	res, err := a.tracker.Cycle(ctx)
	if err != nil {
		return errors.Wrap(err, "balance cycle")
	}

	msg := a.composer.Compose(res.Current, res.Delta)
	a.logger.Info(msg.Text)

	a.chat.Deliver(msg)

	if a.recorder != nil {
		if err := a.recorder.Append(ctx, entity.Timestamp(a.now()), res.Current); err != nil {
			a.logger.Warn("spreadsheet append failed", zap.Error(err))
		}
	}

	return nil
}
