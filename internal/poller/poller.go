package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sven-0414/nhl-data-service/internal/domain"
	"github.com/sven-0414/nhl-data-service/internal/logging"
	"github.com/sven-0414/nhl-data-service/internal/metrics"
	"github.com/sven-0414/nhl-data-service/internal/timeutil"
)

const (
	defaultInterval     = 5 * time.Minute
	defaultBackfillDays = 7
)

// ScheduleSource serves games for a calendar date, fetching and persisting
// on a miss. The schedule cache satisfies this.
type ScheduleSource interface {
	GamesByDate(ctx context.Context, date string) ([]domain.Game, error)
}

// Poller warms the store on an interval by requesting recent past dates
// through the schedule cache. Dates already persisted are cheap hits; dates
// never requested by a client get fetched and stored, so restarts and quiet
// periods do not leave holes in the history.
type Poller struct {
	source       ScheduleSource
	logger       *slog.Logger
	metrics      *metrics.Recorder
	interval     time.Duration
	backfillDays int
	now          func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the backfill loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(source ScheduleSource, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration, backfillDays int) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	if backfillDays <= 0 {
		backfillDays = defaultBackfillDays
	}
	return &Poller{
		source:       source,
		logger:       logger,
		metrics:      recorder,
		interval:     interval,
		backfillDays: backfillDays,
		now:          time.Now,
		done:         make(chan struct{}),
	}
}

// Start begins the backfill loop until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("backfill started",
			slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()),
			slog.Int("days", p.backfillDays),
		)
		// Initial cycle to warm the store on boot.
		p.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("backfill stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("backfill stopped")
				return
			case <-p.ticker.C:
				p.runOnce(ctx)
			}
		}
	}()
}

// Stop halts the backfill loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// runOnce warms yesterday back through backfillDays. Today is excluded: the
// cache would refuse to persist a live-required date anyway.
func (p *Poller) runOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)
	today := timeutil.FormatDate(p.now().UTC())

	var firstErr error
	warmed := 0
	for offset := 1; offset <= p.backfillDays; offset++ {
		if ctx.Err() != nil {
			return
		}
		date := timeutil.AddDays(today, -offset)
		if _, err := p.source.GamesByDate(ctx, date); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			p.logError("backfill date failed", err, slog.String(logging.FieldDate, date))
			continue
		}
		warmed++
	}

	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), firstErr)
	}
	if firstErr != nil {
		p.recordFailure(firstErr, start)
		return
	}
	p.recordSuccess(start)
	p.logInfo("backfill cycle complete",
		slog.Int(logging.FieldCount, warmed),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
