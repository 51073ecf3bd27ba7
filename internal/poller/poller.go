package poller

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/justinpbarnett/labmon/internal/events"
	"go.uber.org/zap"
)

// Interval is the fixed cadence between scheduled fetches.
const Interval = 5 * time.Second

// Trigger records what caused a fetch.
type Trigger string

const (
	TriggerStart   Trigger = "start"
	TriggerTick    Trigger = "tick"
	TriggerRefresh Trigger = "refresh"
)

// Fetcher retrieves the current event list.
type Fetcher interface {
	Fetch(ctx context.Context) ([]events.Event, error)
}

// Result is the outcome of a single fetch.
type Result struct {
	Seq       uint64
	RequestID string
	Trigger   Trigger
	Events    []events.Event
	Err       error
	Started   time.Time
	Finished  time.Time
}

// Option configures a Poller.
type Option func(*Poller)

// WithLogger sets the logger used for fetch lifecycle messages.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(p *Poller) {
		if l != nil {
			p.logger = l
		}
	}
}

// withInterval overrides the cadence. Tests only.
func withInterval(d time.Duration) Option {
	return func(p *Poller) { p.interval = d }
}

// withTicker swaps the timer source. Tests only.
func withTicker(fn func(time.Duration) ticker) Option {
	return func(p *Poller) { p.newTicker = fn }
}

// Poller invokes a Fetcher once on Start and then on every tick until Stop.
//
// Fetches are never de-duplicated: a Refresh during a scheduled fetch runs
// alongside it, and results are delivered on Results in completion order.
// Consumers that apply results in arrival order therefore get
// last-write-wins. In-flight fetches are not aborted by Stop; their results
// are discarded instead of delivered.
type Poller struct {
	fetcher   Fetcher
	interval  time.Duration
	newTicker func(time.Duration) ticker
	logger    *zap.SugaredLogger
	results   chan Result

	seq      atomic.Uint64
	inFlight atomic.Int64

	mu     sync.Mutex
	active bool
	ctx    context.Context
	stop   chan struct{}
	done   chan struct{}
}

func New(f Fetcher, opts ...Option) *Poller {
	p := &Poller{
		fetcher:   f,
		interval:  Interval,
		newTicker: newRealTicker,
		logger:    zap.NewNop().Sugar(),
		results:   make(chan Result),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Results delivers one Result per fetch while the poller is active.
func (p *Poller) Results() <-chan Result {
	return p.results
}

// Active reports whether the timer is running.
func (p *Poller) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// InFlight returns the number of fetches that have not completed yet.
func (p *Poller) InFlight() int {
	return int(p.inFlight.Load())
}

// Start fetches immediately and then arms the repeating timer. ctx bounds
// the fetches themselves, not the timer. Starting an active poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.active {
		p.mu.Unlock()
		return
	}
	p.active = true
	p.ctx = ctx
	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	stop, done := p.stop, p.done
	t := p.newTicker(p.interval)
	p.mu.Unlock()

	p.logger.Infow("poller started", "interval", p.interval.String())
	p.invoke(ctx, TriggerStart, stop)
	go p.loop(ctx, t, stop, done)
}

// Refresh fetches immediately without touching the timer's phase.
// It is ignored while the poller is stopped.
func (p *Poller) Refresh() {
	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return
	}
	ctx, stop := p.ctx, p.stop
	p.mu.Unlock()

	p.invoke(ctx, TriggerRefresh, stop)
}

// Stop cancels the timer and waits for the tick loop to exit, so no fetch
// is started after Stop returns. Stopping a stopped poller is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return
	}
	p.active = false
	close(p.stop)
	done := p.done
	p.mu.Unlock()

	<-done
	p.logger.Infow("poller stopped", "in_flight", p.InFlight())
}

func (p *Poller) loop(ctx context.Context, t ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			// stop may be closed concurrently with a pending tick.
			select {
			case <-stop:
				return
			default:
			}
			p.invoke(ctx, TriggerTick, stop)
		}
	}
}

func (p *Poller) invoke(ctx context.Context, trigger Trigger, stop <-chan struct{}) {
	r := Result{
		Seq:       p.seq.Add(1),
		RequestID: uuid.NewString(),
		Trigger:   trigger,
		Started:   time.Now(),
	}
	p.inFlight.Add(1)
	p.logger.Debugw("fetch started", "seq", r.Seq, "request_id", r.RequestID, "trigger", string(trigger))

	go func() {
		r.Events, r.Err = p.fetcher.Fetch(ctx)
		r.Finished = time.Now()
		p.inFlight.Add(-1)

		select {
		case <-stop:
			p.logger.Debugw("fetch result dropped after stop", "seq", r.Seq, "request_id", r.RequestID)
			return
		default:
		}
		select {
		case p.results <- r:
		case <-stop:
			p.logger.Debugw("fetch result dropped after stop", "seq", r.Seq, "request_id", r.RequestID)
		}
	}()
}
