package extractor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/kasuboski/reelinfo/config"
	"github.com/kasuboski/reelinfo/pkg/extract"
	"github.com/kasuboski/reelinfo/pkg/logger"
	"github.com/kasuboski/reelinfo/pkg/machine"
	"github.com/kasuboski/reelinfo/pkg/pattern"
	"github.com/kasuboski/reelinfo/pkg/publisher"
	"github.com/kasuboski/reelinfo/pkg/queue"
	"go.uber.org/zap"
)

// ProviderName identifies results produced from filename text
const ProviderName = "filename"

type State string

const (
	StateIdle          State = "idle"
	StateRunning       State = "running"
	StateStopRequested State = "stop-requested"
	StateStopped       State = "stopped"
)

var (
	ErrStopped    = errors.New("extractor is stopped")
	ErrNotStarted = errors.New("extractor has not been started")
)

// Loader supplies the pattern configuration when the extractor starts or reloads
type Loader interface {
	LoadPatterns(ctx context.Context) (config.Patterns, error)
}

// LoaderFunc adapts a function to a Loader
type LoaderFunc func(ctx context.Context) (config.Patterns, error)

func (f LoaderFunc) LoadPatterns(ctx context.Context) (config.Patterns, error) {
	return f(ctx)
}

// Status is a point in time view of the extractor
type Status struct {
	Provider  string `json:"provider"`
	State     State  `json:"state"`
	Queued    int    `json:"queued"`
	Processed int64  `json:"processed"`
	Failed    int64  `json:"failed"`
}

// Extractor owns the request queue and a single worker goroutine that turns each
// submitted path into a result for the publisher. Paths are processed one at a time
// in submission order.
type Extractor struct {
	publisher publisher.Publisher
	loader    Loader
	patterns  *pattern.Holder
	queue     *queue.Queue[string]
	state     *machine.StateMachine[State]

	stopRequested atomic.Bool
	processed     atomic.Int64
	failed        atomic.Int64

	// pending counts submitted paths not yet processed or discarded. idle is closed
	// whenever it is zero.
	pendingMu sync.Mutex
	pending   int64
	idle      chan struct{}

	mu        sync.Mutex
	cancelPop context.CancelFunc
	discarded []string
	done      chan struct{}
}

// New creates an idle extractor. A nil loader uses the built-in patterns.
func New(pub publisher.Publisher, loader Loader) *Extractor {
	idle := make(chan struct{})
	close(idle)

	return &Extractor{
		publisher: pub,
		loader:    loader,
		patterns:  pattern.NewHolder(nil),
		queue:     queue.New[string](),
		state: machine.New(StateIdle,
			machine.From(StateIdle).To(StateRunning),
			machine.From(StateRunning).To(StateStopRequested, StateStopped),
			machine.From(StateStopRequested).To(StateStopped),
		),
		idle: idle,
		done: make(chan struct{}),
	}
}

// Name returns the provider name recorded with every result
func (e *Extractor) Name() string {
	return ProviderName
}

// Start loads the pattern configuration and launches the worker. Cancelling ctx
// stops the worker after the item in flight.
func (e *Extractor) Start(ctx context.Context) error {
	log := logger.FromCtx(ctx, "provider", ProviderName)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.state.Transition(StateRunning); err != nil {
		return fmt.Errorf("failed to start extractor: %w", err)
	}

	e.load(ctx)

	popCtx, cancel := context.WithCancel(ctx)
	e.cancelPop = cancel

	go e.run(logger.WithCtx(context.WithoutCancel(ctx), log), popCtx)

	log.Info("extractor started")
	return nil
}

// Submit queues paths for extraction in the order given. It never blocks on the
// worker. Once a stop has been requested every submission is refused with ErrStopped.
func (e *Extractor) Submit(ctx context.Context, paths ...string) error {
	log := logger.FromCtx(ctx)

	if e.stopRequested.Load() || e.state.Current() == StateStopped {
		log.Warnw("extractor is stopped, ignoring submitted paths", "count", len(paths))
		return ErrStopped
	}

	e.addPending(len(paths))
	if err := e.queue.Push(paths...); err != nil {
		e.addPending(-len(paths))
		log.Warnw("extractor is stopped, ignoring submitted paths", "count", len(paths))
		return ErrStopped
	}

	log.Debugw("queued paths for extraction", "count", len(paths))
	return nil
}

// Stop asks the worker to finish the item in flight and exit. Paths still queued are
// not processed: they are logged and returned to the caller. When the worker already
// exited because its context was cancelled, the paths it discarded are returned once.
func (e *Extractor) Stop(ctx context.Context) ([]string, error) {
	log := logger.FromCtx(ctx)

	e.mu.Lock()
	if e.state.Current() == StateIdle {
		e.mu.Unlock()
		return nil, ErrNotStarted
	}

	e.stopRequested.Store(true)
	// already stopping or stopped when this fails
	_ = e.state.Transition(StateStopRequested)
	cancel := e.cancelPop
	e.mu.Unlock()

	cancel()

	select {
	case <-e.done:
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for extractor to stop: %w", ctx.Err())
	}

	remaining := e.discard(ctx)

	e.mu.Lock()
	if len(remaining) == 0 {
		remaining = e.discarded
	}
	e.discarded = nil
	e.mu.Unlock()

	log.Info("extractor stopped")
	return remaining, nil
}

// Wait blocks until every submitted path has been processed or discarded. It returns
// ErrStopped when the worker exits with paths still queued.
func (e *Extractor) Wait(ctx context.Context) error {
	e.pendingMu.Lock()
	idle := e.idle
	e.pendingMu.Unlock()

	select {
	case <-idle:
		return nil
	case <-e.done:
		if e.pendingCount() == 0 {
			return nil
		}
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reconfigure builds a new pattern set and makes it active for the next item.
// Invalid patterns keep their defaults.
func (e *Extractor) Reconfigure(ctx context.Context, cfg config.Patterns) {
	set, diags := pattern.Build(cfg)
	logDiagnostics(ctx, diags)
	e.patterns.Swap(set)
}

// Reload asks the loader for the pattern configuration again and applies it
func (e *Extractor) Reload(ctx context.Context) {
	e.load(ctx)
}

// Patterns returns the active pattern set
func (e *Extractor) Patterns() *pattern.Set {
	return e.patterns.Load()
}

func (e *Extractor) State() State {
	return e.state.Current()
}

func (e *Extractor) Status() Status {
	return Status{
		Provider:  ProviderName,
		State:     e.state.Current(),
		Queued:    e.queue.Len(),
		Processed: e.processed.Load(),
		Failed:    e.failed.Load(),
	}
}

func (e *Extractor) load(ctx context.Context) {
	log := logger.FromCtx(ctx)

	var cfg config.Patterns
	if e.loader != nil {
		loaded, err := e.loader.LoadPatterns(ctx)
		if err != nil {
			log.Errorw("failed to load pattern configuration, using defaults", zap.Error(err))
		} else {
			cfg = loaded
		}
	}

	e.Reconfigure(ctx, cfg)
}

func (e *Extractor) run(ctx context.Context, popCtx context.Context) {
	log := logger.FromCtx(ctx)
	defer close(e.done)

	for !e.stopRequested.Load() && popCtx.Err() == nil {
		path, err := e.queue.Pop(popCtx)
		if err != nil {
			if !isInterrupt(err) {
				log.Errorw("failed to read request queue", zap.Error(err))
			}
			break
		}

		e.process(ctx, path)
	}

	// cancelled by the parent context rather than Stop
	if !e.stopRequested.Load() {
		remaining := e.discard(ctx)
		e.mu.Lock()
		e.discarded = remaining
		e.mu.Unlock()
	}

	if err := e.state.Transition(StateStopped); err != nil {
		log.Errorw("unexpected extractor state", zap.Error(err))
	}
}

// process extracts and publishes a single path. A panic is confined to the path that
// caused it.
func (e *Extractor) process(ctx context.Context, path string) {
	log := logger.FromCtx(ctx, "path", path)

	defer e.addPending(-1)
	defer func() {
		if r := recover(); r != nil {
			e.failed.Add(1)
			log.Errorw("recovered from panic while extracting", "panic", r)
		}
	}()

	result := extract.Extract(path, e.patterns.Load())
	if err := e.publisher.Publish(ctx, result); err != nil {
		e.failed.Add(1)
		log.Errorw("failed to publish result", zap.Error(err))
		return
	}

	e.processed.Add(1)
}

// discard closes the queue and reports the paths that will never be processed
func (e *Extractor) discard(ctx context.Context) []string {
	remaining := e.queue.Close()
	e.addPending(-len(remaining))
	if len(remaining) > 0 {
		logger.FromCtx(ctx).Warnw("extractor stopped with unprocessed paths", "count", len(remaining), "paths", remaining)
	}
	return remaining
}

func (e *Extractor) addPending(n int) {
	e.pendingMu.Lock()
	defer e.pendingMu.Unlock()

	before := e.pending
	e.pending += int64(n)
	switch {
	case before == 0 && e.pending > 0:
		e.idle = make(chan struct{})
	case before > 0 && e.pending == 0:
		close(e.idle)
	}
}

func (e *Extractor) pendingCount() int64 {
	e.pendingMu.Lock()
	defer e.pendingMu.Unlock()
	return e.pending
}

func isInterrupt(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, queue.ErrClosed)
}

func logDiagnostics(ctx context.Context, diags pattern.Diagnostics) {
	log := logger.FromCtx(ctx)
	for _, d := range diags {
		if errors.Is(d, pattern.ErrNotConfigured) {
			log.Debugw("pattern not configured, using default", "role", d.Role)
			continue
		}
		log.Errorw("invalid pattern, using default", "role", d.Role, "pattern", d.Pattern, zap.Error(d.Err))
	}
}
