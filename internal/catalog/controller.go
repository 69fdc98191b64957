package catalog

import (
	"context"
	"log/slog"
	"sync"
)

// Options configures a Controller
type Options struct {
	Source       Source
	KV           KV
	DefaultQuery string
	PageSize     int
	// DiscardStale drops fetch results superseded by a newer fetch of the same kind
	DiscardStale bool
	Logger       *slog.Logger
	// Runner starts a fetch job; defaults to a new goroutine
	Runner func(func())
	// Context bounds fetches issued before Start; defaults to context.Background
	Context context.Context
}

// Controller connects the store to the fetcher and the persistence bridge.
// Dispatch is safe for concurrent use. A transition, its persistence writes and the
// preparation of its fetches happen under one lock, so the persisted query and
// watchlist always match the latest state.
type Controller struct {
	store   *Store
	fetcher *Fetcher
	bridge  *Bridge
	logger  *slog.Logger
	runner  func(func())

	ctx      context.Context
	inflight sync.WaitGroup

	// txn serializes transitions with their effects
	txn sync.Mutex

	mu        sync.Mutex
	listeners []func(State)
}

// NewController loads persisted state and builds a controller. Call Start to issue
// the initial search.
func NewController(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	runner := opts.Runner
	if runner == nil {
		runner = func(f func()) { go f() }
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	bridge := NewBridge(opts.KV, opts.DefaultQuery, logger)
	query, watchlist := bridge.Load()

	return &Controller{
		store:   NewStore(NewState(query, watchlist, opts.PageSize)),
		fetcher: NewFetcher(opts.Source, opts.DiscardStale, logger),
		bridge:  bridge,
		logger:  logger,
		runner:  runner,
		ctx:     ctx,
	}
}

// Subscribe registers fn to be called with the new state after every transition
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Start issues the startup search for the initial query. ctx bounds every fetch.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	c.ctx = ctx
	c.mu.Unlock()

	c.txn.Lock()
	jobs := c.apply(FetchResults{Query: c.store.State().Query})
	c.txn.Unlock()
	c.run(jobs)
}

// State returns the current state
func (c *Controller) State() State {
	return c.store.State()
}

// Dispatch applies a, runs the effects it implies and notifies subscribers
func (c *Controller) Dispatch(a Action) {
	c.DispatchIf(a, nil)
}

// DispatchIf is Dispatch guarded by current. The check runs under the same lock
// as the transition, so no other transition lands between the two.
func (c *Controller) DispatchIf(a Action, current func() bool) {
	c.txn.Lock()
	if current != nil && !current() {
		c.txn.Unlock()
		return
	}
	prev, next := c.store.Dispatch(a)
	jobs := c.apply(Effects(prev, next)...)
	c.txn.Unlock()

	c.run(jobs)

	c.mu.Lock()
	listeners := append([]func(State){}, c.listeners...)
	c.mu.Unlock()
	for _, fn := range listeners {
		fn(next)
	}
}

// Retry re-issues the fetch behind the current view: the selected show's detail,
// or the current query's results
func (c *Controller) Retry() {
	c.txn.Lock()
	state := c.store.State()
	var jobs []Job
	if state.SelectedID != nil {
		jobs = c.apply(FetchDetail{ID: *state.SelectedID})
	} else {
		jobs = c.apply(FetchResults{Query: state.Query})
	}
	c.txn.Unlock()
	c.run(jobs)
}

// Wait blocks until every started fetch has finished
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// apply performs persistence effects and prepares fetch jobs. Callers hold txn.
func (c *Controller) apply(effects ...Effect) []Job {
	var jobs []Job
	for _, effect := range effects {
		switch e := effect.(type) {
		case PersistQuery:
			if err := c.bridge.SaveQuery(e.Query); err != nil {
				c.logger.Error("failed to save query", "error", err)
			}
		case PersistWatchlist:
			if err := c.bridge.SaveWatchlist(e.Watchlist); err != nil {
				c.logger.Error("failed to save watchlist", "error", err)
			}
		case FetchResults:
			jobs = append(jobs, c.fetcher.Results(e.Query))
		case FetchDetail:
			jobs = append(jobs, c.fetcher.Detail(e.ID))
		}
	}
	return jobs
}

func (c *Controller) run(jobs []Job) {
	c.mu.Lock()
	ctx := c.ctx
	c.mu.Unlock()

	for _, job := range jobs {
		c.inflight.Add(1)
		c.runner(func() {
			defer c.inflight.Done()
			job(ctx, c.DispatchIf)
		})
	}
}
