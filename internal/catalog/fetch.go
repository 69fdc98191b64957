package catalog

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Source is the remote show catalog
type Source interface {
	SearchShows(ctx context.Context, query string) ([]Show, error)
	GetShow(ctx context.Context, id int) (*Show, error)
	GetEpisodes(ctx context.Context, showID int) ([]Episode, error)
}

// Dispatch delivers an action to the state store
type Dispatch func(Action)

// Checked dispatches a when current is nil or reports true. The check and the
// dispatch are not atomic; Controller provides an atomic DispatchIf.
func (d Dispatch) Checked(a Action, current func() bool) {
	if current == nil || current() {
		d(a)
	}
}

// DispatchIf delivers a only if current, when non-nil, still reports true at the
// moment the store applies it
type DispatchIf func(a Action, current func() bool)

// Job is a prepared fetch. It dispatches a begin action, performs the remote calls,
// then dispatches the outcome.
type Job func(ctx context.Context, dispatch DispatchIf)

// Fetcher turns remote calls into actions
type Fetcher struct {
	source       Source
	discardStale bool
	logger       *slog.Logger

	searchGen atomic.Uint64
	detailGen atomic.Uint64
}

// NewFetcher creates a fetcher over source. With discardStale set, a job whose
// generation has been superseded by a newer job of the same kind dispatches nothing.
func NewFetcher(source Source, discardStale bool, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		source:       source,
		discardStale: discardStale,
		logger:       logger,
	}
}

// Results prepares a search for query. The generation is taken now, not when the job runs.
func (f *Fetcher) Results(query string) Job {
	gen := f.searchGen.Add(1)
	return func(ctx context.Context, dispatch DispatchIf) {
		log := f.logger.With("request_id", uuid.NewString(), "query", query, "generation", gen)
		send := f.guard(&f.searchGen, gen, log, dispatch)

		send(BeginSearch{})
		log.Debug("searching shows")

		shows, err := f.source.SearchShows(ctx, query)
		if err != nil {
			log.Warn("search failed", "error", err)
			send(SearchFailed{})
			return
		}

		log.Debug("search complete", "results", len(shows))
		send(SearchSucceeded{Shows: shows})
	}
}

// Detail prepares a fetch of show id and its episodes. Both calls run concurrently
// and both must succeed.
func (f *Fetcher) Detail(id int) Job {
	gen := f.detailGen.Add(1)
	return func(ctx context.Context, dispatch DispatchIf) {
		log := f.logger.With("request_id", uuid.NewString(), "show_id", id, "generation", gen)
		send := f.guard(&f.detailGen, gen, log, dispatch)

		send(BeginDetailFetch{})
		log.Debug("fetching show detail")

		var (
			show     *Show
			episodes []Episode
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			show, err = f.source.GetShow(gctx, id)
			return err
		})
		g.Go(func() error {
			var err error
			episodes, err = f.source.GetEpisodes(gctx, id)
			return err
		})

		if err := g.Wait(); err != nil {
			log.Warn("detail fetch failed", "error", err)
			send(SearchFailed{})
			return
		}

		log.Debug("detail fetch complete", "episodes", len(episodes))
		send(DetailFetchSucceeded{Show: *show, Episodes: episodes})
	}
}

// FetchResults runs a search synchronously
func (f *Fetcher) FetchResults(ctx context.Context, query string, dispatch Dispatch) {
	f.Results(query)(ctx, dispatch.Checked)
}

// FetchDetail runs a detail fetch synchronously
func (f *Fetcher) FetchDetail(ctx context.Context, id int, dispatch Dispatch) {
	f.Detail(id)(ctx, dispatch.Checked)
}

// guard returns the send function of one job. With discardStale set, every action
// carries a check that the job is still the latest of its kind.
func (f *Fetcher) guard(latest *atomic.Uint64, gen uint64, log *slog.Logger, dispatch DispatchIf) Dispatch {
	if !f.discardStale {
		return func(a Action) { dispatch(a, nil) }
	}
	current := func() bool {
		if newest := latest.Load(); newest != gen {
			log.Info("discarding superseded fetch result", "latest_generation", newest)
			return false
		}
		return true
	}
	return func(a Action) { dispatch(a, current) }
}
