package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

func ptr[T any](v T) *T {
	return &v
}

func show(id int, name, language string, rating *float64, genres ...string) Show {
	return Show{
		ID:       id,
		Name:     name,
		Language: language,
		Genres:   genres,
		Rating:   Rating{Average: rating},
	}
}

func numbered(n int) []Show {
	shows := make([]Show, n)
	for i := range shows {
		shows[i] = show(i+1, fmt.Sprintf("Show %d", i+1), "English", ptr(7.0), "Drama")
	}
	return shows
}

// fakeSource serves canned responses; a query or show id with a gate blocks until the gate is closed
type fakeSource struct {
	mu          sync.Mutex
	results     map[string][]Show
	searchGates map[string]chan struct{}
	searchErr   error
	shows       map[int]Show
	episodes    map[int][]Episode
	showErr     error
	episodesErr error
	calls       []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		results:     make(map[string][]Show),
		searchGates: make(map[string]chan struct{}),
		shows:       make(map[int]Show),
		episodes:    make(map[int][]Episode),
	}
}

func (f *fakeSource) gate(query string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.searchGates[query] = ch
	return ch
}

func (f *fakeSource) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeSource) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.calls...)
}

func (f *fakeSource) SearchShows(ctx context.Context, query string) ([]Show, error) {
	f.record("search:" + query)
	f.mu.Lock()
	gate := f.searchGates[query]
	f.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.results[query], nil
}

func (f *fakeSource) GetShow(ctx context.Context, id int) (*Show, error) {
	f.record(fmt.Sprintf("show:%d", id))
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.showErr != nil {
		return nil, f.showErr
	}
	s, ok := f.shows[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &s, nil
}

func (f *fakeSource) GetEpisodes(ctx context.Context, id int) ([]Episode, error) {
	f.record(fmt.Sprintf("episodes:%d", id))
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.episodesErr != nil {
		return nil, f.episodesErr
	}
	return f.episodes[id], nil
}

// collector records dispatched actions
type collector struct {
	mu      sync.Mutex
	actions []Action
}

func (c *collector) dispatch(a Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.actions = append(c.actions, a)
}

func (c *collector) dispatchIf(a Action, current func() bool) {
	Dispatch(c.dispatch).Checked(a, current)
}

func (c *collector) Actions() []Action {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Action{}, c.actions...)
}
