package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Keys under which the bridge mirrors state
const (
	QueryKey     = "showshelf.query"
	WatchlistKey = "showshelf.watchlist"
)

// KV is a durable string key-value store
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Bridge mirrors the query and watchlist slices to a KV store
type Bridge struct {
	kv           KV
	defaultQuery string
	logger       *slog.Logger
}

// NewBridge creates a bridge. An empty defaultQuery falls back to DefaultQuery.
func NewBridge(kv KV, defaultQuery string, logger *slog.Logger) *Bridge {
	if defaultQuery == "" {
		defaultQuery = DefaultQuery
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Bridge{kv: kv, defaultQuery: defaultQuery, logger: logger}
}

// Load reads the persisted query and watchlist. Missing or unreadable values fall back
// to the default query and an empty watchlist.
func (b *Bridge) Load() (string, []Show) {
	return b.loadQuery(), b.loadWatchlist()
}

func (b *Bridge) loadQuery() string {
	query, ok, err := b.kv.Get(QueryKey)
	if err != nil {
		b.logger.Warn("failed to load persisted query", "error", err)
		return b.defaultQuery
	}
	if !ok {
		return b.defaultQuery
	}
	return query
}

func (b *Bridge) loadWatchlist() []Show {
	raw, ok, err := b.kv.Get(WatchlistKey)
	if err != nil {
		b.logger.Warn("failed to load persisted watchlist", "error", err)
		return []Show{}
	}
	if !ok {
		return []Show{}
	}

	var watchlist []Show
	if err := json.Unmarshal([]byte(raw), &watchlist); err != nil {
		b.logger.Warn("ignoring malformed persisted watchlist", "error", err)
		return []Show{}
	}
	return dedupe(watchlist)
}

// SaveQuery writes query verbatim
func (b *Bridge) SaveQuery(query string) error {
	if err := b.kv.Set(QueryKey, query); err != nil {
		return fmt.Errorf("failed to persist query: %w", err)
	}
	return nil
}

// SaveWatchlist writes the full watchlist as a JSON array
func (b *Bridge) SaveWatchlist(watchlist []Show) error {
	if watchlist == nil {
		watchlist = []Show{}
	}
	data, err := json.Marshal(watchlist)
	if err != nil {
		return fmt.Errorf("failed to encode watchlist: %w", err)
	}
	if err := b.kv.Set(WatchlistKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist watchlist: %w", err)
	}
	return nil
}

// dedupe keeps the first entry for each id; stored data may predate the uniqueness rule
func dedupe(shows []Show) []Show {
	seen := make(map[int]struct{}, len(shows))
	out := make([]Show, 0, len(shows))
	for _, show := range shows {
		if _, ok := seen[show.ID]; ok {
			continue
		}
		seen[show.ID] = struct{}{}
		out = append(out, show)
	}
	return out
}

// MemoryKV is an in-process KV store
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates an empty MemoryKV
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// Get implements KV
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	return value, ok, nil
}

// Set implements KV
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
