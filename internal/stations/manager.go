package stations

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/windchart/backend-go/internal/cache"
	"github.com/windchart/backend-go/internal/forecast"
	"github.com/windchart/backend-go/internal/models"
	"golang.org/x/sync/errgroup"
)

// Manager returns the forecast series of every location, going to met.no
// only when neither cache layer holds a fresh snapshot.
type Manager struct {
	fetcher   forecast.Fetcher
	locations []models.Location
	memory    *cache.MemoryCache
	store     cache.SnapshotStore
	clock     cache.Clock

	memoryHits   atomic.Uint64
	memoryMisses atomic.Uint64
	storeHits    atomic.Uint64
	storeMisses  atomic.Uint64
	fetches      atomic.Uint64
}

type Option func(*Manager)

// WithMemoryCache enables the in-process layer
func WithMemoryCache(memory *cache.MemoryCache) Option {
	return func(m *Manager) {
		m.memory = memory
	}
}

// WithSnapshotStore enables the persistent layer
func WithSnapshotStore(store cache.SnapshotStore) Option {
	return func(m *Manager) {
		m.store = store
	}
}

func WithLocations(locations []models.Location) Option {
	return func(m *Manager) {
		m.locations = locations
	}
}

func WithClock(clock cache.Clock) Option {
	return func(m *Manager) {
		m.clock = clock
	}
}

func NewManager(fetcher forecast.Fetcher, opts ...Option) *Manager {
	m := &Manager{
		fetcher:   fetcher,
		locations: models.Locations,
		clock:     cache.SystemClock{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GetStations returns one series per location that fetched successfully,
// in location order.
func (m *Manager) GetStations(ctx context.Context) ([]models.StationSeries, error) {
	if m.memory != nil {
		if entry, ok := m.memory.Get(cache.SnapshotKey); ok {
			m.memoryHits.Add(1)
			log.Debug().Time("date", entry.Timestamp).Msg("Memory cache hit")
			return entry.Data, nil
		}
		m.memoryMisses.Add(1)
	}

	if m.store != nil {
		entry, err := m.store.Load(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Error loading cached snapshot, refetching")
		}
		if err == nil && entry != nil && len(entry.Data) > 0 {
			m.storeHits.Add(1)
			log.Debug().Time("date", entry.Timestamp).Msg("Persistent cache hit")
			if m.memory != nil {
				m.memory.Set(cache.SnapshotKey, entry)
			}
			return entry.Data, nil
		}
		m.storeMisses.Add(1)
	}

	data, err := m.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	entry := &models.CacheEntry{
		Timestamp: m.clock.Now(),
		Data:      data,
	}
	if m.memory != nil {
		m.memory.Set(cache.SnapshotKey, entry)
	}
	if m.store != nil {
		if err := m.store.Save(ctx, entry); err != nil {
			log.Error().Err(err).Msg("Error saving snapshot to persistent cache")
		}
	}

	return data, nil
}

// fetchAll issues one request per location concurrently and waits for all
// of them. A failed location does not cancel the others.
func (m *Manager) fetchAll(ctx context.Context) ([]models.StationSeries, error) {
	results := make([]models.StationSeries, len(m.locations))
	errs := make([]error, len(m.locations))

	var g errgroup.Group
	for i, location := range m.locations {
		i, location := i, location
		g.Go(func() error {
			m.fetches.Add(1)
			series, err := m.fetcher.FetchStation(ctx, location)
			if err != nil {
				log.Warn().Err(err).Str("location", location.Name).Msg("Excluding location from snapshot")
				errs[i] = err
				return nil
			}
			series.Index = i
			results[i] = series
			return nil
		})
	}
	_ = g.Wait()

	data := make([]models.StationSeries, 0, len(m.locations))
	var failures []error
	for i := range m.locations {
		if errs[i] != nil {
			failures = append(failures, errs[i])
			continue
		}
		data = append(data, results[i])
	}

	if len(data) == 0 {
		return nil, NewAllSourcesFailedError(failures)
	}

	log.Info().
		Int("fetched", len(data)).
		Int("failed", len(failures)).
		Msg("Refreshed forecast snapshot")

	return data, nil
}

// Stats returns hit and miss counters for each cache layer
func (m *Manager) Stats() map[string]uint64 {
	return map[string]uint64{
		"memory_hits":   m.memoryHits.Load(),
		"memory_misses": m.memoryMisses.Load(),
		"store_hits":    m.storeHits.Load(),
		"store_misses":  m.storeMisses.Load(),
		"fetches":       m.fetches.Load(),
	}
}
