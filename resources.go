package globe

import (
	"context"
	"sync"

	"github.com/gogpu/globe/cache"
	"github.com/gogpu/globe/render"
)

// resourceSet manages raster resources behind an LRU cache. A key not
// in the cache starts at most one load, no matter how many call sites
// request it within a refresh; the completion stores the raster and
// fires the refresh-needed callback. A failed key is marked and never
// retried. Completions landing after dispose are discarded.
type resourceSet struct {
	mu       sync.Mutex
	cache    *cache.LRU[string, *render.Raster]
	loader   render.RasterLoader
	inflight map[string]struct{}
	failed   map[string]struct{}
	disposed bool
	onStore  func()
}

func newResourceSet(loader render.RasterLoader, capacity int, onStore func()) *resourceSet {
	return &resourceSet{
		cache:    cache.New[string, *render.Raster](capacity),
		loader:   loader,
		inflight: make(map[string]struct{}),
		failed:   make(map[string]struct{}),
		onStore:  onStore,
	}
}

// get returns the cached raster and refreshes its recency. It never
// starts a load.
func (s *resourceSet) get(key string) (*render.Raster, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return nil, false
	}
	return s.cache.Get(key)
}

// has reports presence without touching recency.
func (s *resourceSet) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.disposed && s.cache.Has(key)
}

// request returns the raster when cached; otherwise it starts a load
// for the key unless one is in flight, the key already failed, the set
// is disposed, or no loader is configured. The raster is absent until
// the load lands and the onStore callback fires.
func (s *resourceSet) request(ctx context.Context, key string) (*render.Raster, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return nil, false
	}
	if r, ok := s.cache.Get(key); ok {
		s.mu.Unlock()
		return r, true
	}
	if _, bad := s.failed[key]; bad {
		s.mu.Unlock()
		return nil, false
	}
	if _, running := s.inflight[key]; running || s.loader == nil {
		s.mu.Unlock()
		return nil, false
	}
	s.inflight[key] = struct{}{}
	s.mu.Unlock()

	go s.load(ctx, key)
	return nil, false
}

// load runs one asynchronous fetch and stores the outcome.
func (s *resourceSet) load(ctx context.Context, key string) {
	raster, err := s.loader.Load(ctx, key)

	s.mu.Lock()
	delete(s.inflight, key)
	if s.disposed {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.failed[key] = struct{}{}
		s.mu.Unlock()
		Logger().Warn("globe: resource load failed", "key", key, "error", err)
		return
	}
	s.cache.Put(key, raster)
	onStore := s.onStore
	s.mu.Unlock()

	Logger().Debug("globe: resource loaded", "key", key,
		"width", raster.Width(), "height", raster.Height())
	if onStore != nil {
		onStore()
	}
}

// dispose drops the cache and silences all pending completions.
func (s *resourceSet) dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	s.disposed = true
	s.cache.Clear()
}

func (s *resourceSet) stats() cache.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Stats()
}
