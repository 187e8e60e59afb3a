package appconfig

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/cidr-viewer/internal/logger"
	"golang.org/x/sync/singleflight"
)

// DefaultLoadTimeout bounds a single fetch of the document.
const DefaultLoadTimeout = 10 * time.Second

// Loader resolves the runtime configuration once and caches it.
//
// State moves from unset to loading (one shared in-flight load) to resolved.
// [Loader.Clear] returns it to unset. All methods are safe for concurrent use.
type Loader struct {
	source      Source
	loadTimeout time.Duration
	logger      *logger.Logger

	group singleflight.Group

	mu         sync.RWMutex
	cached     *AppConfig
	generation uint64
}

// LoaderOption customises a [Loader].
type LoaderOption func(*Loader)

// WithLoadTimeout overrides [DefaultLoadTimeout]. Non-positive values are ignored.
func WithLoadTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if d > 0 {
			l.loadTimeout = d
		}
	}
}

func NewLoader(source Source, log *logger.Logger, opts ...LoaderOption) *Loader {
	if log == nil {
		log = logger.Nop()
	}

	l := &Loader{
		source:      source,
		loadTimeout: DefaultLoadTimeout,
		logger:      log,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Get returns the resolved configuration, loading it on first use.
//
// Callers arriving while a load is in flight wait for that load and receive
// the same *AppConfig. If ctx ends first, the caller gets the defaults
// while the shared load keeps running and still fills the cache.
func (l *Loader) Get(ctx context.Context) *AppConfig {
	l.mu.RLock()
	cached, gen := l.cached, l.generation
	l.mu.RUnlock()

	if cached != nil {
		return cached
	}

	ch := l.group.DoChan(strconv.FormatUint(gen, 10), func() (any, error) {
		return l.load(context.WithoutCancel(ctx), gen), nil
	})

	select {
	case res := <-ch:
		return res.Val.(*AppConfig)
	case <-ctx.Done():
		l.logger.Warn().Err(ctx.Err()).Msg("gave up waiting for app config, using defaults")
		return Defaults()
	}
}

// GetSync returns the cached configuration without blocking, or nil when
// nothing has been resolved yet.
func (l *Loader) GetSync() *AppConfig {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.cached
}

// Clear drops the cached configuration and detaches any in-flight load, so
// the next Get starts a fresh one. A load that was running during Clear does
// not write its result to the cache.
func (l *Loader) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.group.Forget(strconv.FormatUint(l.generation, 10))
	l.cached = nil
	l.generation++
}

// Preload starts a load in the background and returns immediately.
func (l *Loader) Preload(ctx context.Context) {
	go l.Get(context.WithoutCancel(ctx))
}

func (l *Loader) load(ctx context.Context, gen uint64) *AppConfig {
	l.mu.RLock()
	cached, current := l.cached, l.generation
	l.mu.RUnlock()

	// a flight that started right after the previous one finished
	if cached != nil && current == gen {
		return cached
	}

	cfg := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.generation == gen {
		l.cached = cfg
	}

	return cfg
}

func (l *Loader) fetch(ctx context.Context) *AppConfig {
	ctx, cancel := context.WithTimeout(ctx, l.loadTimeout)
	defer cancel()

	doc, err := l.source.Fetch(ctx)
	if err != nil {
		l.logger.Warn().Err(err).Msg("failed to load app config, using defaults")
		return Defaults()
	}

	cfg, warnings := merge(doc)
	for _, w := range warnings {
		l.logger.Warn().Err(w).Msg("ignoring invalid app config value")
	}

	l.logger.Debug().
		Str("api_base_url", cfg.APIBaseURL).
		Dur("api_timeout", cfg.APITimeout).
		Msg("app config loaded")

	return cfg
}
