package highlighter

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Loader produces the registry entry for a built-in provider. It runs at
// most once per name, under the registry lock, and must not call back into
// the registry (the lock is not re-entrant); it returns the entry instead.
type Loader func() (Entry, error)

// Global is the process-wide default factory. On top of the generic
// Factory capability it lazily resolves built-in providers on first lookup
// and is safe for concurrent use: reads go through a lock-free map, and
// the populate-on-miss path re-checks under a mutex before loading.
type Global struct {
	entries   sync.Map // name → Entry; zero Entry is the negative cache
	mu        sync.Mutex
	providers map[string]Loader // read-only after construction
}

// NewGlobal creates a global-style registry with the given provider table.
// Production code uses Default; tests inject counting loaders here.
func NewGlobal(providers map[string]Loader) *Global {
	return &Global{providers: providers}
}

var (
	defaultRegistry     *Global
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry, created on first use with the
// built-in provider table.
func Default() *Global {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewGlobal(builtinProviders())
	})
	return defaultRegistry
}

// ResetDefault discards the process-wide registry so the next Default call
// rebuilds it. Not safe for concurrent use; tests only.
func ResetDefault() {
	defaultRegistryOnce = sync.Once{}
	defaultRegistry = nil
}

// Register binds the entry under each name, guarded against concurrent
// writers.
func (g *Global) Register(e Entry, names ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, name := range names {
		g.entries.Store(name, e)
	}
}

// For resolves a name. The fast path is a lock-free read; on miss it takes
// the lock, re-checks (another caller may have populated the name), and
// either runs the provider loader once or writes a negative entry so later
// lookups skip the provider table entirely.
func (g *Global) For(name string) (Entry, bool) {
	if v, ok := g.entries.Load(name); ok {
		return v.(Entry), true
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Re-check: the miss may have been resolved while we waited.
	if v, ok := g.entries.Load(name); ok {
		return v.(Entry), true
	}

	loader, known := g.providers[name]
	if !known {
		g.entries.Store(name, Entry{})
		return Entry{}, true
	}

	e, err := loader()
	if err != nil {
		log.Warn().Err(err).Str("highlighter", name).Msg("built-in highlighter failed to load")
		e = Entry{}
	} else {
		log.Debug().Str("highlighter", name).Msg("loaded built-in highlighter")
	}
	g.entries.Store(name, e)
	return e, true
}

// Create resolves the name (lazily loading built-ins) and instantiates the
// adapter. Unknown and negatively-cached names yield (nil, nil).
func (g *Global) Create(name, backend string, cfg Config) (Adapter, error) {
	e, ok := g.For(name)
	if !ok {
		return nil, nil
	}
	return instantiate(e, name, backend, cfg)
}

var _ Factory = (*Global)(nil)
