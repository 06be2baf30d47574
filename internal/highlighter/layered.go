package highlighter

// Layered composes a per-document Scoped registry over the Global one:
// scoped entries always win — negative ones included — and anything else
// falls through to global resolution with its lazy loading and locking.
type Layered struct {
	scoped *Scoped
	global *Global
}

// NewLayered wraps the scoped registry over the global one. A nil scoped
// registry gets an empty one; a nil global falls back to Default().
func NewLayered(scoped *Scoped, global *Global) *Layered {
	if scoped == nil {
		scoped = NewScoped(nil)
	}
	if global == nil {
		global = Default()
	}
	return &Layered{scoped: scoped, global: global}
}

// Register binds into the scoped layer; the global registry is never
// touched through the proxy.
func (l *Layered) Register(e Entry, names ...string) {
	l.scoped.Register(e, names...)
}

// For prefers an explicitly present scoped key, then delegates to the
// global registry.
func (l *Layered) For(name string) (Entry, bool) {
	if e, ok := l.scoped.For(name); ok {
		return e, ok
	}
	return l.global.For(name)
}

// Create resolves through the layered For and instantiates.
func (l *Layered) Create(name, backend string, cfg Config) (Adapter, error) {
	e, ok := l.For(name)
	if !ok {
		return nil, nil
	}
	return instantiate(e, name, backend, cfg)
}

var _ Factory = (*Layered)(nil)
