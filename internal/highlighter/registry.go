package highlighter

import "fmt"

// Config carries adapter construction settings passed through Create.
type Config struct {
	// Document is the document the adapter will render for, when known.
	Document Document

	// Options holds adapter-specific settings (style, theme, ...).
	Options map[string]string
}

// Constructor builds a fresh adapter for a resolved name. The name is the
// lookup name the registry resolved; the constructor must hand it to the
// adapter so its identity matches.
type Constructor func(name, backend string, cfg Config) (Adapter, error)

// Entry is a registry binding. Exactly one field is set for a usable
// binding: New constructs fresh adapters per Create, Instance is returned
// as-is on every Create. The zero Entry is a negative binding — the name
// is known and explicitly maps to no adapter.
type Entry struct {
	New      Constructor
	Instance Adapter
}

// IsZero reports whether the entry is a negative binding.
func (e Entry) IsZero() bool { return e.New == nil && e.Instance == nil }

// Factory is the capability of registering and resolving highlighter
// adapters by name.
type Factory interface {
	// Register binds the entry under each given name. Last registration
	// for a name wins.
	Register(e Entry, names ...string)

	// For looks the name up in this factory's registry. The bool reports
	// whether the name is present as a key; a present-but-zero entry is a
	// negative binding, distinct from never registered. For never fails.
	For(name string) (Entry, bool)

	// Create resolves the name and instantiates the adapter. An unknown or
	// negatively-bound name yields (nil, nil) — absence is not an error and
	// callers fall back to no highlighting. A resolved adapter without a
	// name is a fatal misconfiguration (ErrMissingName).
	Create(name, backend string, cfg Config) (Adapter, error)
}

// RegisterAdapter binds an already-constructed adapter in the factory
// under the given names, defaulting to the adapter's own name. This is the
// registration surface built-in and external providers use at startup.
func RegisterAdapter(f Factory, a Adapter, names ...string) {
	if len(names) == 0 {
		names = []string{a.Name()}
	}
	f.Register(Entry{Instance: a}, names...)
}

// instantiate turns a resolved entry into a usable adapter. Shared with
// every Factory implementation so Create semantics stay identical across
// scopes.
func instantiate(e Entry, name, backend string, cfg Config) (Adapter, error) {
	switch {
	case e.Instance != nil:
		return e.Instance, nil
	case e.New != nil:
		a, err := e.New(name, backend, cfg)
		if err != nil {
			return nil, fmt.Errorf("constructing highlighter %q: %w", name, err)
		}
		if a.Name() == "" {
			return nil, fmt.Errorf("highlighter %q: %w", name, ErrMissingName)
		}
		return a, nil
	default:
		return nil, nil
	}
}

// Scoped is an independent registry with its own name→entry map and no
// provider table: unresolved names simply come back absent. It carries no
// lock; callers use it single-threaded or synchronize externally.
type Scoped struct {
	entries map[string]Entry
}

// NewScoped creates a scoped registry, optionally pre-seeded. The seed map
// is copied.
func NewScoped(seed map[string]Entry) *Scoped {
	entries := make(map[string]Entry, len(seed))
	for name, e := range seed {
		entries[name] = e
	}
	return &Scoped{entries: entries}
}

// Register binds the entry under each name.
func (s *Scoped) Register(e Entry, names ...string) {
	for _, name := range names {
		s.entries[name] = e
	}
}

// For looks the name up in the scoped map only.
func (s *Scoped) For(name string) (Entry, bool) {
	e, ok := s.entries[name]
	return e, ok
}

// Create resolves and instantiates from the scoped map only.
func (s *Scoped) Create(name, backend string, cfg Config) (Adapter, error) {
	e, ok := s.For(name)
	if !ok {
		return nil, nil
	}
	return instantiate(e, name, backend, cfg)
}

var _ Factory = (*Scoped)(nil)
