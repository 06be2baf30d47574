package highlighter

// Shared test doubles for the package tests.

// testNode is a minimal source-block handle.
type testNode string

func (n testNode) Content() string { return string(n) }

// testDoc is a document exposing fixed attributes.
type testDoc map[string]string

func (d testDoc) Attr(name string) (string, bool) {
	v, ok := d[name]
	return v, ok
}

// fakeAdapter is a registrable adapter with nothing overridden beyond the
// Base defaults.
type fakeAdapter struct {
	Base
}

func newFakeAdapter(name, backend string, _ Config) (Adapter, error) {
	return &fakeAdapter{Base: NewBase(name, backend)}, nil
}

// uppityAdapter claims to highlight but never implements it.
type uppityAdapter struct {
	Base
}

func (a *uppityAdapter) Highlights() bool { return true }

// namelessAdapter comes out of its constructor without an identity.
type namelessAdapter struct {
	Base
}

func newNamelessAdapter(_, backend string, _ Config) (Adapter, error) {
	return &namelessAdapter{Base: NewBase("", backend)}, nil
}
