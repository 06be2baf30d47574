package highlighter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoped_RoundTrip(t *testing.T) {
	r := NewScoped(nil)
	r.Register(Entry{New: newFakeAdapter}, "x")

	e, ok := r.For("x")
	require.True(t, ok)
	assert.False(t, e.IsZero())

	a, err := r.Create("x", "html5", Config{})
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "x", a.Name())
	assert.Equal(t, "html5", a.Backend())
}

func TestScoped_Absence(t *testing.T) {
	r := NewScoped(nil)

	_, ok := r.For("unknown")
	assert.False(t, ok)

	a, err := r.Create("unknown", "html5", Config{})
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestScoped_MultipleNamesOneEntry(t *testing.T) {
	r := NewScoped(nil)
	r.Register(Entry{New: newFakeAdapter}, "x", "y", "z")

	for _, name := range []string{"x", "y", "z"} {
		a, err := r.Create(name, "html5", Config{})
		require.NoError(t, err)
		require.NotNil(t, a)
		assert.Equal(t, name, a.Name())
	}
}

func TestScoped_LastRegistrationWins(t *testing.T) {
	r := NewScoped(nil)
	first := &fakeAdapter{Base: NewBase("first", "html5")}
	second := &fakeAdapter{Base: NewBase("second", "html5")}
	r.Register(Entry{Instance: first}, "x")
	r.Register(Entry{Instance: second}, "x")

	a, err := r.Create("x", "html5", Config{})
	require.NoError(t, err)
	assert.Same(t, second, a)
}

func TestScoped_Seeded(t *testing.T) {
	seed := map[string]Entry{"x": {New: newFakeAdapter}}
	r := NewScoped(seed)

	a, err := r.Create("x", "html5", Config{})
	require.NoError(t, err)
	require.NotNil(t, a)

	// The seed map is copied, not aliased.
	delete(seed, "x")
	_, ok := r.For("x")
	assert.True(t, ok)
}

func TestCreate_ConstructorEntriesAreFreshPerCall(t *testing.T) {
	r := NewScoped(nil)
	r.Register(Entry{New: newFakeAdapter}, "x")

	a1, err := r.Create("x", "html5", Config{})
	require.NoError(t, err)
	a2, err := r.Create("x", "html5", Config{})
	require.NoError(t, err)

	assert.NotSame(t, a1, a2)
}

func TestCreate_InstanceEntriesAreShared(t *testing.T) {
	r := NewScoped(nil)
	shared := &fakeAdapter{Base: NewBase("x", "html5")}
	RegisterAdapter(r, shared)

	a1, err := r.Create("x", "html5", Config{})
	require.NoError(t, err)
	a2, err := r.Create("x", "html5", Config{})
	require.NoError(t, err)

	assert.Same(t, shared, a1)
	assert.Same(t, shared, a2)
}

func TestCreate_MissingNameIsFatal(t *testing.T) {
	r := NewScoped(nil)
	r.Register(Entry{New: newNamelessAdapter}, "broken")

	a, err := r.Create("broken", "html5", Config{})
	require.ErrorIs(t, err, ErrMissingName)
	assert.Nil(t, a)
	assert.Contains(t, err.Error(), "broken")
}

func TestCreate_NegativeEntryYieldsNothing(t *testing.T) {
	r := NewScoped(nil)
	r.Register(Entry{}, "off")

	e, ok := r.For("off")
	require.True(t, ok)
	assert.True(t, e.IsZero())

	a, err := r.Create("off", "html5", Config{})
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestRegisterAdapter_DefaultsToAdapterName(t *testing.T) {
	r := NewScoped(nil)
	RegisterAdapter(r, &fakeAdapter{Base: NewBase("mine", "html5")})

	a, err := r.Create("mine", "html5", Config{})
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "mine", a.Name())
}

func TestContractViolation_AdvertisedButUnimplemented(t *testing.T) {
	a := &uppityAdapter{Base: NewBase("uppity", "html5")}
	require.True(t, a.Highlights())

	_, _, err := a.Highlight(testNode("x"), "x", "ruby", nil)
	require.ErrorIs(t, err, ErrNotImplemented)
	assert.Contains(t, err.Error(), "uppity")
}
