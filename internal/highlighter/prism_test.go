package highlighter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrismForTest(t *testing.T, opts map[string]string) Adapter {
	t.Helper()
	a, err := NewPrismAdapter("prism", "html5", Config{Options: opts})
	require.NoError(t, err)
	return a
}

func TestPrism_IsClientSideHeadOnly(t *testing.T) {
	a := newPrismForTest(t, nil)

	assert.False(t, a.Highlights())
	assert.True(t, a.HasDocinfo(LocationHead))
	assert.False(t, a.HasDocinfo(LocationFooter))
}

func TestPrism_HeadDocinfo(t *testing.T) {
	a := newPrismForTest(t, nil)

	out, err := a.Docinfo(LocationHead, nil)

	require.NoError(t, err)
	assert.Contains(t, out, "themes/prism.min.css")
	assert.Contains(t, out, "prism.min.js")
	assert.Contains(t, out, "prism-autoloader.min.js")
}

func TestPrism_ThemeOverrides(t *testing.T) {
	a := newPrismForTest(t, map[string]string{"theme": "prism-okaidia"})

	out, err := a.Docinfo(LocationHead, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "themes/prism-okaidia.min.css")

	out, err = a.Docinfo(LocationHead, testDoc{"prism-theme": "prism-dark"})
	require.NoError(t, err)
	assert.Contains(t, out, "themes/prism-dark.min.css")
}

func TestPrism_FooterDocinfoIsContractViolation(t *testing.T) {
	a := newPrismForTest(t, nil)

	_, err := a.Docinfo(LocationFooter, nil)
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestPrism_FormatTagsCodeElement(t *testing.T) {
	a := newPrismForTest(t, nil)

	out := a.Format(testNode("puts 1"), "ruby", nil)

	assert.Equal(t, `<pre class="prism highlight"><code data-lang="ruby" class="language-ruby">puts 1</code></pre>`, out)
}
