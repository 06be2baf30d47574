package highlighter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHljsForTest(t *testing.T, opts map[string]string) Adapter {
	t.Helper()
	a, err := NewHighlightJSAdapter("highlight.js", "html5", Config{Options: opts})
	require.NoError(t, err)
	return a
}

func TestHighlightJS_IsClientSide(t *testing.T) {
	a := newHljsForTest(t, nil)

	assert.False(t, a.Highlights())
	assert.True(t, a.HasDocinfo(LocationHead))
	assert.True(t, a.HasDocinfo(LocationFooter))
}

func TestHighlightJS_HeadDocinfo(t *testing.T) {
	a := newHljsForTest(t, nil)

	out, err := a.Docinfo(LocationHead, nil)

	require.NoError(t, err)
	assert.Contains(t, out, `<link rel="stylesheet"`)
	assert.Contains(t, out, "styles/github.min.css")
}

func TestHighlightJS_HeadDocinfo_ThemeFromDocument(t *testing.T) {
	a := newHljsForTest(t, nil)

	out, err := a.Docinfo(LocationHead, testDoc{"highlightjs-theme": "monokai"})

	require.NoError(t, err)
	assert.Contains(t, out, "styles/monokai.min.css")
}

func TestHighlightJS_FooterDocinfo(t *testing.T) {
	a := newHljsForTest(t, nil)

	out, err := a.Docinfo(LocationFooter, nil)

	require.NoError(t, err)
	assert.Contains(t, out, "highlight.min.js")
	assert.Contains(t, out, `hljs.configure({"ignoreUnescapedHTML":true})`)
	assert.Contains(t, out, "hljs.highlightAll()")
}

func TestHighlightJS_FooterDocinfo_Languages(t *testing.T) {
	a := newHljsForTest(t, nil)

	out, err := a.Docinfo(LocationFooter, testDoc{"highlightjs-languages": "ruby, go"})

	require.NoError(t, err)
	assert.Contains(t, out, `"languages":["ruby","go"]`)
}

func TestHighlightJS_FormatTagsCodeElement(t *testing.T) {
	a := newHljsForTest(t, nil)

	out := a.Format(testNode("puts 1"), "ruby", nil)

	assert.Equal(t, `<pre class="highlightjs highlight"><code data-lang="ruby" class="language-ruby hljs">puts 1</code></pre>`, out)
}

func TestHighlightJS_FormatWithoutLang(t *testing.T) {
	a := newHljsForTest(t, nil)

	out := a.Format(testNode("x"), "", nil)

	assert.Contains(t, out, `<code class="hljs">`)
}

func TestHighlightJS_FormatCallerTransformRunsAfterOwn(t *testing.T) {
	a := newHljsForTest(t, nil)

	out := a.Format(testNode("x"), "go", &FormatOptions{
		Transform: func(_, code *Attributes) {
			class, _ := code.Get("class")
			code.Set("class", class+" custom")
		},
	})

	assert.Contains(t, out, `class="language-go hljs custom"`)
}
