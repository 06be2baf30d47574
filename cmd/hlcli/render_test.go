package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docfold/highlighters/internal/config"
	"github.com/docfold/highlighters/internal/highlighter"
)

func TestRenderBlock_NoAdapterRendersPlainEscaped(t *testing.T) {
	out, err := renderBlock(nil, "pygments", "a < b", "go", &highlighter.HighlightOptions{}, false)

	require.NoError(t, err)
	assert.Equal(t, "<pre>a &lt; b</pre>", out)
}

func TestRenderBlock_ServerSideAdapterHighlights(t *testing.T) {
	adapter, err := highlighter.NewChromaAdapter("chroma", "html5", highlighter.Config{})
	require.NoError(t, err)

	out, err := renderBlock(adapter, "chroma", "puts 1", "ruby", &highlighter.HighlightOptions{}, false)

	require.NoError(t, err)
	assert.Contains(t, out, `<pre class="chroma highlight">`)
	assert.Contains(t, out, "<span")
}

func TestRenderBlock_ClientSideAdapterEscapes(t *testing.T) {
	adapter, err := highlighter.NewPrismAdapter("prism", "html5", highlighter.Config{})
	require.NoError(t, err)

	out, err := renderBlock(adapter, "prism", "a < b", "go", &highlighter.HighlightOptions{}, false)

	require.NoError(t, err)
	assert.Contains(t, out, "a &lt; b")
	assert.Contains(t, out, `class="language-go"`)
}

func TestRenderPage_InjectsDocinfo(t *testing.T) {
	adapter, err := highlighter.NewHighlightJSAdapter("highlight.js", "html5", highlighter.Config{})
	require.NoError(t, err)

	page, err := renderPage(adapter, attrDoc{}, "<pre>body</pre>")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, `<link rel="stylesheet"`)
	assert.Contains(t, page, "hljs.highlightAll()")
	assert.Contains(t, page, "<pre>body</pre>")
	assert.Less(t, strings.Index(page, "<link"), strings.Index(page, "<pre>body</pre>"), "head docinfo precedes the body")
}

func TestDocAttrs(t *testing.T) {
	cfg := config.Default()
	cfg.Highlighter.Name = "highlight.js"
	cfg.Highlighter.Style = "monokai"

	doc := docAttrs(cfg)

	_, linked := doc.Attr("linkcss")
	assert.True(t, linked)
	theme, ok := doc.Attr("highlightjs-theme")
	require.True(t, ok)
	assert.Equal(t, "monokai", theme)
}
