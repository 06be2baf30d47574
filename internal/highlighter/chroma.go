package highlighter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const defaultChromaStyle = "github"

// ChromaAdapter highlights server-side through the chroma lexer/formatter
// stack. Unknown languages fall back to the plaintext lexer, unknown
// styles to chroma's fallback style, so Highlight degrades rather than
// fails on bad identifiers.
type ChromaAdapter struct {
	Base
	style   string
	cssMode CSSMode
}

// NewChromaAdapter constructs the chroma adapter. Recognized cfg options:
// "style" (default theme) and "css_mode" ("class"|"inline", default class).
func NewChromaAdapter(name, backend string, cfg Config) (Adapter, error) {
	a := &ChromaAdapter{
		Base:    NewBase(name, backend),
		style:   defaultChromaStyle,
		cssMode: CSSClass,
	}
	if s, ok := cfg.Options["style"]; ok && s != "" {
		a.style = s
	}
	if m, ok := cfg.Options["css_mode"]; ok && m != "" {
		a.cssMode = CSSMode(m)
	}
	return a, nil
}

// Highlights reports true; this adapter transforms source during
// conversion.
func (a *ChromaAdapter) Highlights() bool { return true }

// Highlight tokenises the source and renders chroma's HTML without the
// surrounding pre element, leaving the wrapping to Format. Output lines
// correspond one-to-one with input lines, so the reported shift is always
// zero and callout realignment is never needed.
func (a *ChromaAdapter) Highlight(_ Node, source, lang string, opts *HighlightOptions) (string, int, error) {
	if opts == nil {
		opts = &HighlightOptions{}
	}

	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", 0, fmt.Errorf("tokenising %q source: %w", lang, err)
	}

	var buf bytes.Buffer
	if err := html.New(a.formatterOptions(opts)...).Format(&buf, a.resolveStyle(opts.Style), it); err != nil {
		return "", 0, fmt.Errorf("formatting %q source: %w", lang, err)
	}
	return buf.String(), 0, nil
}

// formatterOptions maps HighlightOptions onto chroma's HTML formatter.
func (a *ChromaAdapter) formatterOptions(opts *HighlightOptions) []html.Option {
	fopts := []html.Option{html.PreventSurroundingPre(true)}

	mode := opts.CSSMode
	if mode == "" {
		mode = a.cssMode
	}
	if mode != CSSInline {
		fopts = append(fopts, html.WithClasses(true))
	}

	if opts.LineNumbers != "" {
		fopts = append(fopts, html.WithLineNumbers(true))
		// Table numbering restructures the output; with callouts present
		// inline numbering keeps the line correspondence the contract
		// requires.
		if opts.LineNumbers == LineNumbersTable && len(opts.Callouts) == 0 {
			fopts = append(fopts, html.LineNumbersInTable(true))
		}
	}
	if opts.StartLineNumber > 1 {
		fopts = append(fopts, html.BaseLineNumber(opts.StartLineNumber))
	}
	if len(opts.HighlightLines) > 0 {
		fopts = append(fopts, html.HighlightLines(lineRanges(opts.HighlightLines)))
	}
	return fopts
}

// resolveStyle picks the call-level style over the adapter default and
// substitutes chroma's fallback for unknown names.
func (a *ChromaAdapter) resolveStyle(name string) *chroma.Style {
	if name == "" {
		name = a.style
	}
	if s := styles.Get(name); s != nil {
		return s
	}
	return styles.Fallback
}

// WritesStylesheet reports true in class mode — inline mode embeds all
// styling in the markup and ships no asset.
func (a *ChromaAdapter) WritesStylesheet(Document) bool {
	return a.cssMode != CSSInline
}

// WriteStylesheet writes the class definitions for the adapter's style
// into dir as chroma-<style>.css. The document may override the style via
// the "<name>-style" attribute.
func (a *ChromaAdapter) WriteStylesheet(doc Document, dir string) error {
	style := a.style
	if doc != nil {
		if s, ok := doc.Attr(a.Name() + "-style"); ok && s != "" {
			style = s
		}
	}

	var buf bytes.Buffer
	if err := html.New(html.WithClasses(true)).WriteCSS(&buf, a.resolveStyle(style)); err != nil {
		return fmt.Errorf("rendering %q stylesheet: %w", style, err)
	}

	path := filepath.Join(dir, "chroma-"+style+".css")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing stylesheet: %w", err)
	}
	return nil
}

// lineRanges collapses a set of 1-based line numbers into the sorted,
// contiguous [start,end] ranges chroma expects.
func lineRanges(lines []int) [][2]int {
	sorted := make([]int, len(lines))
	copy(sorted, lines)
	sort.Ints(sorted)

	var ranges [][2]int
	for _, n := range sorted {
		if len(ranges) > 0 && n <= ranges[len(ranges)-1][1]+1 {
			if n > ranges[len(ranges)-1][1] {
				ranges[len(ranges)-1][1] = n
			}
			continue
		}
		ranges = append(ranges, [2]int{n, n})
	}
	return ranges
}

// Ensure ChromaAdapter implements Adapter
var _ Adapter = (*ChromaAdapter)(nil)
