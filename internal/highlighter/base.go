package highlighter

import "strings"

// Base provides the common state and inert capability defaults concrete
// adapters embed. Its Format builds the standard preformatted wrapper;
// every other capability defaults to "unsupported" and fails with
// ErrNotImplemented when invoked anyway.
type Base struct {
	name    string
	backend string
	// class token derived from the name, used in output class attributes
	// ("highlight.js" → "highlightjs").
	classToken string
}

// NewBase creates the embedded base for a named adapter.
func NewBase(name, backend string) Base {
	return Base{name: name, backend: backend, classToken: classToken(name)}
}

// classToken reduces an adapter name to a token usable in an HTML class
// attribute: lowercase with everything outside [a-z0-9_-] dropped.
func classToken(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Name returns the adapter name.
func (b *Base) Name() string { return b.name }

// Backend returns the output backend.
func (b *Base) Backend() string { return b.backend }

// Highlights reports false; server-side adapters override this.
func (b *Base) Highlights() bool { return false }

// Highlight fails: an adapter reporting Highlights must override it.
func (b *Base) Highlight(Node, string, string, *HighlightOptions) (string, int, error) {
	return "", 0, notImplemented(b.name, "Highlight")
}

// HasDocinfo reports false; client-side adapters override this.
func (b *Base) HasDocinfo(Location) bool { return false }

// Docinfo fails: an adapter reporting HasDocinfo must override it.
func (b *Base) Docinfo(loc Location, _ Document) (string, error) {
	return "", notImplemented(b.name, "Docinfo("+string(loc)+")")
}

// WritesStylesheet reports false; adapters shipping CSS override this.
func (b *Base) WritesStylesheet(Document) bool { return false }

// WriteStylesheet fails: an adapter reporting WritesStylesheet must
// override it.
func (b *Base) WriteStylesheet(Document, string) error {
	return notImplemented(b.name, "WriteStylesheet")
}

// Format wraps the node content in the default preformatted block:
//
//	<pre class="<token> highlight[ nowrap]"><code[ data-lang="…"]>content</code></pre>
//
// Content is inserted verbatim. When opts carries a Transform it runs
// against the computed attributes before serialization.
func (b *Base) Format(node Node, lang string, opts *FormatOptions) string {
	if opts == nil {
		opts = &FormatOptions{}
	}
	return b.FormatWith(node, lang, opts, nil)
}

// FormatWith is Format with an adapter-supplied transform that runs before
// the caller's. Concrete adapters use it to impose their own attribute
// conventions (e.g. highlight.js language classes) while still honoring
// opts.Transform.
func (b *Base) FormatWith(node Node, lang string, opts *FormatOptions, pre Transform) string {
	if opts == nil {
		opts = &FormatOptions{}
	}

	class := b.classToken + " highlight"
	if opts.Nowrap {
		class += " nowrap"
	}
	preAttrs := NewAttributes()
	preAttrs.Set("class", class)

	codeAttrs := NewAttributes()
	if lang != "" {
		codeAttrs.Set("data-lang", lang)
	}

	if pre != nil {
		pre(preAttrs, codeAttrs)
	}
	if opts.Transform != nil {
		opts.Transform(preAttrs, codeAttrs)
	}

	var out strings.Builder
	out.WriteString("<pre")
	out.WriteString(preAttrs.String())
	out.WriteString("><code")
	out.WriteString(codeAttrs.String())
	out.WriteString(">")
	out.WriteString(node.Content())
	out.WriteString("</code></pre>")
	return out.String()
}
