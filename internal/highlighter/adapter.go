// Package highlighter provides pluggable source-code highlighting for the
// document conversion pipeline.
//
// DESIGN: The converter never depends on a concrete highlighter. Each
// implementation satisfies the Adapter interface and is resolved by name
// through a Factory. Built-in providers (chroma, highlight.js, prism) are
// loaded lazily by the global registry on first lookup; callers can layer
// their own registrations over the global one per document.
//
// FLOW:
//  1. Pipeline asks a Factory to Create an adapter by name
//  2. Factory resolves the name (lazily loading built-ins) and instantiates
//  3. Pipeline calls Highlight/Format/Docinfo/WriteStylesheet during conversion
//
// To add a highlighter: embed Base, override the capabilities you support,
// and register it with RegisterAdapter or Factory.Register.
package highlighter

// Node is the opaque source-block handle supplied by the converter.
// The core never inspects it beyond its raw content.
type Node interface {
	// Content returns the block's raw (already substituted) source text.
	Content() string
}

// Document exposes the attributes the converter resolved for the page
// being rendered. Adapters consult it for theme and CSS settings.
type Document interface {
	// Attr returns the named document attribute and whether it is set.
	Attr(name string) (string, bool)
}

// Location names a docinfo insertion point in the output document.
type Location string

const (
	// LocationHead injects markup inside the HTML head element.
	LocationHead Location = "head"
	// LocationFooter injects markup before the closing body tag.
	LocationFooter Location = "footer"
)

// Adapter is the capability contract every highlighter implementation
// fulfills. Unsupported capabilities keep the inert defaults provided by
// Base; a capability whose predicate reports true but whose method was
// never overridden fails with ErrNotImplemented rather than degrading
// silently.
//
// Adapters are stateless with respect to individual blocks and safe to
// reuse across calls.
type Adapter interface {
	// Name returns the adapter identifier (e.g., "chroma", "highlight.js").
	Name() string

	// Backend returns the output backend this adapter was created for.
	Backend() string

	// =========================================================================
	// HIGHLIGHTING - server-side source transformation
	// =========================================================================

	// Highlights reports whether this adapter transforms source during
	// conversion (as opposed to relying on client-side script).
	Highlights() bool

	// Highlight transforms raw source into highlighted markup. It returns
	// the markup and the number of lines the transformation shifted the
	// source by; when the input carries callouts the output must keep a
	// one-to-one line correspondence unless that shift is reported, so the
	// caller can realign callout markers. Calling Highlight on an adapter
	// whose Highlights is false is a caller error.
	Highlight(node Node, source, lang string, opts *HighlightOptions) (string, int, error)

	// =========================================================================
	// FORMATTING - wrapping processed content in final markup
	// =========================================================================

	// Format wraps already-processed content in its final markup. Content
	// is inserted verbatim; escaping is the caller's responsibility.
	Format(node Node, lang string, opts *FormatOptions) string

	// =========================================================================
	// DOCINFO - markup injected for client-driven highlighting
	// =========================================================================

	// HasDocinfo reports whether this adapter injects markup at the given
	// document location.
	HasDocinfo(loc Location) bool

	// Docinfo produces the markup to inject at the given location. Calling
	// it for a location HasDocinfo rejects is a caller error.
	Docinfo(loc Location, doc Document) (string, error)

	// =========================================================================
	// STYLESHEET - on-disk CSS asset
	// =========================================================================

	// WritesStylesheet reports whether this adapter writes a stylesheet
	// asset for the given document. Only consulted when the document both
	// links and copies external CSS.
	WritesStylesheet(doc Document) bool

	// WriteStylesheet writes the adapter's stylesheet into dir. The file
	// format and name are adapter-specific. Concurrent writes into the
	// same directory are the caller's problem to serialize.
	WriteStylesheet(doc Document, dir string) error
}
