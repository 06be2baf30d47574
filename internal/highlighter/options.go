package highlighter

import "strings"

// CSSMode selects how a server-side highlighter styles its output.
type CSSMode string

const (
	// CSSClass emits class attributes resolved by an external stylesheet.
	CSSClass CSSMode = "class"
	// CSSInline emits style attributes directly on the markup.
	CSSInline CSSMode = "inline"
)

// LineNumberMode selects how line numbers are rendered, when at all.
type LineNumberMode string

const (
	// LineNumbersTable renders numbers in a separate table column.
	LineNumbersTable LineNumberMode = "table"
	// LineNumbersInline renders numbers inline with each source line.
	LineNumbersInline LineNumberMode = "inline"
)

// HighlightOptions configures a single Highlight call. All fields are
// optional; the zero value asks for plain class-based highlighting.
type HighlightOptions struct {
	// Callouts maps 1-based line numbers to the callout markers the caller
	// will re-attach after highlighting. Its presence obliges the adapter
	// to preserve line correspondence or report a line shift.
	Callouts map[int][]string

	// CSSMode selects class or inline styling. Empty means CSSClass.
	CSSMode CSSMode

	// HighlightLines lists 1-based line numbers to tint.
	HighlightLines []int

	// LineNumbers enables line numbering. Empty disables it.
	LineNumbers LineNumberMode

	// StartLineNumber is the number of the first line. Zero means 1.
	StartLineNumber int

	// Style names the color theme to apply.
	Style string
}

// Transform lets the caller adjust the wrapper attributes computed by
// Format before they are serialized. Both attribute lists are mutable.
type Transform func(pre, code *Attributes)

// FormatOptions configures a single Format call.
type FormatOptions struct {
	// Nowrap disables the wrapping behavior of the outer element.
	Nowrap bool

	// Transform, when set, runs against the computed outer and inner
	// attributes before serialization.
	Transform Transform
}

// Attributes is an insertion-ordered set of HTML attributes. Order is
// preserved so serialized output is deterministic and transform callbacks
// see attributes where Format put them.
type Attributes struct {
	keys []string
	vals map[string]string
}

// NewAttributes returns an empty attribute list.
func NewAttributes() *Attributes {
	return &Attributes{vals: make(map[string]string)}
}

// Set adds or replaces an attribute, keeping its original position on
// replace.
func (a *Attributes) Set(name, value string) {
	if _, ok := a.vals[name]; !ok {
		a.keys = append(a.keys, name)
	}
	a.vals[name] = value
}

// Get returns the attribute value and whether it is present.
func (a *Attributes) Get(name string) (string, bool) {
	v, ok := a.vals[name]
	return v, ok
}

// Del removes an attribute if present.
func (a *Attributes) Del(name string) {
	if _, ok := a.vals[name]; !ok {
		return
	}
	delete(a.vals, name)
	for i, k := range a.keys {
		if k == name {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
}

// String serializes the attributes as ` k="v" k2="v2"` with a leading
// space, or "" when empty. Values are attribute-escaped.
func (a *Attributes) String() string {
	if len(a.keys) == 0 {
		return ""
	}
	var b strings.Builder
	for _, k := range a.keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(a.vals[k]))
		b.WriteByte('"')
	}
	return b.String()
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `"`, "&quot;", `<`, "&lt;")

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
