package highlighter

import "fmt"

const (
	prismVersion      = "1.29.0"
	prismCDN          = "https://cdnjs.cloudflare.com/ajax/libs/prism/" + prismVersion
	defaultPrismTheme = "prism"
)

// PrismAdapter drives client-side highlighting with Prism. Everything —
// theme stylesheet, core library, language autoloader — is injected in the
// document head; code elements carry the language-<lang> class Prism scans
// for.
type PrismAdapter struct {
	Base
	theme string
}

// NewPrismAdapter constructs the Prism adapter. Recognized cfg option:
// "theme" (default "prism").
func NewPrismAdapter(name, backend string, cfg Config) (Adapter, error) {
	a := &PrismAdapter{Base: NewBase(name, backend), theme: defaultPrismTheme}
	if t, ok := cfg.Options["theme"]; ok && t != "" {
		a.theme = t
	}
	return a, nil
}

// HasDocinfo reports true for the head only.
func (a *PrismAdapter) HasDocinfo(loc Location) bool {
	return loc == LocationHead
}

// Docinfo produces the theme link plus the core and autoloader scripts.
// The document may override the theme via "prism-theme".
func (a *PrismAdapter) Docinfo(loc Location, doc Document) (string, error) {
	if loc != LocationHead {
		return "", notImplemented(a.Name(), "Docinfo("+string(loc)+")")
	}

	theme := a.theme
	if doc != nil {
		if t, ok := doc.Attr("prism-theme"); ok && t != "" {
			theme = t
		}
	}
	return fmt.Sprintf("<link rel=\"stylesheet\" href=\"%s/themes/%s.min.css\">\n"+
		"<script src=\"%s/prism.min.js\"></script>\n"+
		"<script src=\"%s/plugins/autoloader/prism-autoloader.min.js\"></script>",
		prismCDN, theme, prismCDN, prismCDN), nil
}

// Format tags the code element with Prism's language-<lang> convention.
func (a *PrismAdapter) Format(node Node, lang string, opts *FormatOptions) string {
	return a.FormatWith(node, lang, opts, func(_, code *Attributes) {
		if lang != "" {
			code.Set("class", "language-"+lang)
		}
	})
}

// Ensure PrismAdapter implements Adapter
var _ Adapter = (*PrismAdapter)(nil)
