package highlighter

import (
	"fmt"
	"strings"

	"github.com/tidwall/sjson"
)

const (
	hljsVersion      = "11.9.0"
	hljsCDN          = "https://cdnjs.cloudflare.com/ajax/libs/highlight.js/" + hljsVersion
	defaultHljsTheme = "github"
)

// HighlightJSAdapter drives client-side highlighting with highlight.js:
// it never transforms source itself, instead injecting the library and a
// theme stylesheet through docinfo and tagging code elements with the
// classes the library looks for.
type HighlightJSAdapter struct {
	Base
	theme string
}

// NewHighlightJSAdapter constructs the highlight.js adapter. Recognized
// cfg option: "theme" (stylesheet name, default github).
func NewHighlightJSAdapter(name, backend string, cfg Config) (Adapter, error) {
	a := &HighlightJSAdapter{Base: NewBase(name, backend), theme: defaultHljsTheme}
	if t, ok := cfg.Options["theme"]; ok && t != "" {
		a.theme = t
	}
	return a, nil
}

// HasDocinfo reports true for both insertion points: the theme link goes
// in the head, the library and its init script in the footer.
func (a *HighlightJSAdapter) HasDocinfo(loc Location) bool {
	return loc == LocationHead || loc == LocationFooter
}

// Docinfo produces the head stylesheet link or the footer script pair.
// The document may override the theme ("highlightjs-theme") and restrict
// the registered languages ("highlightjs-languages", comma separated).
func (a *HighlightJSAdapter) Docinfo(loc Location, doc Document) (string, error) {
	switch loc {
	case LocationHead:
		return fmt.Sprintf("<link rel=\"stylesheet\" href=\"%s/styles/%s.min.css\">", hljsCDN, a.resolveTheme(doc)), nil
	case LocationFooter:
		cfg, err := a.configureJSON(doc)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("<script src=\"%s/highlight.min.js\"></script>\n<script>hljs.configure(%s);hljs.highlightAll()</script>", hljsCDN, cfg), nil
	default:
		return "", notImplemented(a.Name(), "Docinfo("+string(loc)+")")
	}
}

func (a *HighlightJSAdapter) resolveTheme(doc Document) string {
	if doc != nil {
		if t, ok := doc.Attr("highlightjs-theme"); ok && t != "" {
			return t
		}
	}
	return a.theme
}

// configureJSON builds the hljs.configure argument.
func (a *HighlightJSAdapter) configureJSON(doc Document) (string, error) {
	cfg, err := sjson.Set("{}", "ignoreUnescapedHTML", true)
	if err != nil {
		return "", fmt.Errorf("building hljs config: %w", err)
	}
	if doc != nil {
		if langs, ok := doc.Attr("highlightjs-languages"); ok && langs != "" {
			for _, l := range strings.Split(langs, ",") {
				cfg, err = sjson.Set(cfg, "languages.-1", strings.TrimSpace(l))
				if err != nil {
					return "", fmt.Errorf("building hljs config: %w", err)
				}
			}
		}
	}
	return cfg, nil
}

// Format tags the code element the way highlight.js expects
// (class="language-<lang> hljs") before any caller transform runs.
func (a *HighlightJSAdapter) Format(node Node, lang string, opts *FormatOptions) string {
	return a.FormatWith(node, lang, opts, func(_, code *Attributes) {
		class := "hljs"
		if lang != "" {
			class = "language-" + lang + " hljs"
		}
		code.Set("class", class)
	})
}

// Ensure HighlightJSAdapter implements Adapter
var _ Adapter = (*HighlightJSAdapter)(nil)
