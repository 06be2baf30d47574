package main

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/docfold/highlighters/internal/config"
	"github.com/docfold/highlighters/internal/highlighter"
)

// sourceBlock is the CLI's source-block handle.
type sourceBlock string

func (b sourceBlock) Content() string { return string(b) }

// attrDoc is the CLI's document handle, backed by a fixed attribute map.
type attrDoc map[string]string

func (d attrDoc) Attr(name string) (string, bool) {
	v, ok := d[name]
	return v, ok
}

func newRenderCmd() *cobra.Command {
	var (
		lang     string
		name     string
		optsJSON string
		outPath  string
		nowrap   bool
		page     bool
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Highlight a source file and emit the wrapped HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading source file: %w", err)
			}
			source := strings.TrimRight(string(data), "\n")
			if lang == "" {
				lang = strings.TrimPrefix(filepath.Ext(args[0]), ".")
			}

			hopts, err := parseHighlightOptions(optsJSON)
			if err != nil {
				return err
			}
			if hopts.Style == "" {
				hopts.Style = cfg.Highlighter.Style
			}

			adapterName := cfg.Highlighter.Name
			if name != "" {
				adapterName = name
			}

			adapter, err := createAdapter(adapterName, cfg)
			if err != nil {
				return err
			}

			out, err := renderBlock(adapter, adapterName, source, lang, hopts, nowrap)
			if err != nil {
				return err
			}
			if page && adapter != nil {
				out, err = renderPage(adapter, docAttrs(cfg), out)
				if err != nil {
					return err
				}
			}

			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			return os.WriteFile(outPath, []byte(out+"\n"), 0o644)
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "language identifier (defaults to the file extension)")
	cmd.Flags().StringVarP(&name, "highlighter", "H", "", "highlighter name (overrides the config)")
	cmd.Flags().StringVar(&optsJSON, "options", "", "highlight options as a JSON object")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().BoolVar(&nowrap, "nowrap", false, "disable the outer wrapping behavior")
	cmd.Flags().BoolVar(&page, "page", false, "emit a complete HTML page including docinfo markup")
	return cmd
}

// createAdapter resolves the named adapter through the global registry.
// Absence is not an error; it comes back nil.
func createAdapter(name string, cfg *config.Config) (highlighter.Adapter, error) {
	return highlighter.Default().Create(name, "html5", highlighter.Config{
		Document: docAttrs(cfg),
		Options: map[string]string{
			"style":    cfg.Highlighter.Style,
			"css_mode": cfg.Highlighter.CSSMode,
			"theme":    cfg.Highlighter.Style,
		},
	})
}

// renderBlock highlights (when the adapter does server-side work) and
// wraps the source. With no adapter the source renders as a plain escaped
// block — no highlighting is a degraded mode, not a failure.
func renderBlock(adapter highlighter.Adapter, name, source, lang string, hopts *highlighter.HighlightOptions, nowrap bool) (string, error) {
	if adapter == nil {
		log.Warn().Str("highlighter", name).Msg("no highlighter registered; rendering plain")
		return "<pre>" + html.EscapeString(source) + "</pre>", nil
	}

	content := html.EscapeString(source)
	if adapter.Highlights() {
		highlighted, shift, err := adapter.Highlight(sourceBlock(source), source, lang, hopts)
		if err != nil {
			return "", fmt.Errorf("highlighting: %w", err)
		}
		if shift != 0 {
			log.Debug().Int("line_shift", shift).Msg("highlighter shifted lines; callouts need realignment")
		}
		content = highlighted
	}

	fopts := &highlighter.FormatOptions{Nowrap: nowrap}
	return adapter.Format(sourceBlock(content), lang, fopts), nil
}

// renderPage wraps the block in a minimal HTML document, injecting the
// adapter's docinfo markup at its declared locations.
func renderPage(adapter highlighter.Adapter, doc highlighter.Document, body string) (string, error) {
	var head, footer string
	var err error
	if adapter.HasDocinfo(highlighter.LocationHead) {
		if head, err = adapter.Docinfo(highlighter.LocationHead, doc); err != nil {
			return "", fmt.Errorf("head docinfo: %w", err)
		}
	}
	if adapter.HasDocinfo(highlighter.LocationFooter) {
		if footer, err = adapter.Docinfo(highlighter.LocationFooter, doc); err != nil {
			return "", fmt.Errorf("footer docinfo: %w", err)
		}
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	if head != "" {
		b.WriteString(head)
		b.WriteString("\n")
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n")
	if footer != "" {
		b.WriteString(footer)
		b.WriteString("\n")
	}
	b.WriteString("</body>\n</html>")
	return b.String(), nil
}

// docAttrs exposes the config as document attributes the adapters consult.
func docAttrs(cfg *config.Config) highlighter.Document {
	attrs := attrDoc{}
	if cfg.Highlighter.LinkCSS {
		attrs["linkcss"] = ""
	}
	if cfg.Highlighter.CopyCSS {
		attrs["copycss"] = ""
	}
	if style := cfg.Highlighter.Style; style != "" {
		switch cfg.Highlighter.Name {
		case "highlight.js", "highlightjs":
			attrs["highlightjs-theme"] = style
		case "prism":
			attrs["prism-theme"] = style
		default:
			attrs[cfg.Highlighter.Name+"-style"] = style
		}
	}
	return attrs
}
