package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newStylesheetCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "stylesheet",
		Short: "Write the configured highlighter's stylesheet asset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Stylesheets are only written when the document both links and
			// copies external CSS.
			if !cfg.Highlighter.LinkCSS || !cfg.Highlighter.CopyCSS {
				return fmt.Errorf("stylesheet writing requires both link_css and copy_css")
			}

			adapter, err := createAdapter(cfg.Highlighter.Name, cfg)
			if err != nil {
				return err
			}
			if adapter == nil {
				log.Warn().Str("highlighter", cfg.Highlighter.Name).Msg("no highlighter registered; nothing to write")
				return nil
			}

			doc := docAttrs(cfg)
			if !adapter.WritesStylesheet(doc) {
				log.Info().Str("highlighter", adapter.Name()).Msg("highlighter ships no stylesheet asset")
				return nil
			}

			if dir == "" {
				dir = cfg.Highlighter.StylesheetDir
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating stylesheet directory: %w", err)
			}
			if err := adapter.WriteStylesheet(doc, dir); err != nil {
				return err
			}
			log.Info().Str("highlighter", adapter.Name()).Str("dir", dir).Msg("stylesheet written")
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "target directory (defaults to highlighter.stylesheet_dir)")
	return cmd
}
