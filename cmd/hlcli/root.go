package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/docfold/highlighters/internal/config"
	"github.com/docfold/highlighters/internal/monitoring"
)

var (
	cfgPath string
	cfg     *config.Config
)

func buildRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hlcli",
		Short:         "Render source blocks through pluggable highlighter adapters",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
			setupLogging(cfg.Monitoring)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "highlighters.yaml", "path to the YAML config file")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newStylesheetCmd())
	root.AddCommand(newProvidersCmd())
	return root
}

// setupLogging installs the global logger. Format defaults to console on a
// terminal and json otherwise.
func setupLogging(mc config.MonitoringConfig) {
	format := mc.LogFormat
	if format == "" {
		format = "json"
		if term.IsTerminal(int(os.Stderr.Fd())) {
			format = "console"
		}
	}
	monitoring.Global(monitoring.LoggerConfig{
		Level:  mc.LogLevel,
		Format: format,
		Output: mc.LogOutput,
	})
}
