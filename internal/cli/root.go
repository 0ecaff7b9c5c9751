package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mispimport/internal/config"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	configPath  string
	debug       bool
	noBanner    bool
	metricsFile string

	logger *slog.Logger
}

// loadConfig reads the config file and applies the command line overrides.
// Only commands that need it call this, so a broken config does not block
// read-only commands.
func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	if a.noBanner {
		cfg.HideBanners = true
	}
	if a.metricsFile != "" {
		cfg.MetricsFile = a.metricsFile
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "misp-import",
		Short:        "Translate Falcon Intelligence indicators into MISP objects and attributes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if a.debug {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML config")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&a.noBanner, "no-banner", false, "replace ASCII banners with plain text")
	cmd.PersistentFlags().StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile after a run")

	cmd.AddCommand(newTranslateCmd(a))
	cmd.AddCommand(newTypesCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}
