package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mispimport/internal/banner"
	"mispimport/internal/buildinfo"
	"mispimport/internal/format"
	"mispimport/internal/metrics"
	"mispimport/internal/threat"
)

func newTranslateCmd(a *app) *cobra.Command {
	var (
		in   string
		out  string
		tags []string
	)

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate an indicator file into a MISP event document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			log := a.logger
			hide := cfg.HideBanners
			start := time.Now()

			banner.Display(banner.MISP(), log, "misp-import "+buildinfo.Version, hide)
			banner.Display(banner.Indicators, log, "Indicators", hide)

			allTags := append(append([]string(nil), cfg.Tags...), tags...)
			store := threat.NewEventStore(cfg.EventInfo)
			st, err := threat.NewImporter(threat.NewFileSource(in), store, allTags, log).Run(cmd.Context())
			if err != nil {
				banner.Display(banner.ChecksFailed, log, "Import failed", hide)
				return err
			}

			if out != "" && out != "-" {
				err = writeEventFile(out, store)
			} else {
				err = writeEvent(cmd.OutOrStdout(), store)
			}
			if err != nil {
				return err
			}

			log.Info("indicators translated",
				"read", format.Thousands(int64(st.Read)),
				"objects", format.Thousands(int64(st.Objects)),
				"attributes", format.Thousands(int64(st.Attributes)),
				"skipped", format.Thousands(int64(st.Skipped)),
				"seconds", format.Seconds(time.Since(start).Seconds()),
			)

			if cfg.MetricsFile != "" {
				if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}

			banner.Display(banner.Finished, log, "Finished", hide)
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "-", "indicator JSON file (- for stdin)")
	cmd.Flags().StringVar(&out, "out", "-", "event JSON output file (- for stdout)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag applied to translated objects (repeatable)")
	return cmd
}

func writeEventFile(path string, store *threat.EventStore) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := writeEvent(f, store); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func writeEvent(w io.Writer, store *threat.EventStore) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(store.Event()); err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	return nil
}
