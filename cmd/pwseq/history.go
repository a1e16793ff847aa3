package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/pwseq/internal/config"
	"github.com/verte-zerg/pwseq/internal/logger"
	"github.com/verte-zerg/pwseq/internal/model"
	"github.com/verte-zerg/pwseq/internal/profile"
	"github.com/verte-zerg/pwseq/internal/report"
	"github.com/verte-zerg/pwseq/internal/store"
)

var (
	historyProfile     string
	historySince       string
	historyLast        int
	historyPruneBefore string
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show generation history",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyProfile, "profile", "", "profile filter")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N generations")
	cmd.Flags().StringVar(&historyPruneBefore, "prune-before", "", "delete records older than date (YYYY-MM-DD)")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	log := logger.FromContext(cmd.Context())
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	filter := model.HistoryFilter{Profile: historyProfile, Last: historyLast}
	if historySince != "" {
		parsed, err := parseDate(historySince)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		filter.Since = &parsed
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Error("failed to close db", "err", cerr)
		}
	}()

	if historyPruneBefore != "" {
		before, err := parseDate(historyPruneBefore)
		if err != nil {
			return fmt.Errorf("invalid --prune-before value: %w", err)
		}
		n, err := st.Prune(cmd.Context(), before)
		if err != nil {
			return err
		}
		log.Info("pruned history", "deleted", n, "before", historyPruneBefore)
	}

	recs, err := st.ListGenerations(cmd.Context(), filter)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := report.RenderHistory(out, recs); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := report.RenderSummary(out, recs); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, time.Local)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}
	return openEditor(path)
}

func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# pwseq configuration
# Uncomment a value to enable it. CLI flags override config values.

[generate]
# profile = %q        # Profile used when --profile is not given
# count = %d               # Passwords per run
# history = true          # Record generation metadata (never the password)

[log]
# level = %q           # debug, info, warn or error
# json = false            # Write logs as JSON
`,
		profile.DefaultName,
		defaultCount,
		defaultLogLevel,
	)
}
