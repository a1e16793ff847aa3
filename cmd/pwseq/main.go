// Package main provides the CLI entrypoint for pwseq.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/pwseq/internal/config"
	"github.com/verte-zerg/pwseq/internal/logger"
	"github.com/verte-zerg/pwseq/internal/model"
	"github.com/verte-zerg/pwseq/internal/profile"
	"github.com/verte-zerg/pwseq/internal/random"
	"github.com/verte-zerg/pwseq/internal/sequence"
	"github.com/verte-zerg/pwseq/internal/store"
	"github.com/verte-zerg/pwseq/internal/tui"
)

const (
	defaultCount    = 1
	defaultLogLevel = "info"
	strengthWidth   = 24
)

var (
	logLevel string
	logJSON  bool

	generateProfile  string
	generateCount    int
	generateHistory  bool
	generateSeed     uint64
	generateStrength bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "pwseq",
		Short:             "Structured password sequence generator",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: setupLogger,
		RunE:              runGenerateCmd,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write logs as JSON")
	addGenerateFlags(rootCmd)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate passwords from a profile",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	addGenerateFlags(generateCmd)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(newEntropyCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newSaveCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newProfilesCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&generateProfile, "profile", "p", profile.DefaultName, "profile name")
	cmd.Flags().IntVarP(&generateCount, "count", "n", defaultCount, "number of passwords")
	cmd.Flags().BoolVar(&generateHistory, "history", true, "record generation metadata in the history database")
	cmd.Flags().Uint64Var(&generateSeed, "seed", 0, "use a deterministic seeded source (never for real passwords)")
	cmd.Flags().BoolVar(&generateStrength, "strength", false, "print a strength bar to stderr")
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	applyBoolConfig(cmd, "log-json", &logJSON, fileCfg.Log.JSON)

	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log := logger.NewLogger(&logger.Config{
		Level:      level,
		Output:     cmd.ErrOrStderr(),
		JSON:       logJSON,
		TimeFormat: "15:04:05",
	})
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.ContextWithLogger(ctx, log))
	return nil
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := logger.FromContext(ctx)

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "profile", &generateProfile, fileCfg.Generate.Profile)
	applyIntConfig(cmd, "count", &generateCount, fileCfg.Generate.Count)
	applyBoolConfig(cmd, "history", &generateHistory, fileCfg.Generate.History)

	settings := model.Settings{
		Profile: generateProfile,
		Count:   generateCount,
		History: generateHistory,
	}
	if err := validateSettings(settings); err != nil {
		return err
	}

	loader := profile.NewLoader(resolveWordList)
	cfg, err := loadProfile(log, loader, settings.Profile)
	if err != nil {
		return err
	}
	if sequence.RequiresAdvancedWarning(cfg) {
		log.Warn("profile uses advanced options; real entropy may be lower than estimated", "profile", cfg.Name)
	}

	// Each password gets its own crypto source. A seeded run shares one
	// stream so successive passwords differ.
	newSource := func() random.Source { return random.NewCrypto() }
	if cmd.Flags().Changed("seed") {
		log.Warn("using a seeded source; output is reproducible", "seed", generateSeed)
		seeded := random.NewSeeded(generateSeed)
		newSource = func() random.Source { return seeded }
	}

	var st *store.Store
	if settings.History {
		st, err = store.Open(config.DefaultDBPath())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				log.Error("failed to close db", "err", cerr)
			}
		}()
	}

	out := cmd.OutOrStdout()
	for i := 0; i < settings.Count; i++ {
		res, err := sequence.Generate(cfg, newSource())
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
		if _, err := fmt.Fprintln(out, res.Password); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if st != nil {
			rec := model.Generation{
				Profile:  cfg.Name,
				Items:    len(cfg.Sequence),
				Length:   utf8.RuneCountInString(res.Password),
				Entropy:  res.Entropy,
				Advanced: res.AdvancedWarning,
			}
			if _, err := st.InsertGeneration(ctx, rec); err != nil {
				log.Error("failed to record generation", "err", err)
			}
		}
	}
	log.Debug("generated passwords", "profile", cfg.Name, "count", settings.Count)

	if generateStrength {
		errOut := cmd.ErrOrStderr()
		bar := tui.StrengthBar(sequence.TotalEntropy(cfg), strengthWidth, tui.ShouldUseColor(errOut, false))
		if _, err := fmt.Fprintln(errOut, bar); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func validateSettings(s model.Settings) error {
	if strings.TrimSpace(s.Profile) == "" {
		return fmt.Errorf("--profile must not be empty")
	}
	if s.Count <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	return nil
}

// loadProfile returns the named profile. The default profile falls back to
// the built-in configuration when it is missing or unreadable.
func loadProfile(log logger.Logger, loader *profile.Loader, name string) (*sequence.Configuration, error) {
	cfg, err := loader.Load(name)
	isDefault := strings.EqualFold(strings.TrimSpace(name), profile.DefaultName)
	switch {
	case err != nil && isDefault:
		log.Warn("failed to load default profile; using built-in default", "err", err)
		return sequence.Default(), nil
	case err != nil:
		return nil, fmt.Errorf("failed to load profile %q: %w", name, err)
	case cfg == nil && isDefault:
		return sequence.Default(), nil
	case cfg == nil:
		return nil, fmt.Errorf("profile %q not found (see: pwseq profiles)", name)
	}
	return cfg, nil
}

// resolveWordList maps a word list reference to a dictionary. A bare name is
// looked up in the word list directory; anything with a path separator or
// extension is read as a path.
func resolveWordList(name string) (sequence.Dictionary, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("word list name is empty")
	}
	path := name
	lang := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if !strings.ContainsAny(name, `/\`) && filepath.Ext(name) == "" {
		path = config.DefaultWordListPath(name)
	}
	return loadWordList(path, lang)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
