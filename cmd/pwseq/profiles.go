package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/pwseq/internal/config"
	"github.com/verte-zerg/pwseq/internal/logger"
	"github.com/verte-zerg/pwseq/internal/profile"
	"github.com/verte-zerg/pwseq/internal/sequence"
	"github.com/verte-zerg/pwseq/internal/tui"
	"github.com/verte-zerg/pwseq/internal/wordlist"
)

const advancedWarningText = "This profile uses advanced options: optional items or variable lengths.\n" +
	"Generated passwords can be shorter and weaker than the entropy estimate suggests."

var (
	showFormat string
	saveYes    bool
)

func newEntropyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entropy [profile]",
		Short: "Estimate the entropy of a profile",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEntropyCmd,
	}
}

func runEntropyCmd(cmd *cobra.Command, args []string) error {
	cfg, err := profileFromArgs(cmd, args)
	if err != nil {
		return err
	}
	return writeEntropy(cmd.OutOrStdout(), cfg, tui.ShouldUseColor(cmd.OutOrStdout(), false))
}

func writeEntropy(w io.Writer, cfg *sequence.Configuration, color bool) error {
	lines := []string{
		fmt.Sprintf("Profile: %s", cfg.Name),
		fmt.Sprintf("Items: %d", len(cfg.Sequence)),
		"Strength: " + tui.StrengthBar(sequence.TotalEntropy(cfg), strengthWidth, color),
	}
	for i, item := range cfg.Sequence {
		lines = append(lines, fmt.Sprintf("  %d. %-10s %6.1f bits  include %s", i+1, item.Kind(), item.Entropy(cfg), item.Inclusion()))
	}
	if sequence.RequiresAdvancedWarning(cfg) {
		lines = append(lines, "Advanced: yes (estimate assumes every item at full length)")
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a profile file",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheckCmd,
	}
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	loader := profile.NewLoader(resolveWordList)
	cfg, err := loader.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	advanced := "no"
	if sequence.RequiresAdvancedWarning(cfg) {
		advanced = "yes"
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d items, %.1f bits, advanced: %s)\n",
		cfg.Name, len(cfg.Sequence), sequence.TotalEntropy(cfg), advanced)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [profile]",
		Short: "Print a profile",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShowCmd,
	}
	cmd.Flags().StringVar(&showFormat, "format", string(profile.FormatTOML), "output format (toml, yaml)")
	return cmd
}

func runShowCmd(cmd *cobra.Command, args []string) error {
	format := profile.Format(strings.ToLower(strings.TrimSpace(showFormat)))
	if format != profile.FormatTOML && format != profile.FormatYAML {
		return fmt.Errorf("--format must be toml or yaml")
	}
	cfg, err := profileFromArgs(cmd, args)
	if err != nil {
		return err
	}
	doc, err := profile.FromConfiguration(cfg)
	if err != nil {
		return err
	}
	return profile.Encode(cmd.OutOrStdout(), doc, format)
}

func newSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Validate a profile file and install it as a user profile",
		Args:  cobra.ExactArgs(1),
		RunE:  runSaveCmd,
	}
	cmd.Flags().BoolVarP(&saveYes, "yes", "y", false, "accept the advanced-mode warning without prompting")
	return cmd
}

func runSaveCmd(cmd *cobra.Command, args []string) error {
	log := logger.FromContext(cmd.Context())
	loader := profile.NewLoader(resolveWordList)
	cfg, err := loader.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	if sequence.RequiresAdvancedWarning(cfg) && !saveYes {
		ok, err := confirmAdvanced(cmd)
		if err != nil {
			return err
		}
		if !ok {
			log.Info("save cancelled", "profile", cfg.Name)
			return nil
		}
	}
	path, err := loader.Save(cfg)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	log.Info("saved profile", "profile", cfg.Name, "path", path)
	return nil
}

func confirmAdvanced(cmd *cobra.Command) (bool, error) {
	in := cmd.InOrStdin()
	if !tui.IsTerminal(in) {
		return false, fmt.Errorf("profile uses advanced options; rerun with --yes to accept")
	}
	return tui.Confirm(in, cmd.ErrOrStderr(), "Advanced mode", advancedWarningText)
}

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [profile]",
		Short: "Create/open a user profile in $EDITOR",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEditCmd,
	}
}

func runEditCmd(cmd *cobra.Command, args []string) error {
	log := logger.FromContext(cmd.Context())
	name := profile.DefaultName
	if len(args) == 1 {
		name = args[0]
	}
	loader := profile.NewLoader(resolveWordList)
	path, err := ensureUserProfile(loader, name)
	if err != nil {
		return err
	}
	if err := openEditor(path); err != nil {
		return err
	}
	if _, err := loader.LoadFile(path); err != nil {
		log.Warn("profile is invalid after editing", "path", path, "err", err)
		return fmt.Errorf("invalid profile: %w", err)
	}
	log.Info("profile ok", "path", path)
	return nil
}

// ensureUserProfile returns the user file for name, seeding it from the
// system profile or the built-in default when it does not exist yet.
func ensureUserProfile(loader *profile.Loader, name string) (string, error) {
	entry, ok, err := loader.Find(name)
	if err != nil {
		return "", err
	}
	if ok && entry.Scope == profile.ScopeUser {
		return entry.Path, nil
	}
	seed := sequence.Default()
	if ok {
		if seed, err = loader.LoadFile(entry.Path); err != nil {
			return "", err
		}
	}
	seed.Name = name
	return loader.Save(seed)
}

func openEditor(path string) error {
	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List available profiles",
		Args:  cobra.NoArgs,
		RunE:  runProfilesCmd,
	}
}

func runProfilesCmd(cmd *cobra.Command, _ []string) error {
	entries, err := profile.NewLoader(nil).List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		_, err := fmt.Fprintf(out, "No profiles found. Create one with: pwseq edit <name>\n(built-in %q is always available)\n", profile.DefaultName)
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(out, "%-20s %-7s %s\n", e.Name, e.Scope, e.Path); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// profileFromArgs loads the profile named by the optional argument. An
// argument that looks like a file path is read directly.
func profileFromArgs(cmd *cobra.Command, args []string) (*sequence.Configuration, error) {
	loader := profile.NewLoader(resolveWordList)
	if len(args) == 1 && isProfilePath(args[0]) {
		return loader.LoadFile(args[0])
	}
	name := profile.DefaultName
	if len(args) == 1 {
		name = args[0]
	} else if fileCfg, err := config.LoadConfig(config.DefaultConfigPath()); err == nil && fileCfg.Generate.Profile != nil {
		name = *fileCfg.Generate.Profile
	}
	return loadProfile(logger.FromContext(cmd.Context()), loader, name)
}

func isProfilePath(arg string) bool {
	if strings.ContainsAny(arg, `/\`) {
		return true
	}
	_, err := profile.FormatForPath(arg)
	return err == nil && filepath.Ext(arg) != ""
}

func loadWordList(path, lang string) (sequence.Dictionary, error) {
	list, err := wordlist.Load(path, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
	}
	return list, nil
}
