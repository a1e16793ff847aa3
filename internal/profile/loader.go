package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/verte-zerg/pwseq/internal/config"
	"github.com/verte-zerg/pwseq/internal/sequence"
)

// DefaultName is used when no profile name is given.
const DefaultName = "default"

// Scope tells where a profile was found.
type Scope string

const (
	ScopeUser   Scope = "user"
	ScopeSystem Scope = "system"
)

// Entry describes a profile file on disk.
type Entry struct {
	Name  string
	Path  string
	Scope Scope
}

// Loader finds profiles in a user directory first and then in system
// directories. Saving always targets the user directory.
type Loader struct {
	UserDir    string
	SystemDirs []string
	Resolve    WordResolver
}

// NewLoader returns a Loader over the XDG profile directories.
func NewLoader(resolve WordResolver) *Loader {
	return &Loader{
		UserDir:    config.UserProfileDir(),
		SystemDirs: config.SystemProfileDirs(),
		Resolve:    resolve,
	}
}

// Load returns the named profile. A profile that exists nowhere yields
// (nil, nil); a profile that exists but cannot be read is an error.
func (l *Loader) Load(name string) (*sequence.Configuration, error) {
	entry, ok, err := l.Find(name)
	if err != nil || !ok {
		return nil, err
	}
	return l.LoadFile(entry.Path)
}

// Find locates the named profile without reading it.
func (l *Loader) Find(name string) (Entry, bool, error) {
	name = normalizeName(name)
	if err := checkName(name); err != nil {
		return Entry{}, false, err
	}
	if entry, ok, err := findIn(l.UserDir, name, ScopeUser); err != nil || ok {
		return entry, ok, err
	}
	for _, dir := range l.SystemDirs {
		if entry, ok, err := findIn(dir, name, ScopeSystem); err != nil || ok {
			return entry, ok, err
		}
	}
	return Entry{}, false, nil
}

// LoadFile reads and validates a profile file.
func (l *Loader) LoadFile(path string) (*sequence.Configuration, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only profile.
			_ = cerr
		}
	}()
	doc, err := Decode(file, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg, err := doc.Configuration(l.Resolve)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to the user directory and returns the written path. An
// existing user file keeps its format; new profiles are written as TOML.
func (l *Loader) Save(cfg *sequence.Configuration) (string, error) {
	if cfg == nil {
		return "", fmt.Errorf("configuration is nil")
	}
	name := normalizeName(cfg.Name)
	if err := checkName(name); err != nil {
		return "", err
	}
	path := filepath.Join(l.UserDir, name+".toml")
	if entry, ok, err := findIn(l.UserDir, name, ScopeUser); err != nil {
		return "", err
	} else if ok {
		path = entry.Path
	}
	named := *cfg
	named.Name = name
	if err := SaveFile(path, &named); err != nil {
		return "", err
	}
	return path, nil
}

// List returns every visible profile, sorted by name. User profiles hide
// system profiles of the same name.
func (l *Loader) List() ([]Entry, error) {
	seen := map[string]struct{}{}
	var entries []Entry
	dirs := append([]string{l.UserDir}, l.SystemDirs...)
	for i, dir := range dirs {
		scope := ScopeSystem
		if i == 0 {
			scope = ScopeUser
		}
		found, err := listDir(dir, scope)
		if err != nil {
			return nil, err
		}
		for _, entry := range found {
			if _, ok := seen[entry.Name]; ok {
				continue
			}
			seen[entry.Name] = struct{}{}
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// SaveFile validates cfg and writes it to path, replacing any existing file atomically.
func SaveFile(path string, cfg *sequence.Configuration) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	doc, err := FromConfiguration(cfg)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create profile dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "profile-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp profile: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := Encode(tmpFile, doc, format); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close profile: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

func findIn(dir, name string, scope Scope) (Entry, bool, error) {
	if dir == "" {
		return Entry{}, false, nil
	}
	for _, ext := range Extensions {
		path := filepath.Join(dir, name+ext)
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Entry{}, false, fmt.Errorf("failed to stat profile: %w", err)
		}
		if info.IsDir() {
			continue
		}
		return Entry{Name: name, Path: path, Scope: scope}, true, nil
	}
	return Entry{}, false, nil
}

func listDir(dir string, scope Scope) ([]Entry, error) {
	if dir == "" {
		return nil, nil
	}
	items, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profile directory: %w", err)
	}
	var entries []Entry
	seen := map[string]struct{}{}
	// Follow extension priority so a name maps to the file Find would pick.
	for _, ext := range Extensions {
		for _, item := range items {
			if item.IsDir() || filepath.Ext(item.Name()) != ext {
				continue
			}
			name := strings.TrimSuffix(item.Name(), filepath.Ext(item.Name()))
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			entries = append(entries, Entry{Name: name, Path: filepath.Join(dir, item.Name()), Scope: scope})
		}
	}
	return entries, nil
}

func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	return name
}

func checkName(name string) error {
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return &sequence.ConfigError{Field: "name", Reason: fmt.Sprintf("%q cannot be used as a profile name", name)}
	}
	return nil
}
