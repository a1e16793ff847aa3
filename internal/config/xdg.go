// Package config provides XDG path helpers and the application config file.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "pwseq"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGConfigDirs returns the system config directories, most important first.
func XDGConfigDirs() []string {
	v := os.Getenv("XDG_CONFIG_DIRS")
	if v == "" {
		return []string{"/etc/xdg"}
	}
	var dirs []string
	for _, dir := range filepath.SplitList(v) {
		if dir = strings.TrimSpace(dir); dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// UserProfileDir is where profiles are saved.
func UserProfileDir() string {
	return filepath.Join(XDGConfigHome(), appName, "profiles")
}

// SystemProfileDirs are read-only profile locations searched after the user dir.
func SystemProfileDirs() []string {
	dirs := XDGConfigDirs()
	out := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		out = append(out, filepath.Join(dir, appName, "profiles"))
	}
	return out
}

// DefaultWordListPath builds the default word list path for a name.
func DefaultWordListPath(name string) string {
	return filepath.Join(DefaultWordListDir(), name+".txt")
}

// DefaultWordListDir returns the default directory for word lists.
func DefaultWordListDir() string {
	return filepath.Join(XDGConfigHome(), appName, "wordlists")
}

// DefaultDBPath returns the default path for the history database.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appName, "history.db")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}
