package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Generate.Profile)
	assert.Nil(t, cfg.Log.Level)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[generate]
profile = "work"
count = 3

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Generate.Profile)
	assert.Equal(t, "work", *cfg.Generate.Profile)
	require.NotNil(t, cfg.Generate.Count)
	assert.Equal(t, 3, *cfg.Generate.Count)
	assert.Nil(t, cfg.Generate.History)
	require.NotNil(t, cfg.Log.Level)
	assert.Equal(t, "debug", *cfg.Log.Level)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[generate]\nlenght = 4\n"), 0o644))
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lenght")
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	t.Setenv("XDG_CONFIG_DIRS", "/opt/a"+string(os.PathListSeparator)+"/opt/b")

	assert.Equal(t, "/tmp/cfg/pwseq/config.toml", DefaultConfigPath())
	assert.Equal(t, "/tmp/cfg/pwseq/profiles", UserProfileDir())
	assert.Equal(t, []string{"/opt/a/pwseq/profiles", "/opt/b/pwseq/profiles"}, SystemProfileDirs())
	assert.Equal(t, "/tmp/cfg/pwseq/wordlists/en.txt", DefaultWordListPath("en"))
	assert.Equal(t, "/tmp/data/pwseq/history.db", DefaultDBPath())
}

func TestXDGConfigDirsDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_DIRS", "")
	assert.Equal(t, []string{"/etc/xdg"}, XDGConfigDirs())
}
