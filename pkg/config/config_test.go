package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "wnedit.db", cfg.Database)
	assert.Equal(t, "en", cfg.Lexicon.Language)
	assert.Equal(t, "user@example.com", cfg.Lexicon.Email)
	assert.Equal(t, "1.0", cfg.Lexicon.Version)
	assert.Empty(t, cfg.Lexicon.LMFVersion)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"database: /srv/wn.db\nlexicon:\n  language: ja\n  lmf_version: \"1.1\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/wn.db", cfg.Database)
	assert.Equal(t, "ja", cfg.Lexicon.Language)
	assert.Equal(t, "1.1", cfg.Lexicon.LMFVersion)
	// Untouched keys keep their defaults.
	assert.Equal(t, "user@example.com", cfg.Lexicon.Email)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadDiscoversWorkingDirFile(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(FileName, []byte("database: found.db\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "found.db", cfg.Database)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wnedit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: from-file.db\nlexicon:\n  language: ja\n"), 0o644))

	t.Setenv("WNEDIT_DATABASE", "from-env.db")
	t.Setenv("WNEDIT_LEXICON_EMAIL", "env@example.com")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Database)
	assert.Equal(t, "env@example.com", cfg.Lexicon.Email)
	assert.Equal(t, "ja", cfg.Lexicon.Language, "env must not clobber unrelated file values")
}
