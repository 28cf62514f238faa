package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.StorePath)
	assert.NotEmpty(t, cfg.LogPath)
	assert.Equal(t, ".", cfg.ExportDir)
	assert.Equal(t, "https://notekeep.local/notes", cfg.ShareBaseURL)
	assert.Equal(t, 3*time.Second, cfg.AutoSaveInterval)
	assert.Equal(t, "en", cfg.Language)
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
store_path: /tmp/notes.db
language: it
auto_save_seconds: 10
location:
  lat: 45.07
  lng: 7.68
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/notes.db", cfg.StorePath)
	assert.Equal(t, "it", cfg.Language)
	assert.Equal(t, 10*time.Second, cfg.AutoSaveInterval)
	assert.Equal(t, 45.07, cfg.Location.Lat)
	assert.Equal(t, 7.68, cfg.Location.Lng)
}

func TestLoad_BlankedFieldsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
store_path: ""
share_base_url: ""
language: ""
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.StorePath)
	assert.Equal(t, "https://notekeep.local/notes", cfg.ShareBaseURL)
	assert.Equal(t, "en", cfg.Language)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	cfg := &Config{
		StorePath:       "/data/notes.db",
		LogPath:         "/data/notes.log",
		ExportDir:       "/data/exports",
		ShareBaseURL:    "https://example.com/n",
		AutoSaveSeconds: 5,
		Language:        "it",
	}
	require.NoError(t, cfg.Save(path))
	assert.True(t, ConfigExists(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.StorePath, loaded.StorePath)
	assert.Equal(t, cfg.ShareBaseURL, loaded.ShareBaseURL)
	assert.Equal(t, 5*time.Second, loaded.AutoSaveInterval)
	assert.Equal(t, cfg.Language, loaded.Language)
}

func TestConfigExists(t *testing.T) {
	assert.False(t, ConfigExists(filepath.Join(t.TempDir(), "nope.yml")))
}
