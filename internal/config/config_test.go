package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileIsMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "application.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8282", cfg.Listen)
	assert.Equal(t, "http://localhost:8080", cfg.Backend.URL)
	assert.Equal(t, 15, cfg.Backend.TimeoutSeconds)
	assert.Equal(t, "./data/favorites.json", cfg.Storage.FavoritesPath)
	assert.Equal(t, []string{"Food", "Entertainment", "Transportation", "Utilities", "Health", "Other"}, cfg.Categories.Defaults)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	content := `
listen: ":9000"
backend:
  url: "http://expenses.internal:8080"
storage:
  favoritespath: "/var/lib/spendsight/favorites.json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Listen)
	assert.Equal(t, "http://expenses.internal:8080", cfg.Backend.URL)
	assert.Equal(t, "/var/lib/spendsight/favorites.json", cfg.Storage.FavoritesPath)
	assert.Equal(t, 15, cfg.Backend.TimeoutSeconds, "values absent from the file keep their defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`listen: ":9000"`), 0644))
	t.Setenv("SPENDSIGHT_LISTEN", ":7000")
	t.Setenv("SPENDSIGHT_BACKEND_URL", "http://other:8080")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Listen)
	assert.Equal(t, "http://other:8080", cfg.Backend.URL)
}
