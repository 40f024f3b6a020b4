package category

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFavoritesRepo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	repo := NewFileFavoritesRepo(path)

	require.NoError(t, repo.Save([]string{"c2", "c1"}))

	assert.Equal(t, []string{"c2", "c1"}, NewFileFavoritesRepo(path).Load())
}

func TestFileFavoritesRepo_MissingFileYieldsEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	assert.Equal(t, []string{}, NewFileFavoritesRepo(path).Load())
}

func TestFileFavoritesRepo_MalformedFileYieldsEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	assert.Equal(t, []string{}, NewFileFavoritesRepo(path).Load())
}

func TestFileFavoritesRepo_SaveCreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "favorites.json")
	repo := NewFileFavoritesRepo(path)

	require.NoError(t, repo.Save([]string{"c1"}))

	assert.Equal(t, []string{"c1"}, repo.Load())
}
