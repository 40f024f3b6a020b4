package category

import (
	"encoding/json"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// FavoritesRepo persists the ordered list of favorite category ids across
// sessions.
type FavoritesRepo interface {
	// Load reads the stored favorites. Missing or malformed data is not an
	// error: the repo falls back to an empty list.
	Load() []string
	Save(ids []string) error
}

// FileFavoritesRepo stores favorites as a JSON array in a single file,
// rewritten in full on every change.
type FileFavoritesRepo struct {
	path string
}

func NewFileFavoritesRepo(path string) *FileFavoritesRepo {
	return &FileFavoritesRepo{path: path}
}

func (r *FileFavoritesRepo) Load() []string {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("Failed to read favorites file %s: %v", r.path, err)
		}
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		log.Warnf("Malformed favorites file %s, starting with an empty list: %v", r.path, err)
		return []string{}
	}
	return ids
}

func (r *FileFavoritesRepo) Save(ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0644)
}
