package category

import (
	"context"
	"sort"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spendsight/spendsight/internal/event_bus"
	"github.com/spendsight/spendsight/pkg/backend"
)

// Store is the single in-memory owner of the category set for the lifetime
// of the process. All mutation flows through its operations.
//
// Name comparison is case-insensitive everywhere (duplicate checks, default
// detection, sorting); the backend is never asked to arbitrate collation.
type Store interface {
	Refresh(ctx context.Context) error
	All() []Category
	Names() []string
	IsLoading() bool
	LastError() string

	Create(ctx context.Context, name string) (Category, error)
	Rename(ctx context.Context, id string, newName string) (Category, error)
	Delete(ctx context.Context, id string) error

	// IsDefault reports whether id identifies a built-in category. Default
	// categories are synthesized with ID equal to their name.
	IsDefault(id string) bool

	Favorites() []string
	ToggleFavorite(id string) ([]string, error)
}

type StoreImpl struct {
	client   backend.Client
	favRepo  FavoritesRepo
	bus      *event_bus.EventBus
	defaults []string

	mu          sync.RWMutex
	categories  []Category
	favoriteIDs []string
	loading     bool
	lastErr     string
}

// NewStore builds the store and loads the persisted favorites once. The
// category set stays empty until the first Refresh.
func NewStore(client backend.Client, favRepo FavoritesRepo, bus *event_bus.EventBus, defaults []string) *StoreImpl {
	return &StoreImpl{
		client:      client,
		favRepo:     favRepo,
		bus:         bus,
		defaults:    defaults,
		favoriteIDs: favRepo.Load(),
	}
}

// Refresh fetches the backend categories and replaces local state with the
// union of the fetched set and the built-in defaults, sorted by name. On
// failure the previous state is kept and the error is both recorded and
// returned; callers on background paths log it and move on.
func (s *StoreImpl) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	fetched, err := s.client.ListCategories(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		log.Warnf("Failed to refresh categories, keeping previous state: %v", err)
		return err
	}

	known := make(map[string]struct{}, len(fetched))
	merged := make([]Category, 0, len(fetched)+len(s.defaults))
	for _, c := range fetched {
		known[strings.ToLower(c.Name)] = struct{}{}
		merged = append(merged, Category{ID: c.ID, Name: c.Name})
	}
	for _, name := range s.defaults {
		if _, ok := known[strings.ToLower(name)]; !ok {
			merged = append(merged, Category{ID: name, Name: name})
		}
	}
	sortByName(merged)

	s.categories = merged
	s.lastErr = ""
	return nil
}

func (s *StoreImpl) All() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Category, len(s.categories))
	copy(result, s.categories)
	return result
}

func (s *StoreImpl) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.categories))
	for _, c := range s.categories {
		names = append(names, c.Name)
	}
	return names
}

func (s *StoreImpl) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *StoreImpl) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Create registers a new user category with the backend and inserts the
// result locally, keeping sort order. Local state is untouched on failure.
func (s *StoreImpl) Create(ctx context.Context, name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, newValidationError("category name must not be empty")
	}
	if existing, ok := s.findByName(name); ok {
		return Category{}, newValidationError("category %q already exists", existing.Name)
	}

	created, err := s.client.CreateCategory(ctx, name)
	if err != nil {
		return Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cat := Category{ID: created.ID, Name: created.Name}
	s.categories = append(s.categories, cat)
	sortByName(s.categories)
	return cat, nil
}

// Rename updates a user category. Default categories are rejected before any
// network call. On success the local entry is replaced and a CategoryRenamed
// event lets the expense store follow the new name locally.
func (s *StoreImpl) Rename(ctx context.Context, id string, newName string) (Category, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return Category{}, newValidationError("category name must not be empty")
	}
	if s.IsDefault(id) {
		return Category{}, newValidationError("default category cannot be renamed")
	}
	if existing, ok := s.findByName(newName); ok && existing.ID != id {
		return Category{}, newValidationError("category %q already exists", existing.Name)
	}

	updated, err := s.client.UpdateCategory(ctx, id, newName)
	if err != nil {
		return Category{}, err
	}

	s.mu.Lock()
	oldName := ""
	for i, c := range s.categories {
		if c.ID == id {
			oldName = c.Name
			s.categories[i] = Category{ID: updated.ID, Name: updated.Name}
			break
		}
	}
	sortByName(s.categories)
	s.mu.Unlock()

	s.bus.Publish(event_bus.NewEvent(ctx, event_bus.CategoryRenamedEvent, event_bus.CategoryRenamed{
		ID:      id,
		OldName: oldName,
		NewName: updated.Name,
	}))

	return Category{ID: updated.ID, Name: updated.Name}, nil
}

// Delete removes a user category. Default categories are rejected before any
// network call. Historical expenses keep their category name; nothing
// cascades.
func (s *StoreImpl) Delete(ctx context.Context, id string) error {
	if s.IsDefault(id) {
		return newValidationError("default category cannot be deleted")
	}

	if err := s.client.DeleteCategory(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	name := ""
	for i, c := range s.categories {
		if c.ID == id {
			name = c.Name
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.bus.Publish(event_bus.NewEvent(ctx, event_bus.CategoryDeletedEvent, event_bus.CategoryDeleted{
		ID:   id,
		Name: name,
	}))

	return nil
}

func (s *StoreImpl) IsDefault(id string) bool {
	for _, name := range s.defaults {
		if strings.EqualFold(id, name) {
			return true
		}
	}
	return false
}

func (s *StoreImpl) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]string, len(s.favoriteIDs))
	copy(result, s.favoriteIDs)
	return result
}

// ToggleFavorite adds or removes the id from the favorites list and writes
// the list back to durable storage immediately.
func (s *StoreImpl) ToggleFavorite(id string) ([]string, error) {
	s.mu.Lock()
	found := false
	for i, favID := range s.favoriteIDs {
		if favID == id {
			s.favoriteIDs = append(s.favoriteIDs[:i], s.favoriteIDs[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		s.favoriteIDs = append(s.favoriteIDs, id)
	}
	result := make([]string, len(s.favoriteIDs))
	copy(result, s.favoriteIDs)
	s.mu.Unlock()

	if err := s.favRepo.Save(result); err != nil {
		log.Errorf("Failed to persist favorite categories: %v", err)
		return result, err
	}
	return result, nil
}

func (s *StoreImpl) findByName(name string) (Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}

func sortByName(categories []Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		a := strings.ToLower(categories[i].Name)
		b := strings.ToLower(categories[j].Name)
		if a == b {
			return categories[i].Name < categories[j].Name
		}
		return a < b
	})
}
