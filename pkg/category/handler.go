package category

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/spendsight/spendsight/internal/rest"
)

type CategoryDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Default  bool   `json:"default,omitempty"`
	Favorite bool   `json:"favorite,omitempty"`
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	dtos := h.toDTOs(h.store.All())
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new category")
	w.Header().Set("Content-Type", "application/json")

	var dto CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.store.Create(r.Context(), dto.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(h.toDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Rename(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	var dto CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	renamed, err := h.store.Rename(r.Context(), id, dto.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(h.toDTO(renamed)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.store.Refresh(r.Context()); err != nil {
		rest.WriteError(w, err)
		return
	}

	dtos := h.toDTOs(h.store.All())
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(h.store.Favorites()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	favorites, err := h.store.ToggleFavorite(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(favorites); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		http.Error(w, vErr.Error(), http.StatusBadRequest)
		return
	}
	rest.WriteError(w, err)
}

func (h *Handler) toDTO(c Category) CategoryDTO {
	isFavorite := false
	for _, id := range h.store.Favorites() {
		if id == c.ID {
			isFavorite = true
			break
		}
	}
	return CategoryDTO{
		ID:       c.ID,
		Name:     c.Name,
		Default:  h.store.IsDefault(c.ID),
		Favorite: isFavorite,
	}
}

func (h *Handler) toDTOs(categories []Category) []CategoryDTO {
	favorites := make(map[string]struct{})
	for _, id := range h.store.Favorites() {
		favorites[id] = struct{}{}
	}
	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		_, isFavorite := favorites[c.ID]
		dtos = append(dtos, CategoryDTO{
			ID:       c.ID,
			Name:     c.Name,
			Default:  h.store.IsDefault(c.ID),
			Favorite: isFavorite,
		})
	}
	return dtos
}
