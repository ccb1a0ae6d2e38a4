package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/picsure/backend/internal/api/middleware"
	"github.com/picsure/backend/internal/domain"
	"github.com/picsure/backend/internal/service"
)

type AlbumHandler struct {
	albumService *service.AlbumService
}

func NewAlbumHandler(albumService *service.AlbumService) *AlbumHandler {
	return &AlbumHandler{albumService: albumService}
}

type CreateAlbumRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Thumbnail *string `json:"thumbnail,omitempty"`
}

type UpdateAlbumRequest struct {
	Name      *string `json:"name,omitempty"`
	Thumbnail *string `json:"thumbnail,omitempty"`
}

type GrantRequest struct {
	UserID          uint `json:"userId" validate:"required"`
	CanAddPhotos    bool `json:"canAddPhotos"`
	CanDeletePhotos bool `json:"canDeletePhotos"`
}

func (h *AlbumHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	var req CreateAlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	album, err := h.albumService.Create(r.Context(), userID, service.CreateAlbumInput{
		Name:      req.Name,
		Thumbnail: req.Thumbnail,
	})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, album)
}

func (h *AlbumHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	albums, err := h.albumService.ListAccessible(r.Context(), userID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, albums)
}

func (h *AlbumHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	albumID, err := parseUintParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid album ID", http.StatusBadRequest)
		return
	}

	album, err := h.albumService.Get(r.Context(), userID, albumID)
	if err != nil {
		writeAlbumError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, album)
}

func (h *AlbumHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	albumID, err := parseUintParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid album ID", http.StatusBadRequest)
		return
	}

	var req UpdateAlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	album, err := h.albumService.Update(r.Context(), userID, albumID, service.UpdateAlbumInput{
		Name:      req.Name,
		Thumbnail: req.Thumbnail,
	})
	if err != nil {
		writeAlbumError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, album)
}

func (h *AlbumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	albumID, err := parseUintParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid album ID", http.StatusBadRequest)
		return
	}

	if err := h.albumService.Delete(r.Context(), userID, albumID); err != nil {
		writeAlbumError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AlbumHandler) Grant(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	albumID, err := parseUintParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid album ID", http.StatusBadRequest)
		return
	}

	var req GrantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	perm, err := h.albumService.Grant(r.Context(), userID, albumID, service.GrantInput{
		TargetUserID:    req.UserID,
		CanAddPhotos:    req.CanAddPhotos,
		CanDeletePhotos: req.CanDeletePhotos,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFriends):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			writeAlbumError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, perm)
}

func (h *AlbumHandler) ListGrants(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	albumID, err := parseUintParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid album ID", http.StatusBadRequest)
		return
	}

	perms, err := h.albumService.ListGrants(r.Context(), userID, albumID)
	if err != nil {
		writeAlbumError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, perms)
}

func (h *AlbumHandler) RevokeGrant(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	grantID, err := parseUintParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid permission ID", http.StatusBadRequest)
		return
	}

	if err := h.albumService.RevokeGrant(r.Context(), userID, grantID); err != nil {
		switch {
		case errors.Is(err, domain.ErrGrantNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			writeAlbumError(w, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeAlbumError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAlbumNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrNotOwner):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
