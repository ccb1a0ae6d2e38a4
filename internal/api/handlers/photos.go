package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/picsure/backend/internal/api/middleware"
	"github.com/picsure/backend/internal/domain"
	"github.com/picsure/backend/internal/service"
	"gorm.io/datatypes"
)

type PhotoHandler struct {
	photoService *service.PhotoService
}

func NewPhotoHandler(photoService *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

type AddPhotoRequest struct {
	PhotoURL string          `json:"photoUrl" validate:"required,url"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

func (h *PhotoHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	albumID, err := parseUintParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid album ID", http.StatusBadRequest)
		return
	}

	var req AddPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	photo, err := h.photoService.Add(r.Context(), userID, albumID, service.AddPhotoInput{
		PhotoURL: req.PhotoURL,
		Metadata: datatypes.JSON(req.Metadata),
	})
	if err != nil {
		writeAlbumError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, photo)
}

func (h *PhotoHandler) ListByAlbum(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	albumID, err := parseUintParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid album ID", http.StatusBadRequest)
		return
	}

	photos, err := h.photoService.ListByAlbum(r.Context(), userID, albumID)
	if err != nil {
		writeAlbumError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, photos)
}

func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	photoID, err := parseUintParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid photo ID", http.StatusBadRequest)
		return
	}

	if err := h.photoService.Delete(r.Context(), userID, photoID); err != nil {
		switch {
		case errors.Is(err, domain.ErrPhotoNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			writeAlbumError(w, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
