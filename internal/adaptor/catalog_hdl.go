package adaptor

import (
	"net/http"

	"film-catalog/internal/usecase"
	"film-catalog/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetGenres handles GET /genres
func (h *CatalogHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetGenres(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get genres")
		return
	}

	utils.ResponseSuccess(w, "Genres retrieved successfully", genres)
}

// GetGenre handles GET /genres/{id}
func (h *CatalogHandler) GetGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	genre, err := h.service.GetGenre(r.Context(), int(id))
	if err != nil {
		handleServiceError(w, h.log, err, "get genre")
		return
	}

	utils.ResponseSuccess(w, "Genre retrieved successfully", genre)
}

// GetMpaRatings handles GET /mpa
func (h *CatalogHandler) GetMpaRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.service.GetMpaRatings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get mpa ratings")
		return
	}

	utils.ResponseSuccess(w, "MPA ratings retrieved successfully", ratings)
}

// GetMpa handles GET /mpa/{id}
func (h *CatalogHandler) GetMpa(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	mpa, err := h.service.GetMpa(r.Context(), int(id))
	if err != nil {
		handleServiceError(w, h.log, err, "get mpa")
		return
	}

	utils.ResponseSuccess(w, "MPA rating retrieved successfully", mpa)
}
