package adaptor

import (
	"net/http"

	"film-catalog/internal/dto/request"
	"film-catalog/internal/usecase"
	"film-catalog/pkg/utils"

	"go.uber.org/zap"
)

type FilmHandler struct {
	service usecase.FilmService
	graph   usecase.GraphService
	ranking usecase.RankingService
	log     *zap.Logger
}

func NewFilmHandler(
	service usecase.FilmService,
	graph usecase.GraphService,
	ranking usecase.RankingService,
	log *zap.Logger,
) *FilmHandler {
	return &FilmHandler{
		service: service,
		graph:   graph,
		ranking: ranking,
		log:     log.With(zap.String("handler", "film")),
	}
}

// CreateFilm handles POST /films
func (h *FilmHandler) CreateFilm(w http.ResponseWriter, r *http.Request) {
	var req request.FilmRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	film, err := h.service.CreateFilm(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create film")
		return
	}

	utils.ResponseCreated(w, "Film created successfully", film)
}

// UpdateFilm handles PUT /films, the id travels in the body
func (h *FilmHandler) UpdateFilm(w http.ResponseWriter, r *http.Request) {
	var req request.FilmRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	film, err := h.service.UpdateFilm(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update film")
		return
	}

	utils.ResponseSuccess(w, "Film updated successfully", film)
}

// GetFilms handles GET /films
func (h *FilmHandler) GetFilms(w http.ResponseWriter, r *http.Request) {
	films, err := h.service.GetAllFilms(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get films")
		return
	}

	utils.ResponseSuccess(w, "Films retrieved successfully", films)
}

// GetFilmByID handles GET /films/{id}
func (h *FilmHandler) GetFilmByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	film, err := h.service.GetFilm(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get film")
		return
	}

	utils.ResponseSuccess(w, "Film retrieved successfully", film)
}

// GetPopular handles GET /films/popular?count=10
func (h *FilmHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	count, err := utils.ParseInt(r.URL.Query().Get("count"), usecase.DefaultPopularCount)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid count", map[string]string{"count": err.Error()})
		return
	}

	films, err := h.ranking.GetPopular(r.Context(), count)
	if err != nil {
		handleServiceError(w, h.log, err, "get popular films")
		return
	}

	utils.ResponseSuccess(w, "Popular films retrieved successfully", films)
}

// AddLike handles PUT /films/{id}/like/{userId}
func (h *FilmHandler) AddLike(w http.ResponseWriter, r *http.Request) {
	filmID, userID, ok := h.likePair(w, r)
	if !ok {
		return
	}

	if err := h.graph.AddLike(r.Context(), filmID, userID); err != nil {
		handleServiceError(w, h.log, err, "add like")
		return
	}

	utils.ResponseSuccess(w, "Like added successfully", nil)
}

// RemoveLike handles DELETE /films/{id}/like/{userId}
func (h *FilmHandler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	filmID, userID, ok := h.likePair(w, r)
	if !ok {
		return
	}

	if err := h.graph.RemoveLike(r.Context(), filmID, userID); err != nil {
		handleServiceError(w, h.log, err, "remove like")
		return
	}

	utils.ResponseSuccess(w, "Like removed successfully", nil)
}

func (h *FilmHandler) likePair(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	filmID, ok := pathID(w, r, "id")
	if !ok {
		return 0, 0, false
	}
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return 0, 0, false
	}
	return filmID, userID, true
}
