package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"film-catalog/internal/usecase"
	"film-catalog/pkg/apperror"
	"film-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	User    *UserHandler
	Film    *FilmHandler
	Catalog *CatalogHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:    NewUserHandler(service.User, service.Graph, log),
		Film:    NewFilmHandler(service.Film, service.Graph, service.Ranking, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
	}
}

// handleServiceError maps typed service errors onto HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var appErr *apperror.Error
	errors.As(err, &appErr)

	switch {
	case errors.Is(err, apperror.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, appErr.Message)

	case errors.Is(err, apperror.ErrValidation):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", appErr.Fields)

	case errors.Is(err, apperror.ErrInvalidOperation), errors.Is(err, apperror.ErrInvalidArgument):
		log.Warn("Invalid request for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, appErr.Message, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// pathID reads an integer path parameter, writing a 400 when it does not parse.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, name))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid "+name, map[string]string{name: err.Error()})
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}
