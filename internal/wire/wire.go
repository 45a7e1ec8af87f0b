package wire

import (
	"net/http"

	"film-catalog/internal/adaptor"
	"film-catalog/internal/data/repository"
	"film-catalog/internal/usecase"
	"film-catalog/pkg/middleware"
	"film-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of repo.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, config, logger),
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wireUser(r, handler.User)
	wireFilm(r, handler.Film)
	wireCatalog(r, handler.Catalog)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", map[string]string{
			"app":     config.App.Name,
			"storage": config.App.Storage,
		})
	})

	return r
}
