package wire

import (
	"film-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	r.Get("/genres", catalogHandler.GetGenres)
	r.Get("/genres/{id}", catalogHandler.GetGenre)
	r.Get("/mpa", catalogHandler.GetMpaRatings)
	r.Get("/mpa/{id}", catalogHandler.GetMpa)
}
