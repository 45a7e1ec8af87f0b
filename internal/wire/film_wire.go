package wire

import (
	"film-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFilm(r chi.Router, filmHandler *adaptor.FilmHandler) {
	r.Route("/films", func(r chi.Router) {
		r.Post("/", filmHandler.CreateFilm)
		r.Put("/", filmHandler.UpdateFilm)
		r.Get("/", filmHandler.GetFilms)
		r.Get("/popular", filmHandler.GetPopular) // ?count=10
		r.Get("/{id}", filmHandler.GetFilmByID)

		r.Put("/{id}/like/{userId}", filmHandler.AddLike)
		r.Delete("/{id}/like/{userId}", filmHandler.RemoveLike)
	})
}
