package wire

import (
	"film-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)
		r.Put("/", userHandler.UpdateUser)
		r.Get("/", userHandler.GetAllUsers)
		r.Get("/{id}", userHandler.GetUser)

		// Friendship graph
		r.Get("/{id}/friends", userHandler.GetFriends)
		r.Get("/{id}/friends/common/{otherId}", userHandler.GetCommonFriends)
		r.Put("/{id}/friends/{friendId}", userHandler.AddFriend)
		r.Delete("/{id}/friends/{friendId}", userHandler.RemoveFriend)
		r.Put("/{id}/friends/{friendId}/confirm", userHandler.ConfirmFriend)
	})
}
