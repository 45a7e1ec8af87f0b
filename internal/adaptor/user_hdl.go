package adaptor

import (
	"net/http"

	"film-catalog/internal/dto/request"
	"film-catalog/internal/usecase"
	"film-catalog/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	graph   usecase.GraphService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, graph usecase.GraphService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		graph:   graph,
		log:     log.With(zap.String("handler", "user")),
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User created successfully", user)
}

// UpdateUser handles PUT /users, the id travels in the body
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.UpdateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", user)
}

// GetAllUsers handles GET /users
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", user)
}

// AddFriend handles PUT /users/{id}/friends/{friendId}
func (h *UserHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	id, friendID, ok := h.friendPair(w, r)
	if !ok {
		return
	}

	if err := h.graph.AddFriend(r.Context(), id, friendID); err != nil {
		handleServiceError(w, h.log, err, "add friend")
		return
	}

	utils.ResponseSuccess(w, "Friend added successfully", nil)
}

// RemoveFriend handles DELETE /users/{id}/friends/{friendId}
func (h *UserHandler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	id, friendID, ok := h.friendPair(w, r)
	if !ok {
		return
	}

	if err := h.graph.RemoveFriend(r.Context(), id, friendID); err != nil {
		handleServiceError(w, h.log, err, "remove friend")
		return
	}

	utils.ResponseSuccess(w, "Friend removed successfully", nil)
}

// ConfirmFriend handles PUT /users/{id}/friends/{friendId}/confirm
func (h *UserHandler) ConfirmFriend(w http.ResponseWriter, r *http.Request) {
	id, friendID, ok := h.friendPair(w, r)
	if !ok {
		return
	}

	if err := h.graph.ConfirmFriend(r.Context(), id, friendID); err != nil {
		handleServiceError(w, h.log, err, "confirm friend")
		return
	}

	utils.ResponseSuccess(w, "Friendship confirmed successfully", nil)
}

// GetFriends handles GET /users/{id}/friends
func (h *UserHandler) GetFriends(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	friends, err := h.graph.GetFriends(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get friends")
		return
	}

	utils.ResponseSuccess(w, "Friends retrieved successfully", friends)
}

// GetCommonFriends handles GET /users/{id}/friends/common/{otherId}
func (h *UserHandler) GetCommonFriends(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	otherID, ok := pathID(w, r, "otherId")
	if !ok {
		return
	}

	friends, err := h.graph.GetCommonFriends(r.Context(), id, otherID)
	if err != nil {
		handleServiceError(w, h.log, err, "get common friends")
		return
	}

	utils.ResponseSuccess(w, "Common friends retrieved successfully", friends)
}

func (h *UserHandler) friendPair(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return 0, 0, false
	}
	friendID, ok := pathID(w, r, "friendId")
	if !ok {
		return 0, 0, false
	}
	return id, friendID, true
}
