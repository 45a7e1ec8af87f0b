package response

import "film-catalog/internal/data/entity"

type UserResponse struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	Login    string  `json:"login"`
	Name     string  `json:"name"`
	Birthday string  `json:"birthday"`
	Friends  []int64 `json:"friends"`
}

func UserToResponse(user *entity.User) UserResponse {
	friends := user.Friends
	if friends == nil {
		friends = []int64{}
	}

	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Login:    user.Login,
		Name:     user.Name,
		Birthday: user.Birthday.Format("2006-01-02"),
		Friends:  friends,
	}
}

func UsersToResponse(users []*entity.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, UserToResponse(user))
	}
	return result
}
