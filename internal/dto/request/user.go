package request

// UserRequest is used for create and update. ID is ignored on create.
type UserRequest struct {
	ID       int64  `json:"id"`
	Email    string `json:"email" validate:"required,email"`
	Login    string `json:"login" validate:"required,nowhitespace"`
	Name     string `json:"name"`
	Birthday string `json:"birthday" validate:"required,datetime=2006-01-02"`
}
