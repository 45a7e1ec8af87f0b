package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"film-catalog/internal/data/entity"
	"film-catalog/internal/data/repository"
	"film-catalog/internal/dto/request"
	"film-catalog/internal/dto/response"
	"film-catalog/pkg/apperror"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type UserService interface {
	CreateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error)
	GetUser(ctx context.Context, userID int64) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context) ([]response.UserResponse, error)
}

type userService struct {
	lookup
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		lookup: lookup{
			repo: repo,
			log:  log.With(zap.String("service", "user")),
		},
	}
}

func (s *userService) CreateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error) {
	user, err := s.toEntity(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("login", user.Login),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error) {
	user, err := s.toEntity(req)
	if err != nil {
		return nil, err
	}
	user.ID = req.ID

	if _, err := s.user(ctx, user.ID); err != nil {
		return nil, err
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, storeError(err, fmt.Sprintf("update user %d", user.ID))
	}

	if err := s.hydrateUser(ctx, user); err != nil {
		s.log.Error("Failed to hydrate user", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, err
	}

	s.log.Info("User updated", zap.Int64("user_id", user.ID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetUser(ctx context.Context, userID int64) (*response.UserResponse, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.hydrateUser(ctx, user); err != nil {
		s.log.Error("Failed to hydrate user", zap.Error(err), zap.Int64("user_id", userID))
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("get users: %w", err)
	}

	if err := s.hydrateUsers(ctx, users); err != nil {
		s.log.Error("Failed to hydrate users", zap.Error(err))
		return nil, err
	}

	s.log.Debug("Users retrieved", zap.Int("count", len(users)))

	return response.UsersToResponse(users), nil
}

// toEntity validates req and applies the name default.
func (s *userService) toEntity(req *request.UserRequest) (*entity.User, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	birthday, err := time.Parse(dateLayout, req.Birthday)
	if err != nil {
		return nil, apperror.Validation("invalid birthday", map[string]string{"Birthday": "Must be a date in format 2006-01-02"})
	}
	if birthday.After(time.Now()) {
		s.log.Warn("Birthday in the future", zap.String("birthday", req.Birthday))
		return nil, apperror.Validation("birthday cannot be in the future", map[string]string{"Birthday": "Must not be in the future"})
	}

	name := req.Name
	if strings.TrimSpace(name) == "" {
		name = req.Login
	}

	return &entity.User{
		Email:    req.Email,
		Login:    req.Login,
		Name:     name,
		Birthday: birthday,
	}, nil
}
