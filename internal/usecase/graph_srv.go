package usecase

import (
	"context"
	"errors"
	"fmt"

	"film-catalog/internal/data/entity"
	"film-catalog/internal/data/repository"
	"film-catalog/internal/dto/response"
	"film-catalog/pkg/apperror"

	"go.uber.org/zap"
)

// GraphService maintains friendships between users and likes between users and films.
// Friendship is directed: AddFriend(u, f) only puts f into u's list.
type GraphService interface {
	AddFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	// ConfirmFriend accepts the request friendID sent to userID.
	ConfirmFriend(ctx context.Context, userID, friendID int64) error
	GetFriends(ctx context.Context, userID int64) ([]response.UserResponse, error)
	GetCommonFriends(ctx context.Context, userID, otherID int64) ([]response.UserResponse, error)
	AddLike(ctx context.Context, filmID, userID int64) error
	RemoveLike(ctx context.Context, filmID, userID int64) error
}

type graphService struct {
	lookup
}

func NewGraphService(repo *repository.Repository, log *zap.Logger) GraphService {
	return &graphService{
		lookup: lookup{
			repo: repo,
			log:  log.With(zap.String("service", "graph")),
		},
	}
}

func (s *graphService) AddFriend(ctx context.Context, userID, friendID int64) error {
	if userID == friendID {
		s.log.Warn("Attempt to befriend oneself", zap.Int64("user_id", userID))
		return apperror.InvalidOperation("user %d cannot add themselves as a friend", userID)
	}

	if err := s.requireUsers(ctx, userID, friendID); err != nil {
		return err
	}

	err := s.repo.Friendship.Add(ctx, userID, friendID, entity.FriendshipStatusPending)
	if errors.Is(err, repository.ErrDuplicate) {
		s.log.Warn("Friendship already exists",
			zap.Int64("user_id", userID),
			zap.Int64("friend_id", friendID),
		)
		return apperror.InvalidOperation("user %d is already friends with user %d", userID, friendID)
	}
	if err != nil {
		return storeError(err, fmt.Sprintf("add friend %d to user %d", friendID, userID))
	}

	s.log.Info("Friend added",
		zap.Int64("user_id", userID),
		zap.Int64("friend_id", friendID),
	)
	return nil
}

func (s *graphService) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	if err := s.requireUsers(ctx, userID, friendID); err != nil {
		return err
	}

	if err := s.repo.Friendship.Remove(ctx, userID, friendID); err != nil {
		s.log.Error("Failed to remove friend", zap.Error(err))
		return fmt.Errorf("remove friend %d from user %d: %w", friendID, userID, err)
	}

	s.log.Info("Friend removed",
		zap.Int64("user_id", userID),
		zap.Int64("friend_id", friendID),
	)
	return nil
}

func (s *graphService) ConfirmFriend(ctx context.Context, userID, friendID int64) error {
	if err := s.requireUsers(ctx, userID, friendID); err != nil {
		return err
	}

	status, err := s.repo.Friendship.FindStatus(ctx, friendID, userID)
	if err != nil {
		return fmt.Errorf("find friendship %d->%d: %w", friendID, userID, err)
	}
	if status == "" {
		s.log.Warn("No friend request to confirm",
			zap.Int64("user_id", userID),
			zap.Int64("friend_id", friendID),
		)
		return apperror.NotFound("user %d has not sent a friend request to user %d", friendID, userID)
	}
	if status == entity.FriendshipStatusConfirmed {
		return nil
	}

	if err := s.repo.Friendship.UpdateStatus(ctx, friendID, userID, entity.FriendshipStatusConfirmed); err != nil {
		return storeError(err, fmt.Sprintf("confirm friendship %d->%d", friendID, userID))
	}

	s.log.Info("Friendship confirmed",
		zap.Int64("user_id", userID),
		zap.Int64("friend_id", friendID),
	)
	return nil
}

func (s *graphService) GetFriends(ctx context.Context, userID int64) ([]response.UserResponse, error) {
	if _, err := s.user(ctx, userID); err != nil {
		return nil, err
	}

	ids, err := s.repo.Friendship.FindFriendIDs(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get friend ids", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get friends of user %d: %w", userID, err)
	}

	return s.usersByIDs(ctx, ids)
}

func (s *graphService) GetCommonFriends(ctx context.Context, userID, otherID int64) ([]response.UserResponse, error) {
	if err := s.requireUsers(ctx, userID, otherID); err != nil {
		return nil, err
	}

	left, err := s.repo.Friendship.FindFriendIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get friends of user %d: %w", userID, err)
	}
	right, err := s.repo.Friendship.FindFriendIDs(ctx, otherID)
	if err != nil {
		return nil, fmt.Errorf("get friends of user %d: %w", otherID, err)
	}

	return s.usersByIDs(ctx, intersectSorted(left, right))
}

func (s *graphService) AddLike(ctx context.Context, filmID, userID int64) error {
	if _, err := s.film(ctx, filmID); err != nil {
		return err
	}
	if _, err := s.user(ctx, userID); err != nil {
		return err
	}

	err := s.repo.Like.Add(ctx, filmID, userID)
	if errors.Is(err, repository.ErrDuplicate) {
		s.log.Warn("Like already exists",
			zap.Int64("film_id", filmID),
			zap.Int64("user_id", userID),
		)
		return apperror.InvalidOperation("user %d already liked film %d", userID, filmID)
	}
	if err != nil {
		return storeError(err, fmt.Sprintf("add like of user %d to film %d", userID, filmID))
	}

	s.log.Info("Like added",
		zap.Int64("film_id", filmID),
		zap.Int64("user_id", userID),
	)
	return nil
}

func (s *graphService) RemoveLike(ctx context.Context, filmID, userID int64) error {
	if _, err := s.film(ctx, filmID); err != nil {
		return err
	}
	if _, err := s.user(ctx, userID); err != nil {
		return err
	}

	if err := s.repo.Like.Remove(ctx, filmID, userID); err != nil {
		s.log.Error("Failed to remove like", zap.Error(err))
		return fmt.Errorf("remove like of user %d from film %d: %w", userID, filmID, err)
	}

	s.log.Info("Like removed",
		zap.Int64("film_id", filmID),
		zap.Int64("user_id", userID),
	)
	return nil
}

func (s *graphService) requireUsers(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		if _, err := s.user(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *graphService) usersByIDs(ctx context.Context, ids []int64) ([]response.UserResponse, error) {
	users, err := s.repo.User.FindByIDs(ctx, ids)
	if err != nil {
		s.log.Error("Failed to load users", zap.Error(err), zap.Int64s("user_ids", ids))
		return nil, fmt.Errorf("load users: %w", err)
	}

	if err := s.hydrateUsers(ctx, users); err != nil {
		s.log.Error("Failed to hydrate users", zap.Error(err))
		return nil, err
	}

	return response.UsersToResponse(users), nil
}

// intersectSorted returns the values present in both ascending slices.
func intersectSorted(a, b []int64) []int64 {
	result := []int64{}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			result = append(result, a[i])
			i++
			j++
		}
	}
	return result
}
