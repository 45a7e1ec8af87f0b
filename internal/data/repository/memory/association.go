package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"film-catalog/internal/data/entity"
	"film-catalog/internal/data/repository"
)

type likeRepository struct {
	s *Store
}

func (r *likeRepository) Add(_ context.Context, filmID, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.films[filmID]; !ok {
		return fmt.Errorf("add like: film %d: %w", filmID, repository.ErrNotFound)
	}
	if _, ok := r.s.users[userID]; !ok {
		return fmt.Errorf("add like: user %d: %w", userID, repository.ErrNotFound)
	}

	key := pair{filmID, userID}
	if _, ok := r.s.likes[key]; ok {
		return fmt.Errorf("add like: %w", repository.ErrDuplicate)
	}
	r.s.likes[key] = entity.Like{FilmID: filmID, UserID: userID, CreatedAt: time.Now()}
	return nil
}

func (r *likeRepository) Remove(_ context.Context, filmID, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.likes, pair{filmID, userID})
	return nil
}

func (r *likeRepository) FindUserIDsByFilmID(_ context.Context, filmID int64) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := []int64{}
	for key := range r.s.likes {
		if key.a == filmID {
			ids = append(ids, key.b)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (r *likeRepository) CountAll(_ context.Context) (map[int64]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[int64]int)
	for key := range r.s.likes {
		counts[key.a]++
	}
	return counts, nil
}

type friendshipRepository struct {
	s *Store
}

func (r *friendshipRepository) Add(_ context.Context, userID, friendID int64, status entity.FriendshipStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, id := range []int64{userID, friendID} {
		if _, ok := r.s.users[id]; !ok {
			return fmt.Errorf("add friendship: user %d: %w", id, repository.ErrNotFound)
		}
	}

	key := pair{userID, friendID}
	if _, ok := r.s.friendships[key]; ok {
		return fmt.Errorf("add friendship: %w", repository.ErrDuplicate)
	}
	r.s.friendships[key] = entity.Friendship{
		UserID:    userID,
		FriendID:  friendID,
		Status:    status,
		CreatedAt: time.Now(),
	}
	return nil
}

func (r *friendshipRepository) Remove(_ context.Context, userID, friendID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.friendships, pair{userID, friendID})
	return nil
}

func (r *friendshipRepository) FindFriendIDs(_ context.Context, userID int64) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := []int64{}
	for key := range r.s.friendships {
		if key.a == userID {
			ids = append(ids, key.b)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (r *friendshipRepository) FindStatus(_ context.Context, userID, friendID int64) (entity.FriendshipStatus, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.friendships[pair{userID, friendID}].Status, nil
}

func (r *friendshipRepository) UpdateStatus(_ context.Context, userID, friendID int64, status entity.FriendshipStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := pair{userID, friendID}
	f, ok := r.s.friendships[key]
	if !ok {
		return fmt.Errorf("update friendship %d->%d: %w", userID, friendID, repository.ErrNotFound)
	}
	f.Status = status
	r.s.friendships[key] = f
	return nil
}
