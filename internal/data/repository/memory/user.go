package memory

import (
	"context"
	"fmt"
	"slices"

	"film-catalog/internal/data/entity"
	"film-catalog/internal/data/repository"
)

type userRepository struct {
	s *Store
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextUserID++
	user.ID = r.s.nextUserID
	r.s.users[user.ID] = storedUser(user)
	return nil
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; !ok {
		return fmt.Errorf("update user %d: %w", user.ID, repository.ErrNotFound)
	}
	r.s.users[user.ID] = storedUser(user)
	return nil
}

func (r *userRepository) FindByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) FindByIDs(_ context.Context, ids []int64) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	users := make([]*entity.User, 0, len(sorted))
	for _, id := range sorted {
		if user, ok := r.s.users[id]; ok {
			users = append(users, &user)
		}
	}
	return users, nil
}

func (r *userRepository) FindAll(_ context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.s.users))
	for _, id := range sortedKeys(r.s.users) {
		user := r.s.users[id]
		users = append(users, &user)
	}
	return users, nil
}

func storedUser(user *entity.User) entity.User {
	u := *user
	u.Friends = nil
	return u
}
