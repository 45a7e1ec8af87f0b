package memory

import (
	"context"
	"fmt"
	"slices"

	"film-catalog/internal/data/entity"
	"film-catalog/internal/data/repository"
)

type genreRepository struct {
	s *Store
}

func (r *genreRepository) FindByID(_ context.Context, id int) (*entity.Genre, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	genre, ok := r.s.genres[id]
	if !ok {
		return nil, nil
	}
	return &genre, nil
}

func (r *genreRepository) FindAll(_ context.Context) ([]*entity.Genre, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	genres := make([]*entity.Genre, 0, len(r.s.genres))
	for _, id := range sortedKeys(r.s.genres) {
		genre := r.s.genres[id]
		genres = append(genres, &genre)
	}
	return genres, nil
}

func (r *genreRepository) FindByFilmID(_ context.Context, filmID int64) ([]entity.Genre, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	genres := []entity.Genre{}
	for _, id := range sortedKeys(r.s.filmGenres[filmID]) {
		genres = append(genres, r.s.genres[id])
	}
	return genres, nil
}

type mpaRepository struct {
	s *Store
}

func (r *mpaRepository) FindByID(_ context.Context, id int) (*entity.Mpa, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	mpa, ok := r.s.mpa[id]
	if !ok {
		return nil, nil
	}
	return &mpa, nil
}

func (r *mpaRepository) FindAll(_ context.Context) ([]*entity.Mpa, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ratings := make([]*entity.Mpa, 0, len(r.s.mpa))
	for _, id := range sortedKeys(r.s.mpa) {
		mpa := r.s.mpa[id]
		ratings = append(ratings, &mpa)
	}
	return ratings, nil
}

type filmGenreRepository struct {
	s *Store
}

func (r *filmGenreRepository) ReplaceGenres(_ context.Context, filmID int64, genreIDs []int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.films[filmID]; !ok {
		return fmt.Errorf("replace genres: film %d: %w", filmID, repository.ErrNotFound)
	}

	set := make(map[int]struct{}, len(genreIDs))
	for _, id := range genreIDs {
		if _, ok := r.s.genres[id]; !ok {
			return fmt.Errorf("replace genres: genre %d: %w", id, repository.ErrNotFound)
		}
		if _, ok := set[id]; ok {
			return fmt.Errorf("replace genres: genre %d: %w", id, repository.ErrDuplicate)
		}
		set[id] = struct{}{}
	}

	r.s.filmGenres[filmID] = set
	return nil
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[K int | int64, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
