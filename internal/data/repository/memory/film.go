package memory

import (
	"context"
	"fmt"

	"film-catalog/internal/data/entity"
	"film-catalog/internal/data/repository"
)

type filmRepository struct {
	s *Store
}

func (r *filmRepository) Create(_ context.Context, film *entity.Film) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.mpa[film.MpaID]; !ok {
		return fmt.Errorf("create film: mpa %d: %w", film.MpaID, repository.ErrNotFound)
	}

	r.s.nextFilmID++
	film.ID = r.s.nextFilmID
	r.s.films[film.ID] = storedFilm(film)
	return nil
}

func (r *filmRepository) Update(_ context.Context, film *entity.Film) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.films[film.ID]; !ok {
		return fmt.Errorf("update film %d: %w", film.ID, repository.ErrNotFound)
	}
	if _, ok := r.s.mpa[film.MpaID]; !ok {
		return fmt.Errorf("update film: mpa %d: %w", film.MpaID, repository.ErrNotFound)
	}
	r.s.films[film.ID] = storedFilm(film)
	return nil
}

func (r *filmRepository) FindByID(_ context.Context, id int64) (*entity.Film, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	film, ok := r.s.films[id]
	if !ok {
		return nil, nil
	}
	return &film, nil
}

func (r *filmRepository) FindAll(_ context.Context) ([]*entity.Film, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	films := make([]*entity.Film, 0, len(r.s.films))
	for _, id := range sortedKeys(r.s.films) {
		film := r.s.films[id]
		films = append(films, &film)
	}
	return films, nil
}

func storedFilm(film *entity.Film) entity.Film {
	f := *film
	f.Mpa = nil
	f.Genres = nil
	f.Likes = nil
	return f
}
