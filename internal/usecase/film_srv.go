package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"film-catalog/internal/data/entity"
	"film-catalog/internal/data/repository"
	"film-catalog/internal/dto/request"
	"film-catalog/internal/dto/response"
	"film-catalog/pkg/apperror"

	"go.uber.org/zap"
)

type FilmService interface {
	CreateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error)
	UpdateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error)
	GetFilm(ctx context.Context, filmID int64) (*response.FilmResponse, error)
	GetAllFilms(ctx context.Context) ([]response.FilmResponse, error)
}

type filmService struct {
	lookup
}

func NewFilmService(repo *repository.Repository, log *zap.Logger) FilmService {
	return &filmService{
		lookup: lookup{
			repo: repo,
			log:  log.With(zap.String("service", "film")),
		},
	}
}

func (s *filmService) CreateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error) {
	film, genreIDs, err := s.toEntity(ctx, req)
	if err != nil {
		return nil, err
	}

	err = s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Film.Create(ctx, film); err != nil {
			return storeError(err, "create film")
		}
		if err := s.repo.FilmGenre.ReplaceGenres(ctx, film.ID, genreIDs); err != nil {
			return storeError(err, fmt.Sprintf("set genres of film %d", film.ID))
		}
		return nil
	})
	if err != nil {
		s.log.Error("Failed to create film", zap.Error(err), zap.String("name", film.Name))
		return nil, err
	}

	s.log.Info("Film created",
		zap.Int64("film_id", film.ID),
		zap.String("name", film.Name),
		zap.Ints("genre_ids", genreIDs),
	)

	return s.respond(ctx, film)
}

func (s *filmService) UpdateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error) {
	film, genreIDs, err := s.toEntity(ctx, req)
	if err != nil {
		return nil, err
	}
	film.ID = req.ID

	if _, err := s.film(ctx, film.ID); err != nil {
		return nil, err
	}

	err = s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Film.Update(ctx, film); err != nil {
			return storeError(err, fmt.Sprintf("update film %d", film.ID))
		}
		if err := s.repo.FilmGenre.ReplaceGenres(ctx, film.ID, genreIDs); err != nil {
			return storeError(err, fmt.Sprintf("set genres of film %d", film.ID))
		}
		return nil
	})
	if err != nil {
		s.log.Error("Failed to update film", zap.Error(err), zap.Int64("film_id", film.ID))
		return nil, err
	}

	s.log.Info("Film updated", zap.Int64("film_id", film.ID))

	return s.respond(ctx, film)
}

func (s *filmService) GetFilm(ctx context.Context, filmID int64) (*response.FilmResponse, error) {
	film, err := s.film(ctx, filmID)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, film)
}

func (s *filmService) GetAllFilms(ctx context.Context) ([]response.FilmResponse, error) {
	films, err := s.repo.Film.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get all films", zap.Error(err))
		return nil, fmt.Errorf("get films: %w", err)
	}

	if err := s.hydrateFilms(ctx, films); err != nil {
		s.log.Error("Failed to hydrate films", zap.Error(err))
		return nil, err
	}

	s.log.Debug("Films retrieved", zap.Int("count", len(films)))

	return response.FilmsToResponse(films), nil
}

func (s *filmService) respond(ctx context.Context, film *entity.Film) (*response.FilmResponse, error) {
	if err := s.hydrateFilm(ctx, film); err != nil {
		s.log.Error("Failed to hydrate film", zap.Error(err), zap.Int64("film_id", film.ID))
		return nil, err
	}
	resp := response.FilmToResponse(film)
	return &resp, nil
}

// toEntity validates req, deduplicates its genres and resolves every reference.
// Returned genre ids are ascending.
func (s *filmService) toEntity(ctx context.Context, req *request.FilmRequest) (*entity.Film, []int, error) {
	if err := s.validate(req); err != nil {
		return nil, nil, err
	}

	releaseDate, err := time.Parse(dateLayout, req.ReleaseDate)
	if err != nil {
		return nil, nil, apperror.Validation("invalid release date", map[string]string{"ReleaseDate": "Must be a date in format 2006-01-02"})
	}
	if releaseDate.Before(entity.ReleaseDateFloor) {
		s.log.Warn("Release date before floor", zap.String("release_date", req.ReleaseDate))
		return nil, nil, apperror.Validation(
			"release date must not be before "+entity.ReleaseDateFloor.Format(dateLayout),
			map[string]string{"ReleaseDate": "Must not be before " + entity.ReleaseDateFloor.Format(dateLayout)},
		)
	}

	mpa, err := s.repo.Mpa.FindByID(ctx, req.Mpa.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("find mpa %d: %w", req.Mpa.ID, err)
	}
	if mpa == nil {
		s.log.Warn("MPA rating not found", zap.Int("mpa_id", req.Mpa.ID))
		return nil, nil, apperror.NotFound("mpa with id=%d not found", req.Mpa.ID)
	}

	genreIDs := make([]int, 0, len(req.Genres))
	for _, g := range req.Genres {
		genreIDs = append(genreIDs, g.ID)
	}
	slices.Sort(genreIDs)
	genreIDs = slices.Compact(genreIDs)

	for _, id := range genreIDs {
		genre, err := s.repo.Genre.FindByID(ctx, id)
		if err != nil {
			return nil, nil, fmt.Errorf("find genre %d: %w", id, err)
		}
		if genre == nil {
			s.log.Warn("Genre not found", zap.Int("genre_id", id))
			return nil, nil, apperror.NotFound("genre with id=%d not found", id)
		}
	}

	return &entity.Film{
		Name:        req.Name,
		Description: req.Description,
		ReleaseDate: releaseDate,
		Duration:    req.Duration,
		MpaID:       mpa.ID,
	}, genreIDs, nil
}
