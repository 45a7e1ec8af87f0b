package usecase

import (
	"context"
	"fmt"

	"film-catalog/internal/data/repository"
	"film-catalog/internal/dto/response"
	"film-catalog/pkg/apperror"

	"go.uber.org/zap"
)

// CatalogService serves the genre and MPA reference tables.
type CatalogService interface {
	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
	GetGenre(ctx context.Context, id int) (*response.GenreResponse, error)
	GetMpaRatings(ctx context.Context) ([]response.MpaResponse, error)
	GetMpa(ctx context.Context, id int) (*response.MpaResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get genres", zap.Error(err))
		return nil, fmt.Errorf("get genres: %w", err)
	}

	result := make([]response.GenreResponse, 0, len(genres))
	for _, genre := range genres {
		result = append(result, response.GenreToResponse(genre))
	}
	return result, nil
}

func (s *catalogService) GetGenre(ctx context.Context, id int) (*response.GenreResponse, error) {
	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get genre", zap.Error(err), zap.Int("genre_id", id))
		return nil, fmt.Errorf("get genre %d: %w", id, err)
	}
	if genre == nil {
		return nil, apperror.NotFound("genre with id=%d not found", id)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *catalogService) GetMpaRatings(ctx context.Context) ([]response.MpaResponse, error) {
	ratings, err := s.repo.Mpa.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get mpa ratings", zap.Error(err))
		return nil, fmt.Errorf("get mpa ratings: %w", err)
	}

	result := make([]response.MpaResponse, 0, len(ratings))
	for _, mpa := range ratings {
		result = append(result, response.MpaToResponse(mpa))
	}
	return result, nil
}

func (s *catalogService) GetMpa(ctx context.Context, id int) (*response.MpaResponse, error) {
	mpa, err := s.repo.Mpa.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get mpa", zap.Error(err), zap.Int("mpa_id", id))
		return nil, fmt.Errorf("get mpa %d: %w", id, err)
	}
	if mpa == nil {
		return nil, apperror.NotFound("mpa with id=%d not found", id)
	}

	resp := response.MpaToResponse(mpa)
	return &resp, nil
}
