package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"film-catalog/internal/data/entity"
	"film-catalog/internal/data/repository"
	"film-catalog/internal/dto/response"
	"film-catalog/pkg/apperror"

	"go.uber.org/zap"
)

const DefaultPopularCount = 10

type RankingService interface {
	// GetPopular returns up to count films by like count descending, ties by id ascending.
	GetPopular(ctx context.Context, count int) ([]response.FilmResponse, error)
}

type rankingService struct {
	lookup
}

func NewRankingService(repo *repository.Repository, log *zap.Logger) RankingService {
	return &rankingService{
		lookup: lookup{
			repo: repo,
			log:  log.With(zap.String("service", "ranking")),
		},
	}
}

func (s *rankingService) GetPopular(ctx context.Context, count int) ([]response.FilmResponse, error) {
	if count <= 0 {
		s.log.Warn("Invalid popular count", zap.Int("count", count))
		return nil, apperror.InvalidArgument("count must be positive, got %d", count)
	}

	films, err := s.repo.Film.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get films", zap.Error(err))
		return nil, fmt.Errorf("get films: %w", err)
	}

	likes, err := s.repo.Like.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count likes", zap.Error(err))
		return nil, fmt.Errorf("count likes: %w", err)
	}

	slices.SortFunc(films, func(a, b *entity.Film) int {
		if c := cmp.Compare(likes[b.ID], likes[a.ID]); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	if len(films) > count {
		films = films[:count]
	}

	if err := s.hydrateFilms(ctx, films); err != nil {
		s.log.Error("Failed to hydrate films", zap.Error(err))
		return nil, err
	}

	s.log.Debug("Popular films computed",
		zap.Int("requested", count),
		zap.Int("returned", len(films)),
	)

	return response.FilmsToResponse(films), nil
}
