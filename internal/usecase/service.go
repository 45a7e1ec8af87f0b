package usecase

import (
	"context"
	"errors"
	"fmt"

	"film-catalog/internal/data/entity"
	"film-catalog/internal/data/repository"
	"film-catalog/pkg/apperror"
	"film-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User    UserService
	Film    FilmService
	Catalog CatalogService
	Graph   GraphService
	Ranking RankingService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		User:    NewUserService(repo, log),
		Film:    NewFilmService(repo, log),
		Catalog: NewCatalogService(repo, log),
		Graph:   NewGraphService(repo, log),
		Ranking: NewRankingService(repo, log),
	}
}

// lookup holds the existence checks and hydration shared by the services.
type lookup struct {
	repo *repository.Repository
	log  *zap.Logger
}

func (l lookup) user(ctx context.Context, id int64) (*entity.User, error) {
	user, err := l.repo.User.FindByID(ctx, id)
	if err != nil {
		l.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", id))
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	if user == nil {
		l.log.Warn("User not found", zap.Int64("user_id", id))
		return nil, apperror.NotFound("user with id=%d not found", id)
	}
	return user, nil
}

func (l lookup) film(ctx context.Context, id int64) (*entity.Film, error) {
	film, err := l.repo.Film.FindByID(ctx, id)
	if err != nil {
		l.log.Error("Failed to find film", zap.Error(err), zap.Int64("film_id", id))
		return nil, fmt.Errorf("find film %d: %w", id, err)
	}
	if film == nil {
		l.log.Warn("Film not found", zap.Int64("film_id", id))
		return nil, apperror.NotFound("film with id=%d not found", id)
	}
	return film, nil
}

func (l lookup) hydrateUser(ctx context.Context, user *entity.User) error {
	friends, err := l.repo.Friendship.FindFriendIDs(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("load friends of user %d: %w", user.ID, err)
	}
	user.Friends = friends
	return nil
}

func (l lookup) hydrateUsers(ctx context.Context, users []*entity.User) error {
	for _, user := range users {
		if err := l.hydrateUser(ctx, user); err != nil {
			return err
		}
	}
	return nil
}

func (l lookup) hydrateFilm(ctx context.Context, film *entity.Film) error {
	mpa, err := l.repo.Mpa.FindByID(ctx, film.MpaID)
	if err != nil {
		return fmt.Errorf("load mpa of film %d: %w", film.ID, err)
	}
	film.Mpa = mpa

	genres, err := l.repo.Genre.FindByFilmID(ctx, film.ID)
	if err != nil {
		return fmt.Errorf("load genres of film %d: %w", film.ID, err)
	}
	film.Genres = genres

	likes, err := l.repo.Like.FindUserIDsByFilmID(ctx, film.ID)
	if err != nil {
		return fmt.Errorf("load likes of film %d: %w", film.ID, err)
	}
	film.Likes = likes
	return nil
}

func (l lookup) hydrateFilms(ctx context.Context, films []*entity.Film) error {
	for _, film := range films {
		if err := l.hydrateFilm(ctx, film); err != nil {
			return err
		}
	}
	return nil
}

// validate runs the struct tags of req and converts failures into a validation error.
func (l lookup) validate(req any) error {
	fields := utils.ValidateStruct(req)
	if len(fields) == 0 {
		return nil
	}
	l.log.Warn("Validation failed", zap.Any("errors", fields))
	return apperror.Validation(utils.FormatValidationErrors(fields), fields)
}

// storeError turns repository sentinels raised by constraint checks into typed errors.
func storeError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperror.Wrap(err, apperror.KindNotFound, message)
	case errors.Is(err, repository.ErrDuplicate):
		return apperror.Wrap(err, apperror.KindInvalidOperation, message)
	}
	return fmt.Errorf("%s: %w", message, err)
}
