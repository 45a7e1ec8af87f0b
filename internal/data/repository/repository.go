package repository

import (
	"context"
	"errors"

	"film-catalog/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned by updates that match no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert collides with an existing key.
	ErrDuplicate = errors.New("record already exists")
)

// Transactor runs a unit of work. Repository calls made with the ctx handed to fn
// commit or roll back together.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Repository struct {
	User       UserRepository
	Film       FilmRepository
	Genre      GenreRepository
	Mpa        MpaRepository
	FilmGenre  FilmGenreRepository
	Like       LikeRepository
	Friendship FriendshipRepository
	Tx         Transactor
}

// NewRepository builds the postgres-backed repositories.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Film:       NewFilmRepository(db, log),
		Genre:      NewGenreRepository(db, log),
		Mpa:        NewMpaRepository(db, log),
		FilmGenre:  NewFilmGenreRepository(db, log),
		Like:       NewLikeRepository(db, log),
		Friendship: NewFriendshipRepository(db, log),
		Tx:         &pgTransactor{db: db},
	}
}

type pgTransactor struct {
	db database.PgxIface
}

func (t *pgTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return database.WithTx(ctx, t.db, fn)
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translatePgError maps constraint violations onto the package sentinels.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return ErrDuplicate
	case pgForeignKeyViolation:
		return ErrNotFound
	}
	return err
}
