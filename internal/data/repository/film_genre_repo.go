package repository

import (
	"context"
	"fmt"
	"strings"

	"film-catalog/pkg/database"

	"go.uber.org/zap"
)

type FilmGenreRepository interface {
	// ReplaceGenres drops every link of the film and inserts genreIDs.
	ReplaceGenres(ctx context.Context, filmID int64, genreIDs []int) error
}

type filmGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFilmGenreRepository(db database.PgxIface, log *zap.Logger) FilmGenreRepository {
	return &filmGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "film_genre")),
	}
}

func (r *filmGenreRepository) ReplaceGenres(ctx context.Context, filmID int64, genreIDs []int) error {
	conn := database.Conn(ctx, r.db)

	if _, err := conn.Exec(ctx, `DELETE FROM film_genres WHERE film_id = $1`, filmID); err != nil {
		r.log.Error("Failed to delete film_genres by film ID",
			zap.Error(err),
			zap.Int64("film_id", filmID),
		)
		return fmt.Errorf("failed to delete film_genres: %w", err)
	}

	if len(genreIDs) == 0 {
		return nil
	}

	// Build batch insert
	var query strings.Builder
	query.WriteString(`INSERT INTO film_genres (film_id, genre_id) VALUES `)
	args := make([]any, 0, len(genreIDs)*2)

	for i, genreID := range genreIDs {
		if i > 0 {
			query.WriteString(", ")
		}
		fmt.Fprintf(&query, "($%d, $%d)", i*2+1, i*2+2)
		args = append(args, filmID, genreID)
	}

	if _, err := conn.Exec(ctx, query.String(), args...); err != nil {
		r.log.Error("Failed to create batch film_genres",
			zap.Error(err),
			zap.Int64("film_id", filmID),
			zap.Int("count", len(genreIDs)),
		)
		return fmt.Errorf("failed to create batch film_genres: %w", translatePgError(err))
	}

	return nil
}
