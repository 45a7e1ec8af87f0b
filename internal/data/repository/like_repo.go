package repository

import (
	"context"
	"errors"
	"fmt"

	"film-catalog/pkg/database"

	"go.uber.org/zap"
)

type LikeRepository interface {
	Add(ctx context.Context, filmID, userID int64) error
	Remove(ctx context.Context, filmID, userID int64) error
	FindUserIDsByFilmID(ctx context.Context, filmID int64) ([]int64, error)
	// CountAll returns like counts keyed by film id. Films without likes are absent.
	CountAll(ctx context.Context) (map[int64]int, error)
}

type likeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLikeRepository(db database.PgxIface, log *zap.Logger) LikeRepository {
	return &likeRepository{
		db:  db,
		log: log.With(zap.String("repository", "like")),
	}
}

func (r *likeRepository) Add(ctx context.Context, filmID, userID int64) error {
	query := `INSERT INTO film_likes (film_id, user_id) VALUES ($1, $2)`

	if _, err := database.Conn(ctx, r.db).Exec(ctx, query, filmID, userID); err != nil {
		err = translatePgError(err)
		if !errors.Is(err, ErrDuplicate) {
			r.log.Error("Failed to add like",
				zap.Error(err),
				zap.Int64("film_id", filmID),
				zap.Int64("user_id", userID),
			)
		}
		return fmt.Errorf("add like: %w", err)
	}

	return nil
}

func (r *likeRepository) Remove(ctx context.Context, filmID, userID int64) error {
	query := `DELETE FROM film_likes WHERE film_id = $1 AND user_id = $2`

	if _, err := database.Conn(ctx, r.db).Exec(ctx, query, filmID, userID); err != nil {
		r.log.Error("Failed to remove like",
			zap.Error(err),
			zap.Int64("film_id", filmID),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("remove like: %w", err)
	}

	return nil
}

func (r *likeRepository) FindUserIDsByFilmID(ctx context.Context, filmID int64) ([]int64, error) {
	query := `SELECT user_id FROM film_likes WHERE film_id = $1 ORDER BY user_id`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, filmID)
	if err != nil {
		r.log.Error("Failed to find likes by film ID",
			zap.Error(err),
			zap.Int64("film_id", filmID),
		)
		return nil, fmt.Errorf("find likes by film id: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan like row: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *likeRepository) CountAll(ctx context.Context) (map[int64]int, error) {
	query := `SELECT film_id, COUNT(*) FROM film_likes GROUP BY film_id`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to count likes", zap.Error(err))
		return nil, fmt.Errorf("count likes: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var (
			filmID int64
			count  int
		)
		if err := rows.Scan(&filmID, &count); err != nil {
			return nil, fmt.Errorf("scan like count: %w", err)
		}
		counts[filmID] = count
	}

	return counts, rows.Err()
}
