package repository

import (
	"context"
	"errors"
	"fmt"

	"film-catalog/internal/data/entity"
	"film-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// FriendshipRepository stores directed friendship rows. A row (u, f) means u added f.
type FriendshipRepository interface {
	Add(ctx context.Context, userID, friendID int64, status entity.FriendshipStatus) error
	Remove(ctx context.Context, userID, friendID int64) error
	FindFriendIDs(ctx context.Context, userID int64) ([]int64, error)
	// FindStatus returns "" when the pair has no row.
	FindStatus(ctx context.Context, userID, friendID int64) (entity.FriendshipStatus, error)
	UpdateStatus(ctx context.Context, userID, friendID int64, status entity.FriendshipStatus) error
}

type friendshipRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFriendshipRepository(db database.PgxIface, log *zap.Logger) FriendshipRepository {
	return &friendshipRepository{
		db:  db,
		log: log.With(zap.String("repository", "friendship")),
	}
}

func (r *friendshipRepository) Add(ctx context.Context, userID, friendID int64, status entity.FriendshipStatus) error {
	query := `INSERT INTO friendships (user_id, friend_id, status) VALUES ($1, $2, $3)`

	if _, err := database.Conn(ctx, r.db).Exec(ctx, query, userID, friendID, status); err != nil {
		err = translatePgError(err)
		if !errors.Is(err, ErrDuplicate) {
			r.log.Error("Failed to add friendship",
				zap.Error(err),
				zap.Int64("user_id", userID),
				zap.Int64("friend_id", friendID),
			)
		}
		return fmt.Errorf("add friendship: %w", err)
	}

	return nil
}

func (r *friendshipRepository) Remove(ctx context.Context, userID, friendID int64) error {
	query := `DELETE FROM friendships WHERE user_id = $1 AND friend_id = $2`

	if _, err := database.Conn(ctx, r.db).Exec(ctx, query, userID, friendID); err != nil {
		r.log.Error("Failed to remove friendship",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("friend_id", friendID),
		)
		return fmt.Errorf("remove friendship: %w", err)
	}

	return nil
}

func (r *friendshipRepository) FindFriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	query := `SELECT friend_id FROM friendships WHERE user_id = $1 ORDER BY friend_id`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find friend ids",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find friend ids: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan friend id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *friendshipRepository) FindStatus(ctx context.Context, userID, friendID int64) (entity.FriendshipStatus, error) {
	query := `SELECT status FROM friendships WHERE user_id = $1 AND friend_id = $2`

	var status entity.FriendshipStatus
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, userID, friendID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		r.log.Error("Failed to find friendship status",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("friend_id", friendID),
		)
		return "", fmt.Errorf("find friendship status: %w", err)
	}

	return status, nil
}

func (r *friendshipRepository) UpdateStatus(ctx context.Context, userID, friendID int64, status entity.FriendshipStatus) error {
	query := `UPDATE friendships SET status = $3 WHERE user_id = $1 AND friend_id = $2`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, userID, friendID, status)
	if err != nil {
		r.log.Error("Failed to update friendship status",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("friend_id", friendID),
		)
		return fmt.Errorf("update friendship status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update friendship %d->%d: %w", userID, friendID, ErrNotFound)
	}

	return nil
}
