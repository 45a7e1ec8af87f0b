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

type MpaRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Mpa, error)
	FindAll(ctx context.Context) ([]*entity.Mpa, error)
}

type mpaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMpaRepository(db database.PgxIface, log *zap.Logger) MpaRepository {
	return &mpaRepository{
		db:  db,
		log: log.With(zap.String("repository", "mpa")),
	}
}

func (r *mpaRepository) FindByID(ctx context.Context, id int) (*entity.Mpa, error) {
	query := `SELECT mpa_id, name, COALESCE(description, '') FROM mpa_ratings WHERE mpa_id = $1`

	var mpa entity.Mpa
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&mpa.ID,
		&mpa.Name,
		&mpa.Description,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find mpa by ID",
			zap.Error(err),
			zap.Int("mpa_id", id),
		)
		return nil, fmt.Errorf("find mpa by id: %w", err)
	}

	return &mpa, nil
}

func (r *mpaRepository) FindAll(ctx context.Context) ([]*entity.Mpa, error) {
	query := `SELECT mpa_id, name, COALESCE(description, '') FROM mpa_ratings ORDER BY mpa_id`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all mpa ratings", zap.Error(err))
		return nil, fmt.Errorf("find all mpa: %w", err)
	}
	defer rows.Close()

	ratings := []*entity.Mpa{}
	for rows.Next() {
		var mpa entity.Mpa
		if err := rows.Scan(&mpa.ID, &mpa.Name, &mpa.Description); err != nil {
			r.log.Error("Failed to scan mpa row", zap.Error(err))
			return nil, fmt.Errorf("scan mpa row: %w", err)
		}
		ratings = append(ratings, &mpa)
	}

	return ratings, rows.Err()
}
