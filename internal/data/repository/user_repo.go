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

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user and stores the generated id on it
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (email, login, name, birthday)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id
	`

	err := database.Conn(ctx, ur.db).QueryRow(ctx, query,
		user.Email,
		user.Login,
		user.Name,
		user.Birthday,
	).Scan(&user.ID)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.String("login", user.Login),
		)
		return fmt.Errorf("create user %s: %w", user.Login, err)
	}

	return nil
}

func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET email = $2, login = $3, name = $4, birthday = $5
		WHERE user_id = $1
	`

	result, err := database.Conn(ctx, ur.db).Exec(ctx, query,
		user.ID,
		user.Email,
		user.Login,
		user.Name,
		user.Birthday,
	)

	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.Int64("user_id", user.ID),
		)
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update user %d: %w", user.ID, ErrNotFound)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT user_id, email, login, COALESCE(name, login), birthday
		FROM users
		WHERE user_id = $1
	`

	var user entity.User
	err := database.Conn(ctx, ur.db).QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Login,
		&user.Name,
		&user.Birthday,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}

	return &user, nil
}

// FindByIDs loads the given users in one round trip, ordered by id
func (ur *userRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	query := `
		SELECT user_id, email, login, COALESCE(name, login), birthday
		FROM users
		WHERE user_id = ANY($1)
		ORDER BY user_id
	`

	rows, err := database.Conn(ctx, ur.db).Query(ctx, query, ids)
	if err != nil {
		ur.log.Error("Failed to find users by IDs",
			zap.Error(err),
			zap.Int64s("user_ids", ids),
		)
		return nil, fmt.Errorf("find users by ids: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (ur *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT user_id, email, login, COALESCE(name, login), birthday
		FROM users
		ORDER BY user_id
	`

	rows, err := database.Conn(ctx, ur.db).Query(ctx, query)
	if err != nil {
		ur.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close() // IMPORTANT: Close rows to release database connection

	return scanUsers(rows)
}

func scanUsers(rows pgx.Rows) ([]*entity.User, error) {
	users := []*entity.User{}
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Login,
			&user.Name,
			&user.Birthday,
		)
		if err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	// Check for errors during iteration (not just database errors)
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}
