package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/multiplaymat/mpm-server/internal/logger"
	"github.com/multiplaymat/mpm-server/internal/models"
)

// ErrUserNameTaken is returned by Save when the unique name constraint rejects the insert.
var ErrUserNameTaken = errors.New("user name already taken")

const uniqueViolation = "23505"

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByName returns the user with the given name, or nil if none exists.
func (r *UserReadRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	const query = `
		SELECT id, name, email, password, created_at, updated_at
		FROM users
		WHERE name = $1
		LIMIT 1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, name)

	// Log with query in single line
	logger.Log.Debugw("sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"found", err == nil,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored record.
func (r *UserWriteRepository) Save(ctx context.Context, name, password, email string) (*models.User, error) {
	const query = `
		INSERT INTO users (name, email, password, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, name, email, password, created_at, updated_at
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, name, email, password)

	// Log with query in single line, never the digest
	logger.Log.Debugw("sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, email, "***"},
		"result", user.ID,
		"error", err,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrUserNameTaken
		}
		return nil, err
	}

	return &user, nil
}
