package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/forecast-bot/internal/domain/contract"
	"github.com/diegoclair/forecast-bot/internal/domain/entity"
)

type userRepo struct {
	db dbConn
}

func newUserRepo(db dbConn) contract.UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *entity.User) error {
	if user.RegisteredAt.IsZero() {
		user.RegisteredAt = time.Now().UTC()
	}

	query := `
		INSERT INTO users (user_key, chat_id, username, display_name, language, default_profile_key, registered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		user.Key,
		user.ChatID,
		user.Username,
		user.DisplayName,
		user.Language,
		user.DefaultProfileKey,
		user.RegisteredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepo) Get(ctx context.Context, key string) (*entity.User, error) {
	user := &entity.User{}
	query := `
		SELECT user_key, chat_id, username, display_name, language, default_profile_key, registered_at
		FROM users
		WHERE user_key = ?
	`

	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&user.Key,
		&user.ChatID,
		&user.Username,
		&user.DisplayName,
		&user.Language,
		&user.DefaultProfileKey,
		&user.RegisteredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.RegisteredAt = user.RegisteredAt.UTC()
	return user, nil
}

func (r *userRepo) Update(ctx context.Context, key string, update entity.UserUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	var (
		sets []string
		args []interface{}
	)

	if update.DisplayName != nil {
		sets = append(sets, "display_name = ?")
		args = append(args, *update.DisplayName)
	}
	if update.Language != nil {
		sets = append(sets, "language = ?")
		args = append(args, *update.Language)
	}
	if update.DefaultProfileKey != nil {
		sets = append(sets, "default_profile_key = ?")
		args = append(args, *update.DefaultProfileKey)
	}

	query := `UPDATE users SET ` + strings.Join(sets, ", ") + ` WHERE user_key = ?`
	args = append(args, key)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// Delete removes the user record only; its profiles are left in place
func (r *userRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
