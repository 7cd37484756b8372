package repository

import (
	"context"
	"fmt"

	"secure-portal/internal/data/entity"
	"secure-portal/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	Find(ctx context.Context, token string) (*entity.RefreshToken, error)
	Delete(ctx context.Context, token string) error
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
}

type refreshTokenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRefreshTokenRepository(db database.PgxIface, log *zap.Logger) RefreshTokenRepository {
	return &refreshTokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "refresh_token")),
	}
}

func (r *refreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (id, token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		token.ID,
		token.Token,
		token.UserID,
		token.ExpiresAt,
		token.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to store refresh token",
			zap.Error(err),
			zap.String("user_id", token.UserID.String()),
		)
		return fmt.Errorf("store refresh token: %w", err)
	}

	return nil
}

// Find returns nil when the token is absent, which the auth service treats
// as revoked regardless of signature validity.
func (r *refreshTokenRepository) Find(ctx context.Context, token string) (*entity.RefreshToken, error) {
	query := `
		SELECT id, token, user_id, expires_at, created_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var stored entity.RefreshToken
	err := r.db.QueryRow(ctx, query, token).Scan(
		&stored.ID,
		&stored.Token,
		&stored.UserID,
		&stored.ExpiresAt,
		&stored.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find refresh token", zap.Error(err))
		return nil, fmt.Errorf("find refresh token: %w", err)
	}

	return &stored, nil
}

func (r *refreshTokenRepository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM refresh_tokens WHERE token = $1`

	_, err := r.db.Exec(ctx, query, token)
	if err != nil {
		r.log.Error("Failed to delete refresh token", zap.Error(err))
		return fmt.Errorf("delete refresh token: %w", err)
	}

	return nil
}

func (r *refreshTokenRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM refresh_tokens WHERE user_id = $1`

	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to delete user refresh tokens",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete refresh tokens for user %s: %w", userID.String(), err)
	}

	return nil
}
