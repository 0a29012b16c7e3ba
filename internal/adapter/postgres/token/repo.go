// Package token implements the refresh token repository using PostgreSQL.
package token

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maayplatform/afmaay-backend/internal/adapter/postgres"
	"github.com/maayplatform/afmaay-backend/internal/domain"
)

const table = "refresh_tokens"

var columns = []string{
	"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at",
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a new refresh token hash.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Insert(table).
		Columns(columns...).
		Values(t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.CreatedAt, t.RevokedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", t.ID)
	}

	return nil
}

// GetByHash returns a token record by its SHA-256 hash.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Select(columns...).From(table).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	t, err := scanToken(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	return t, nil
}

// RevokeByID marks a token revoked. Idempotent.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Update(table).
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where("revoked_at IS NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}

	return nil
}

// RevokeAllByUser revokes every live token of a user (logout everywhere).
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Update(table).
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID}).
		Where("revoked_at IS NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke all: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}

	return nil
}

// DeleteExpired removes expired tokens. Returns the number deleted.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, "DELETE FROM "+table+" WHERE expires_at < now()")
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func scanToken(row pgx.Row) (*domain.RefreshToken, error) {
	var t domain.RefreshToken

	err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt,
		&t.CreatedAt, &t.RevokedAt)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
