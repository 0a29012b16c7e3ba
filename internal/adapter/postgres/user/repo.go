// Package user implements the user repository using PostgreSQL.
package user

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

const table = "users"

var columns = []string{
	"id", "email", "name", "password_hash", "role", "created_at", "updated_at",
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getWhere(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail returns a user by email (stored lowercased).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getWhere(ctx, sq.Eq{"email": email}, uuid.Nil)
}

func (r *Repo) getWhere(ctx context.Context, pred sq.Eq, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Select(columns...).From(table).Where(pred).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// Create inserts a new user.
// Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.Name, u.PasswordHash, u.Role.String(),
			u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return created, nil
}

// Promote grants the admin role to a user.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) Promote(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Update(table).
		Set("role", domain.UserRoleAdmin.String()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build promote: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// Count returns the total number of users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}

func columnList() string {
	list := columns[0]
	for _, c := range columns[1:] {
		list += ", " + c
	}
	return list
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)

	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &role,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}

	u.Role = domain.UserRole(role)
	return &u, nil
}
