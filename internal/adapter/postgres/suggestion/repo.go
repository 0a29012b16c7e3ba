// Package suggestion implements the edit suggestion repository using PostgreSQL.
package suggestion

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maayplatform/afmaay-backend/internal/adapter/postgres"
	"github.com/maayplatform/afmaay-backend/internal/domain"
)

const table = "edit_suggestions"

var columns = []string{
	"id", "entry_id", "suggester_id", "maay_word", "english_translation",
	"reason", "status", "created_at",
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const defaultListLimit = 100

// Repo provides edit suggestion persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new suggestion repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a suggestion by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.EditSuggestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	s, err := scanSuggestion(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "suggestion", id)
	}

	return s, nil
}

// Create inserts a new suggestion.
func (r *Repo) Create(ctx context.Context, s *domain.EditSuggestion) (*domain.EditSuggestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Insert(table).
		Columns(columns...).
		Values(s.ID, s.EntryID, s.SuggesterID, s.MaayWord, s.Translation,
			s.Reason, s.Status.String(), s.CreatedAt).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanSuggestion(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "suggestion", s.ID)
	}

	return created, nil
}

// List returns suggestions, optionally scoped to a status and/or entry,
// newest first.
func (r *Repo) List(ctx context.Context, status *domain.SuggestionStatus, entryID *uuid.UUID) ([]*domain.EditSuggestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := builder.Select(columns...).From(table)
	if status != nil {
		b = b.Where(sq.Eq{"status": status.String()})
	}
	if entryID != nil {
		b = b.Where(sq.Eq{"entry_id": *entryID})
	}

	sql, args, err := b.OrderBy("created_at DESC").Limit(defaultListLimit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	defer rows.Close()

	suggestions := []*domain.EditSuggestion{}
	for rows.Next() {
		s, err := scanSuggestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		suggestions = append(suggestions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate suggestions: %w", err)
	}

	return suggestions, nil
}

// Resolve moves a pending suggestion to a terminal state (applied or
// dismissed). Resolving a suggestion that is not pending returns
// domain.ErrConflict; a missing one, domain.ErrNotFound.
func (r *Repo) Resolve(ctx context.Context, id uuid.UUID, status domain.SuggestionStatus) (*domain.EditSuggestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Update(table).
		Set("status", status.String()).
		Where(sq.Eq{"id": id, "status": domain.SuggestionStatusPending.String()}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build resolve: %w", err)
	}

	s, err := scanSuggestion(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, fmt.Errorf("suggestion %s: %w", id, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "suggestion", id)
	}

	return s, nil
}

func columnList() string {
	list := columns[0]
	for _, c := range columns[1:] {
		list += ", " + c
	}
	return list
}

func scanSuggestion(row pgx.Row) (*domain.EditSuggestion, error) {
	var (
		s      domain.EditSuggestion
		status string
	)

	err := row.Scan(&s.ID, &s.EntryID, &s.SuggesterID, &s.MaayWord,
		&s.Translation, &s.Reason, &status, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	s.Status = domain.SuggestionStatus(status)
	return &s, nil
}
