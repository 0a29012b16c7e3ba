// Package gap implements the vocabulary gap repository using PostgreSQL.
// Gaps are deduplicated on the normalized English term; recurrences
// increment the frequency counter in place.
package gap

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

const table = "vocabulary_gaps"

var columns = []string{
	"id", "english_term", "term_normalized", "context", "domain", "frequency",
	"suggested_maay", "status", "version", "created_at",
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const defaultListLimit = 100

// Repo provides vocabulary gap persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new gap repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a gap by primary key.
// Returns domain.ErrNotFound if the gap does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyGap, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	g, err := scanGap(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "gap", id)
	}

	return g, nil
}

// Record upserts a gap observation. A new normalized term inserts a fresh
// record with frequency 1; a recurrence increments frequency on the existing
// record and refreshes the context snippet. Returns the stored gap.
func (r *Repo) Record(ctx context.Context, g *domain.VocabularyGap) (*domain.VocabularyGap, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Insert(table).
		Columns(columns...).
		Values(g.ID, g.EnglishTerm, g.TermNormalized, g.Context, g.Domain,
			g.Frequency, g.SuggestedMaay, g.Status.String(), g.Version, g.CreatedAt).
		Suffix(`ON CONFLICT (term_normalized) DO UPDATE
			SET frequency = ` + table + `.frequency + 1,
			    context = EXCLUDED.context
			RETURNING ` + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert: %w", err)
	}

	stored, err := scanGap(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "gap", g.ID)
	}

	return stored, nil
}

// List returns gaps matching the filter, most frequent first.
func (r *Repo) List(ctx context.Context, f domain.GapFilter) ([]*domain.VocabularyGap, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := builder.Select(columns...).From(table)
	if f.Status != nil {
		b = b.Where(sq.Eq{"status": f.Status.String()})
	}
	if f.Domain != nil && *f.Domain != "" {
		b = b.Where(sq.Eq{"domain": *f.Domain})
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	sql, args, err := b.OrderBy("frequency DESC", "created_at").Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list gaps: %w", err)
	}
	defer rows.Close()

	gaps := []*domain.VocabularyGap{}
	for rows.Next() {
		g, err := scanGap(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gap: %w", err)
		}
		gaps = append(gaps, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gaps: %w", err)
	}

	return gaps, nil
}

// Suggest attaches or overwrites the candidate Maay rendering on a pending
// gap. Suggesting on an approved gap returns domain.ErrConflict.
func (r *Repo) Suggest(ctx context.Context, id uuid.UUID, candidate string) (*domain.VocabularyGap, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Update(table).
		Set("suggested_maay", candidate).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": id, "status": domain.GapStatusPending.String()}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build suggest: %w", err)
	}

	g, err := scanGap(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.pendingGone(ctx, id)
		}
		return nil, postgres.MapError(err, "gap", id)
	}

	return g, nil
}

// Approve flips a pending gap to approved. A non-nil expectedVersion makes
// the transition conditional. Approving a gap that is already approved, or
// at a stale version, returns domain.ErrConflict — approval is monotonic.
func (r *Repo) Approve(ctx context.Context, id uuid.UUID, expectedVersion *int) (*domain.VocabularyGap, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := builder.Update(table).
		Set("status", domain.GapStatusApproved.String()).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": id, "status": domain.GapStatusPending.String()})

	if expectedVersion != nil {
		b = b.Where(sq.Eq{"version": *expectedVersion})
	}

	sql, args, err := b.Suffix("RETURNING " + columnList()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build approve: %w", err)
	}

	g, err := scanGap(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.pendingGone(ctx, id)
		}
		return nil, postgres.MapError(err, "gap", id)
	}

	return g, nil
}

// CountPending returns the number of gaps awaiting moderation.
func (r *Repo) CountPending(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Select("count(*)").From(table).
		Where(sq.Eq{"status": domain.GapStatusPending.String()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count gaps: %w", err)
	}

	return count, nil
}

// pendingGone disambiguates a zero-row conditional write on a pending gap:
// the record is either absent (not found) or no longer pending / at another
// version (conflict).
func (r *Repo) pendingGone(ctx context.Context, id uuid.UUID) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return fmt.Errorf("gap %s: %w", id, domain.ErrConflict)
}

func columnList() string {
	list := columns[0]
	for _, c := range columns[1:] {
		list += ", " + c
	}
	return list
}

// scanGap maps a single row in column order into a domain.VocabularyGap.
func scanGap(row pgx.Row) (*domain.VocabularyGap, error) {
	var (
		g      domain.VocabularyGap
		status string
	)

	err := row.Scan(&g.ID, &g.EnglishTerm, &g.TermNormalized, &g.Context,
		&g.Domain, &g.Frequency, &g.SuggestedMaay, &status, &g.Version, &g.CreatedAt)
	if err != nil {
		return nil, err
	}

	g.Status = domain.GapStatus(status)
	return &g, nil
}
