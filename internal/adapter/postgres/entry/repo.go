// Package entry implements the dictionary entry repository using PostgreSQL.
// It provides filtered search, moderation transitions, and bulk import.
package entry

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maayplatform/afmaay-backend/internal/adapter/postgres"
	"github.com/maayplatform/afmaay-backend/internal/domain"
)

const table = "dictionary_entries"

var columns = []string{
	"id", "maay_word", "english_translation", "part_of_speech", "sound_group",
	"example_maay", "example_english", "audio_url", "contributor_id",
	"is_verified", "version", "created_at", "updated_at",
}

// builder is the shared squirrel statement builder with $N placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides dictionary entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	entry, err := scanEntry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	return entry, nil
}

// Search returns entries matching the filter, newest first.
// Returns an empty slice if nothing matches.
func (r *Repo) Search(ctx context.Context, f domain.EntryFilter) ([]*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	f = normalizeFilter(f)

	b := builder.Select(columns...).From(table)
	b = applyFilter(b, f)
	b = b.OrderBy("created_at DESC", "id").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListPending returns unverified entries for the moderation queue, newest first.
func (r *Repo) ListPending(ctx context.Context, limit int) ([]*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if limit <= 0 {
		limit = defaultLimit
	}

	sql, args, err := builder.Select(columns...).From(table).
		Where(sq.Eq{"is_verified": false}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list pending: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list pending entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListVerified returns up to limit verified entries for prompt context building.
func (r *Repo) ListVerified(ctx context.Context, limit int) ([]*domain.Entry, error) {
	return r.Search(ctx, domain.EntryFilter{VerifiedOnly: true, Limit: limit})
}

// Count returns the total number of entries, optionally scoped to a
// verification state (nil counts everything).
func (r *Repo) Count(ctx context.Context, verified *bool) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := builder.Select("count(*)").From(table)
	if verified != nil {
		b = b.Where(sq.Eq{"is_verified": *verified})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns the persisted domain.Entry.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Insert(table).
		Columns(columns...).
		Values(e.ID, e.MaayWord, e.Translation, e.PartOfSpeech.String(),
			soundGroupValue(e.SoundGroup), e.ExampleMaay, e.ExampleEnglish,
			e.AudioURL, e.ContributorID, e.Verified, e.Version,
			e.CreatedAt, e.UpdatedAt).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanEntry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "entry", e.ID)
	}

	return created, nil
}

// BulkCreate inserts entries in a single batch. All rows are inserted as-is;
// callers are responsible for marking them verified. Returns the number of
// inserted rows.
func (r *Repo) BulkCreate(ctx context.Context, entries []*domain.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, e := range entries {
		sql, args, err := builder.Insert(table).
			Columns(columns...).
			Values(e.ID, e.MaayWord, e.Translation, e.PartOfSpeech.String(),
				soundGroupValue(e.SoundGroup), e.ExampleMaay, e.ExampleEnglish,
				e.AudioURL, e.ContributorID, e.Verified, e.Version,
				e.CreatedAt, e.UpdatedAt).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build bulk insert: %w", err)
		}
		batch.Queue(sql, args...)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	created := 0
	for i := range entries {
		if _, err := results.Exec(); err != nil {
			return created, postgres.MapError(err, "entry", entries[i].ID)
		}
		created++
	}

	return created, nil
}

// Update applies a partial patch to an entry, bumping version and updated_at.
// A non-nil expectedVersion makes the write conditional: if the stored
// version differs, domain.ErrConflict is returned and nothing changes.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, patch domain.EntryPatch, expectedVersion *int) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := builder.Update(table).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})

	if patch.MaayWord != nil {
		b = b.Set("maay_word", *patch.MaayWord)
	}
	if patch.Translation != nil {
		b = b.Set("english_translation", *patch.Translation)
	}
	if patch.PartOfSpeech != nil {
		b = b.Set("part_of_speech", patch.PartOfSpeech.String())
	}
	if patch.SoundGroup != nil {
		b = b.Set("sound_group", patch.SoundGroup.String())
	}
	if patch.ExampleMaay != nil {
		b = b.Set("example_maay", *patch.ExampleMaay)
	}
	if patch.ExampleEnglish != nil {
		b = b.Set("example_english", *patch.ExampleEnglish)
	}
	if patch.AudioURL != nil {
		b = b.Set("audio_url", *patch.AudioURL)
	}

	if expectedVersion != nil {
		b = b.Where(sq.Eq{"version": *expectedVersion})
	}

	sql, args, err := b.Suffix("RETURNING " + columnList()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	updated, err := scanEntry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.staleOrMissing(ctx, id, expectedVersion)
		}
		return nil, postgres.MapError(err, "entry", id)
	}

	return updated, nil
}

// Verify transitions an entry to verified. Same conditional-version contract
// as Update. Verifying an already-verified entry is a no-op write that still
// bumps version.
func (r *Repo) Verify(ctx context.Context, id uuid.UUID, expectedVersion *int) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := builder.Update(table).
		Set("is_verified", true).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})

	if expectedVersion != nil {
		b = b.Where(sq.Eq{"version": *expectedVersion})
	}

	sql, args, err := b.Suffix("RETURNING " + columnList()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build verify: %w", err)
	}

	verified, err := scanEntry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.staleOrMissing(ctx, id, expectedVersion)
		}
		return nil, postgres.MapError(err, "entry", id)
	}

	return verified, nil
}

// Delete removes an entry permanently (admin rejection).
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// staleOrMissing disambiguates a zero-row conditional write: the entry is
// either gone (not found) or present at another version (conflict).
func (r *Repo) staleOrMissing(ctx context.Context, id uuid.UUID, expectedVersion *int) error {
	if expectedVersion == nil {
		return fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return fmt.Errorf("entry %s: version %d is stale: %w", id, *expectedVersion, domain.ErrConflict)
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

func columnList() string {
	list := columns[0]
	for _, c := range columns[1:] {
		list += ", " + c
	}
	return list
}

func soundGroupValue(g *domain.SoundGroup) *string {
	if g == nil {
		return nil
	}
	s := g.String()
	return &s
}

// scanEntry maps a single row in column order into a domain.Entry.
func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var (
		e          domain.Entry
		pos        string
		soundGroup *string
	)

	err := row.Scan(&e.ID, &e.MaayWord, &e.Translation, &pos, &soundGroup,
		&e.ExampleMaay, &e.ExampleEnglish, &e.AudioURL, &e.ContributorID,
		&e.Verified, &e.Version, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}

	e.PartOfSpeech = domain.PartOfSpeech(pos)
	if soundGroup != nil {
		g := domain.SoundGroup(*soundGroup)
		e.SoundGroup = &g
	}

	return &e, nil
}

func scanEntries(rows pgx.Rows) ([]*domain.Entry, error) {
	entries := []*domain.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}
