// Package grammar implements the grammar rule repository using PostgreSQL.
// Rules are write-once: there is no update or delete path.
package grammar

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maayplatform/afmaay-backend/internal/adapter/postgres"
	"github.com/maayplatform/afmaay-backend/internal/domain"
)

const table = "grammar_rules"

var columns = []string{
	"id", "category", "title", "content", "examples", "difficulty", "created_at",
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const defaultListLimit = 100

// Repo provides grammar rule persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new grammar repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a rule by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.GrammarRule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rule, err := scanRule(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "grammar_rule", id)
	}

	return rule, nil
}

// Create inserts a new rule. Examples are stored as a JSONB array.
func (r *Repo) Create(ctx context.Context, rule *domain.GrammarRule) (*domain.GrammarRule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	examples, err := json.Marshal(rule.Examples)
	if err != nil {
		return nil, fmt.Errorf("marshal examples: %w", err)
	}

	sql, args, err := builder.Insert(table).
		Columns(columns...).
		Values(rule.ID, rule.Category.String(), rule.Title, rule.Content,
			examples, rule.Difficulty.String(), rule.CreatedAt).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanRule(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "grammar_rule", rule.ID)
	}

	return created, nil
}

// List returns rules matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.GrammarFilter) ([]*domain.GrammarRule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := builder.Select(columns...).From(table)
	if f.Category != nil {
		b = b.Where(sq.Eq{"category": f.Category.String()})
	}
	if f.Difficulty != nil {
		b = b.Where(sq.Eq{"difficulty": f.Difficulty.String()})
	}
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"content": pattern},
		})
	}

	sql, args, err := b.OrderBy("created_at DESC").Limit(defaultListLimit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list grammar rules: %w", err)
	}
	defer rows.Close()

	rules := []*domain.GrammarRule{}
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan grammar rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate grammar rules: %w", err)
	}

	return rules, nil
}

// Count returns the total number of rules.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&count); err != nil {
		return 0, fmt.Errorf("count grammar rules: %w", err)
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

func scanRule(row pgx.Row) (*domain.GrammarRule, error) {
	var (
		rule       domain.GrammarRule
		category   string
		difficulty string
		examples   []byte
	)

	err := row.Scan(&rule.ID, &category, &rule.Title, &rule.Content,
		&examples, &difficulty, &rule.CreatedAt)
	if err != nil {
		return nil, err
	}

	rule.Category = domain.GrammarCategory(category)
	rule.Difficulty = domain.Difficulty(difficulty)

	if len(examples) > 0 {
		if err := json.Unmarshal(examples, &rule.Examples); err != nil {
			return nil, fmt.Errorf("unmarshal examples: %w", err)
		}
	}

	return &rule, nil
}
