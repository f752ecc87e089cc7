// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"interviewcms/internal/models"
)

// TutorialStore manages tutorials in the database. Nested and list-valued
// fields are stored as JSONB.
type TutorialStore struct {
	db *sql.DB
}

// NewTutorialStore returns a new TutorialStore backed by db.
func NewTutorialStore(db *sql.DB) *TutorialStore {
	return &TutorialStore{db: db}
}

const tutorialColumns = `id, title, slug, description, category, category_slug, difficulty,
	tags, problem_statement, input_format, output_format, constraints_text,
	examples, solutions, approach, complexity, related_tutorials, views,
	status, featured, topics, programming_tags, created_at, updated_at, published_at`

// tutorialDocs holds the JSONB columns of a tutorial row in raw form.
type tutorialDocs struct {
	tags, examples, solutions, complexity, related, topics, progTags []byte
}

func scanTutorial(scanner interface{ Scan(...any) error }) (*models.Tutorial, error) {
	var t models.Tutorial
	var d tutorialDocs
	var publishedAt sql.NullTime
	err := scanner.Scan(
		&t.ID, &t.Title, &t.Slug, &t.Description, &t.Category, &t.CategorySlug, &t.Difficulty,
		&d.tags, &t.ProblemStatement, &t.InputFormat, &t.OutputFormat, &t.Constraints,
		&d.examples, &d.solutions, &t.Approach, &d.complexity, &d.related, &t.Views,
		&t.Status, &t.Featured, &d.topics, &d.progTags, &t.CreatedAt, &t.UpdatedAt, &publishedAt,
	)
	if err != nil {
		return nil, err
	}
	if publishedAt.Valid {
		t.PublishedAt = &publishedAt.Time
	}
	if err := d.decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (d *tutorialDocs) decode(t *models.Tutorial) error {
	fields := []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"tags", d.tags, &t.Tags},
		{"examples", d.examples, &t.Examples},
		{"solutions", d.solutions, &t.Solutions},
		{"complexity", d.complexity, &t.Complexity},
		{"related_tutorials", d.related, &t.RelatedTutorials},
		{"topics", d.topics, &t.Topics},
		{"programming_tags", d.progTags, &t.ProgrammingTags},
	}
	for _, f := range fields {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return fmt.Errorf("decode %s: %w", f.name, err)
		}
	}
	return nil
}

// encodeDocs marshals the JSONB columns in column order.
func encodeDocs(t *models.Tutorial) ([]any, error) {
	values := []any{t.Tags, t.Examples, t.Solutions, t.Complexity, t.RelatedTutorials, t.Topics, t.ProgrammingTags}
	out := make([]any, len(values))
	for i, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode tutorial document: %w", err)
		}
		out[i] = string(b)
	}
	return out, nil
}

func (s *TutorialStore) query(ctx context.Context, op, query string, args ...any) ([]models.Tutorial, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	var items []models.Tutorial
	for rows.Next() {
		t, err := scanTutorial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tutorial: %w", err)
		}
		items = append(items, *t)
	}
	return items, classify(op, rows.Err())
}

// List returns every tutorial, newest first.
func (s *TutorialStore) List(ctx context.Context) ([]models.Tutorial, error) {
	return s.query(ctx, "list tutorials",
		`SELECT `+tutorialColumns+` FROM tutorials ORDER BY created_at DESC`)
}

// ListPublished returns published tutorials, most recently published first.
func (s *TutorialStore) ListPublished(ctx context.Context) ([]models.Tutorial, error) {
	return s.query(ctx, "list published tutorials",
		`SELECT `+tutorialColumns+` FROM tutorials WHERE status = 'published'
		 ORDER BY published_at DESC NULLS LAST, created_at DESC`)
}

// FindByID returns the tutorial with the given id, or nil if none exists.
func (s *TutorialStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Tutorial, error) {
	t, err := scanTutorial(s.db.QueryRowContext(ctx,
		`SELECT `+tutorialColumns+` FROM tutorials WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("find tutorial by id", err)
	}
	return t, nil
}

// FindBySlug returns the tutorial with the given slug, or nil if none exists.
func (s *TutorialStore) FindBySlug(ctx context.Context, slug string) (*models.Tutorial, error) {
	t, err := scanTutorial(s.db.QueryRowContext(ctx,
		`SELECT `+tutorialColumns+` FROM tutorials WHERE slug = $1`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("find tutorial by slug", err)
	}
	return t, nil
}

// Create inserts t. The caller assigns the id and timestamps.
func (s *TutorialStore) Create(ctx context.Context, t *models.Tutorial) error {
	docs, err := encodeDocs(t)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tutorials (`+tutorialColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`,
		t.ID, t.Title, t.Slug, t.Description, t.Category, t.CategorySlug, t.Difficulty,
		docs[0], t.ProblemStatement, t.InputFormat, t.OutputFormat, t.Constraints,
		docs[1], docs[2], t.Approach, docs[3], docs[4], t.Views,
		t.Status, t.Featured, docs[5], docs[6], t.CreatedAt, t.UpdatedAt, t.PublishedAt,
	)
	return classify("insert tutorial", err)
}

// Update overwrites every mutable column of the row identified by t.ID.
func (s *TutorialStore) Update(ctx context.Context, t *models.Tutorial) error {
	docs, err := encodeDocs(t)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE tutorials SET
			title = $2, slug = $3, description = $4, category = $5, category_slug = $6,
			difficulty = $7, tags = $8, problem_statement = $9, input_format = $10,
			output_format = $11, constraints_text = $12, examples = $13, solutions = $14,
			approach = $15, complexity = $16, related_tutorials = $17, views = $18,
			status = $19, featured = $20, topics = $21, programming_tags = $22,
			updated_at = $23, published_at = $24
		WHERE id = $1`,
		t.ID, t.Title, t.Slug, t.Description, t.Category, t.CategorySlug,
		t.Difficulty, docs[0], t.ProblemStatement, t.InputFormat,
		t.OutputFormat, t.Constraints, docs[1], docs[2],
		t.Approach, docs[3], docs[4], t.Views,
		t.Status, t.Featured, docs[5], docs[6],
		t.UpdatedAt, t.PublishedAt,
	)
	if err != nil {
		return classify("update tutorial", err)
	}
	return requireAffected("update tutorial", res)
}

// IncrementViews adds one to the view counter without touching updated_at.
func (s *TutorialStore) IncrementViews(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `UPDATE tutorials SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return classify("increment tutorial views", err)
	}
	return requireAffected("increment tutorial views", res)
}

// Delete removes a tutorial by id.
func (s *TutorialStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tutorials WHERE id = $1`, id)
	if err != nil {
		return classify("delete tutorial", err)
	}
	return requireAffected("delete tutorial", res)
}
