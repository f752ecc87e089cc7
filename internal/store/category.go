// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"interviewcms/internal/models"
)

// CategoryStore manages categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, slug, description, icon, color, tutorial_count, sort_order, created_at, updated_at`

// scanCategory scans a row into a Category struct.
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.Icon, &c.Color,
		&c.TutorialCount, &c.Order, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all categories ordered by sort_order, then name.
func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories ORDER BY sort_order, name`)
	if err != nil {
		return nil, classify("list categories", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	return items, classify("list categories", rows.Err())
}

// FindByID retrieves a category by its UUID. Returns nil if not found.
func (s *CategoryStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	c, err := scanCategory(s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("find category by id", err)
	}
	return c, nil
}

// FindBySlug retrieves a category by its slug. Returns nil if not found.
func (s *CategoryStore) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	c, err := scanCategory(s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("find category by slug", err)
	}
	return c, nil
}

// MaxOrder returns the highest sort_order in use, or 0 when empty.
func (s *CategoryStore) MaxOrder(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(sort_order), 0) FROM categories`).Scan(&n)
	if err != nil {
		return 0, classify("max category order", err)
	}
	return n, nil
}

// Create inserts a new category.
func (s *CategoryStore) Create(ctx context.Context, c *models.Category) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (`+categoryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.Name, c.Slug, c.Description, c.Icon, c.Color,
		c.TutorialCount, c.Order, c.CreatedAt, c.UpdatedAt,
	)
	return classify("insert category", err)
}

// Update modifies an existing category.
func (s *CategoryStore) Update(ctx context.Context, c *models.Category) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, icon = $5, color = $6,
		    tutorial_count = $7, sort_order = $8, updated_at = $9
		WHERE id = $1`,
		c.ID, c.Name, c.Slug, c.Description, c.Icon, c.Color,
		c.TutorialCount, c.Order, c.UpdatedAt,
	)
	if err != nil {
		return classify("update category", err)
	}
	return requireAffected("update category", res)
}

// Delete removes a category. Tutorials referencing it are left untouched.
func (s *CategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return classify("delete category", err)
	}
	return requireAffected("delete category", res)
}
