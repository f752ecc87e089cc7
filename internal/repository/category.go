// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package repository

import (
	"cmp"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"interviewcms/internal/models"
	"interviewcms/internal/slug"
)

// Defaults applied to new categories.
const (
	DefaultCategoryIcon  = "📁"
	DefaultCategoryColor = "#6366f1"
)

// CategoryBackend adds order bookkeeping and slug lookup.
type CategoryBackend interface {
	Backend[models.Category]
	// MaxOrder returns the highest order in use, or 0 for an empty collection.
	MaxOrder(ctx context.Context) (int, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
}

// Categories is the repository for categories, listed by ascending order.
type Categories struct {
	col     collection[models.Category]
	backend CategoryBackend
	now     func() time.Time
}

var _ Repository[models.Category, models.CategoryInput] = (*Categories)(nil)

func NewCategories(backend CategoryBackend) *Categories {
	return &Categories{
		col: collection[models.Category]{
			kind:    "category",
			backend: backend,
			compare: func(a, b models.Category) int {
				if c := cmp.Compare(a.Order, b.Order); c != 0 {
					return c
				}
				return byName(a.Name, b.Name)
			},
		},
		backend: backend,
		now:     clock,
	}
}

func (r *Categories) List(ctx context.Context) ([]models.Category, error) {
	return r.col.list(ctx)
}

func (r *Categories) Get(ctx context.Context, id string) (*models.Category, error) {
	c, _, err := r.col.get(ctx, id)
	return c, err
}

// Create persists a new category. The slug is derived from the name when
// absent and the order defaults to one past the current maximum.
func (r *Categories) Create(ctx context.Context, in models.CategoryInput) (uuid.UUID, error) {
	verr := &ValidationError{}
	checkCreate(verr, requiredField{"name", in.Name})
	if !verr.empty() {
		return uuid.Nil, verr
	}
	if r.backend == nil {
		return uuid.Nil, ErrStoreUnavailable
	}

	c := models.Category{
		Icon:  DefaultCategoryIcon,
		Color: DefaultCategoryColor,
	}
	in.ApplyTo(&c)
	if c.Slug == "" {
		c.Slug = slug.Generate(c.Name)
	}
	if c.Slug == "" {
		return uuid.Nil, &ValidationError{Invalid: []string{"slug"}}
	}
	if in.Order == nil {
		highest, err := r.backend.MaxOrder(ctx)
		if err != nil {
			return uuid.Nil, translate("category max order", err)
		}
		c.Order = highest + 1
	}
	now := r.now()
	c.ID = uuid.New()
	c.TutorialCount = 0
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := r.col.create(ctx, &c); err != nil {
		return uuid.Nil, err
	}
	return c.ID, nil
}

// Update merges the supplied fields. The slug is not re-derived when the
// name changes.
func (r *Categories) Update(ctx context.Context, id string, in models.CategoryInput) error {
	c, _, err := r.col.get(ctx, id)
	if err != nil {
		return err
	}

	verr := &ValidationError{}
	checkUpdate(verr, requiredField{"name", in.Name}, requiredField{"slug", in.Slug})
	if in.TutorialCount != nil && *in.TutorialCount < 0 {
		verr.Invalid = append(verr.Invalid, "tutorialCount")
	}
	if !verr.empty() {
		return verr
	}

	in.ApplyTo(c)
	c.UpdatedAt = r.now()
	return r.col.update(ctx, c)
}

func (r *Categories) Delete(ctx context.Context, id string) error {
	return r.col.delete(ctx, id)
}

// BySlug returns the category with the given slug.
func (r *Categories) BySlug(ctx context.Context, s string) (*models.Category, error) {
	if r.backend == nil {
		return nil, ErrStoreUnavailable
	}
	c, err := r.backend.FindBySlug(ctx, s)
	if err != nil {
		return nil, translate("get category by slug", err)
	}
	if c == nil {
		return nil, fmt.Errorf("category %q: %w", s, ErrNotFound)
	}
	return c, nil
}
