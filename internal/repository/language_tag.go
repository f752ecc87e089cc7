// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"interviewcms/internal/models"
	"interviewcms/internal/slug"
)

// Defaults applied to new language tags.
const (
	DefaultTagIcon  = "💻"
	DefaultTagColor = "#10b981"
)

// LanguageTags is the repository for programming language tags, listed by
// name.
type LanguageTags struct {
	col collection[models.LanguageTag]
	now func() time.Time
}

var _ Repository[models.LanguageTag, models.LanguageTagInput] = (*LanguageTags)(nil)

func NewLanguageTags(backend Backend[models.LanguageTag]) *LanguageTags {
	return &LanguageTags{
		col: collection[models.LanguageTag]{
			kind:    "language tag",
			backend: backend,
			compare: func(a, b models.LanguageTag) int { return byName(a.Name, b.Name) },
		},
		now: clock,
	}
}

func (r *LanguageTags) List(ctx context.Context) ([]models.LanguageTag, error) {
	return r.col.list(ctx)
}

func (r *LanguageTags) Get(ctx context.Context, id string) (*models.LanguageTag, error) {
	t, _, err := r.col.get(ctx, id)
	return t, err
}

func (r *LanguageTags) Create(ctx context.Context, in models.LanguageTagInput) (uuid.UUID, error) {
	verr := &ValidationError{}
	checkCreate(verr, requiredField{"name", in.Name})
	if !verr.empty() {
		return uuid.Nil, verr
	}

	t := models.LanguageTag{Icon: DefaultTagIcon, Color: DefaultTagColor}
	in.ApplyTo(&t)
	if t.Slug == "" {
		t.Slug = slug.Generate(t.Name)
	}
	if t.Slug == "" {
		return uuid.Nil, &ValidationError{Invalid: []string{"slug"}}
	}
	now := r.now()
	t.ID = uuid.New()
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := r.col.create(ctx, &t); err != nil {
		return uuid.Nil, err
	}
	return t.ID, nil
}

func (r *LanguageTags) Update(ctx context.Context, id string, in models.LanguageTagInput) error {
	t, _, err := r.col.get(ctx, id)
	if err != nil {
		return err
	}

	verr := &ValidationError{}
	checkUpdate(verr, requiredField{"name", in.Name}, requiredField{"slug", in.Slug})
	if !verr.empty() {
		return verr
	}

	in.ApplyTo(t)
	t.UpdatedAt = r.now()
	return r.col.update(ctx, t)
}

func (r *LanguageTags) Delete(ctx context.Context, id string) error {
	return r.col.delete(ctx, id)
}
