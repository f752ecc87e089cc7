// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"interviewcms/internal/models"
)

// TutorialBackend adds the read paths the public site needs.
type TutorialBackend interface {
	Backend[models.Tutorial]
	ListPublished(ctx context.Context) ([]models.Tutorial, error)
	FindBySlug(ctx context.Context, slug string) (*models.Tutorial, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
}

// Tutorials is the repository for tutorials. Lists are ordered newest first.
type Tutorials struct {
	col     collection[models.Tutorial]
	backend TutorialBackend
	now     func() time.Time
}

var _ Repository[models.Tutorial, models.TutorialInput] = (*Tutorials)(nil)

// NewTutorials returns a Tutorials repository. A nil backend makes every
// operation fail with ErrStoreUnavailable.
func NewTutorials(backend TutorialBackend) *Tutorials {
	return &Tutorials{
		col: collection[models.Tutorial]{
			kind:    "tutorial",
			backend: backend,
			compare: func(a, b models.Tutorial) int { return b.CreatedAt.Compare(a.CreatedAt) },
		},
		backend: backend,
		now:     clock,
	}
}

func (r *Tutorials) List(ctx context.Context) ([]models.Tutorial, error) {
	return r.col.list(ctx)
}

func (r *Tutorials) Get(ctx context.Context, id string) (*models.Tutorial, error) {
	t, _, err := r.col.get(ctx, id)
	return t, err
}

// Create validates in, fills defaults and persists a new tutorial. Views
// always start at zero; publishedAt is stamped when created as published.
func (r *Tutorials) Create(ctx context.Context, in models.TutorialInput) (uuid.UUID, error) {
	verr := &ValidationError{}
	checkCreate(verr,
		requiredField{"title", in.Title},
		requiredField{"slug", in.Slug},
		requiredField{"category", in.Category},
		requiredField{"categorySlug", in.CategorySlug},
		requiredField{"problemStatement", in.ProblemStatement},
	)
	// An empty difficulty or status on create means "use the default".
	if in.Difficulty != nil && *in.Difficulty == "" {
		in.Difficulty = nil
	}
	if in.Status != nil && *in.Status == "" {
		in.Status = nil
	}
	checkTutorialEnums(verr, in)
	if !verr.empty() {
		return uuid.Nil, verr
	}

	now := r.now()
	t := models.Tutorial{
		Difficulty:       models.DifficultyMedium,
		Status:           models.StatusDraft,
		Tags:             []string{},
		Examples:         []models.Example{},
		Solutions:        map[string]models.Solution{},
		RelatedTutorials: []string{},
		Topics:           []string{},
		ProgrammingTags:  []string{},
	}
	in.ApplyTo(&t)
	t.ID = uuid.New()
	t.Views = 0
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.IsPublished() {
		t.PublishedAt = &now
	}

	if err := r.col.create(ctx, &t); err != nil {
		return uuid.Nil, err
	}
	return t.ID, nil
}

// Update merges the supplied fields into the stored tutorial. publishedAt is
// set the first time the tutorial becomes published and never changed after.
func (r *Tutorials) Update(ctx context.Context, id string, in models.TutorialInput) error {
	t, _, err := r.col.get(ctx, id)
	if err != nil {
		return err
	}

	verr := &ValidationError{}
	checkUpdate(verr,
		requiredField{"title", in.Title},
		requiredField{"slug", in.Slug},
		requiredField{"category", in.Category},
		requiredField{"categorySlug", in.CategorySlug},
		requiredField{"problemStatement", in.ProblemStatement},
	)
	checkTutorialEnums(verr, in)
	if in.Views != nil && *in.Views < 0 {
		verr.Invalid = append(verr.Invalid, "views")
	}
	if !verr.empty() {
		return verr
	}

	in.ApplyTo(t)
	now := r.now()
	t.UpdatedAt = now
	if t.IsPublished() && t.PublishedAt == nil {
		t.PublishedAt = &now
	}
	return r.col.update(ctx, t)
}

func (r *Tutorials) Delete(ctx context.Context, id string) error {
	return r.col.delete(ctx, id)
}

// Published returns every published tutorial, newest first.
func (r *Tutorials) Published(ctx context.Context) ([]models.Tutorial, error) {
	if r.backend == nil {
		return nil, ErrStoreUnavailable
	}
	items, err := r.backend.ListPublished(ctx)
	if err != nil {
		return nil, translate("list published tutorials", err)
	}
	if items == nil {
		items = []models.Tutorial{}
	}
	return items, nil
}

// PublishedBySlug returns the published tutorial with the given slug. Drafts
// are reported as not found.
func (r *Tutorials) PublishedBySlug(ctx context.Context, slug string) (*models.Tutorial, error) {
	if r.backend == nil {
		return nil, ErrStoreUnavailable
	}
	t, err := r.backend.FindBySlug(ctx, slug)
	if err != nil {
		return nil, translate("get tutorial by slug", err)
	}
	if t == nil || !t.IsPublished() {
		return nil, fmt.Errorf("tutorial %q: %w", slug, ErrNotFound)
	}
	return t, nil
}

// RecordView bumps the view counter of the tutorial.
func (r *Tutorials) RecordView(ctx context.Context, id uuid.UUID) error {
	if r.backend == nil {
		return ErrStoreUnavailable
	}
	return translate("record tutorial view", r.backend.IncrementViews(ctx, id))
}

func checkTutorialEnums(verr *ValidationError, in models.TutorialInput) {
	checkEnum(verr, "difficulty", asString(in.Difficulty), difficultyRule)
	checkEnum(verr, "status", asString(in.Status), statusRule)
}
