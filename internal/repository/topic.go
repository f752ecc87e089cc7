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

// DefaultTopicColor is applied to new topics without a color.
const DefaultTopicColor = "#6366f1"

// Topics is the repository for topics, listed by name.
type Topics struct {
	col collection[models.Topic]
	now func() time.Time
}

var _ Repository[models.Topic, models.TopicInput] = (*Topics)(nil)

func NewTopics(backend Backend[models.Topic]) *Topics {
	return &Topics{
		col: collection[models.Topic]{
			kind:    "topic",
			backend: backend,
			compare: func(a, b models.Topic) int { return byName(a.Name, b.Name) },
		},
		now: clock,
	}
}

func (r *Topics) List(ctx context.Context) ([]models.Topic, error) {
	return r.col.list(ctx)
}

func (r *Topics) Get(ctx context.Context, id string) (*models.Topic, error) {
	t, _, err := r.col.get(ctx, id)
	return t, err
}

func (r *Topics) Create(ctx context.Context, in models.TopicInput) (uuid.UUID, error) {
	verr := &ValidationError{}
	checkCreate(verr, requiredField{"name", in.Name})
	if !verr.empty() {
		return uuid.Nil, verr
	}

	t := models.Topic{Color: DefaultTopicColor}
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

func (r *Topics) Update(ctx context.Context, id string, in models.TopicInput) error {
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

func (r *Topics) Delete(ctx context.Context, id string) error {
	return r.col.delete(ctx, id)
}
