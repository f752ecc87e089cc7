// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"interviewcms/internal/models"
	"interviewcms/internal/store"
)

// memBackend is an in-memory Backend. Items are deep-copied through JSON so
// callers never share memory with the stored value.
type memBackend[T any] struct {
	mu    sync.Mutex
	items map[uuid.UUID]T
	order []uuid.UUID
	idOf  func(*T) uuid.UUID
	err   error // returned by every call when set
	calls int
}

func newMemBackend[T any](idOf func(*T) uuid.UUID) *memBackend[T] {
	return &memBackend[T]{items: make(map[uuid.UUID]T), idOf: idOf}
}

func clone[T any](v T) T {
	var out T
	b, _ := json.Marshal(v)
	_ = json.Unmarshal(b, &out)
	return out
}

func (m *memBackend[T]) List(_ context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, clone(m.items[id]))
	}
	return out, nil
}

func (m *memBackend[T]) FindByID(_ context.Context, id uuid.UUID) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	item, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	c := clone(item)
	return &c, nil
}

func (m *memBackend[T]) Create(_ context.Context, item *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}
	id := m.idOf(item)
	m.items[id] = clone(*item)
	m.order = append(m.order, id)
	return nil
}

func (m *memBackend[T]) Update(_ context.Context, item *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}
	id := m.idOf(item)
	if _, ok := m.items[id]; !ok {
		return store.ErrNotFound
	}
	m.items[id] = clone(*item)
	return nil
}

func (m *memBackend[T]) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.items, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memBackend[T]) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func (m *memBackend[T]) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type memTutorials struct {
	*memBackend[models.Tutorial]
}

func newMemTutorials() *memTutorials {
	return &memTutorials{newMemBackend(func(t *models.Tutorial) uuid.UUID { return t.ID })}
}

func (m *memTutorials) ListPublished(ctx context.Context) ([]models.Tutorial, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Tutorial
	for _, t := range all {
		if t.IsPublished() {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTutorials) FindBySlug(ctx context.Context, s string) (*models.Tutorial, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range all {
		if t.Slug == s {
			return &t, nil
		}
	}
	return nil, nil
}

func (m *memTutorials) IncrementViews(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	t, ok := m.items[id]
	if !ok {
		return store.ErrNotFound
	}
	t.Views++
	m.items[id] = t
	return nil
}

type memCategories struct {
	*memBackend[models.Category]
}

func newMemCategories() *memCategories {
	return &memCategories{newMemBackend(func(c *models.Category) uuid.UUID { return c.ID })}
}

func (m *memCategories) MaxOrder(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return 0, m.err
	}
	highest := 0
	for _, c := range m.items {
		highest = max(highest, c.Order)
	}
	return highest, nil
}

func (m *memCategories) FindBySlug(ctx context.Context, s string) (*models.Category, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range all {
		if c.Slug == s {
			return &c, nil
		}
	}
	return nil, nil
}

func newMemTopics() *memBackend[models.Topic] {
	return newMemBackend(func(t *models.Topic) uuid.UUID { return t.ID })
}

func newMemTags() *memBackend[models.LanguageTag] {
	return newMemBackend(func(t *models.LanguageTag) uuid.UUID { return t.ID })
}

func ptr[T any](v T) *T { return &v }
