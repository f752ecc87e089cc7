// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package repository implements create/read/update/delete over the four
// resource collections with per-kind validation and derived fields (slugs,
// ordering, counters, timestamps). Persistence is delegated to a Backend,
// normally one of the stores in internal/store.
package repository

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"interviewcms/internal/store"
)

var (
	// ErrNotFound means no document has the requested id.
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable means the backing store is not configured or
	// could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError lists every field that failed validation. Missing holds
// required fields that were absent or empty; Invalid holds fields whose
// value was rejected.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "Invalid fields: "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) empty() bool {
	return len(e.Missing) == 0 && len(e.Invalid) == 0
}

// Repository is the operation contract shared by every resource kind. T is
// the stored document and I the partial input accepted from callers.
type Repository[T, I any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, in I) (uuid.UUID, error)
	Update(ctx context.Context, id string, in I) error
	Delete(ctx context.Context, id string) error
}

// Backend persists documents of one kind. FindByID returns nil, nil when
// nothing matches; Update and Delete return store.ErrNotFound instead.
type Backend[T any] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// collection carries the operations that do not depend on the kind.
type collection[T any] struct {
	kind    string
	backend Backend[T]
	compare func(a, b T) int
}

func (c *collection[T]) list(ctx context.Context) ([]T, error) {
	if c.backend == nil {
		return nil, ErrStoreUnavailable
	}
	items, err := c.backend.List(ctx)
	if err != nil {
		return nil, translate("list "+c.kind, err)
	}
	if items == nil {
		items = []T{}
	}
	slices.SortStableFunc(items, c.compare)
	return items, nil
}

func (c *collection[T]) get(ctx context.Context, id string) (*T, uuid.UUID, error) {
	if c.backend == nil {
		return nil, uuid.Nil, ErrStoreUnavailable
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s %q: %w", c.kind, id, ErrNotFound)
	}
	item, err := c.backend.FindByID(ctx, uid)
	if err != nil {
		return nil, uuid.Nil, translate("get "+c.kind, err)
	}
	if item == nil {
		return nil, uuid.Nil, fmt.Errorf("%s %s: %w", c.kind, uid, ErrNotFound)
	}
	return item, uid, nil
}

func (c *collection[T]) create(ctx context.Context, item *T) error {
	if c.backend == nil {
		return ErrStoreUnavailable
	}
	return translate("create "+c.kind, c.backend.Create(ctx, item))
}

func (c *collection[T]) update(ctx context.Context, item *T) error {
	return translate("update "+c.kind, c.backend.Update(ctx, item))
}

func (c *collection[T]) delete(ctx context.Context, id string) error {
	if c.backend == nil {
		return ErrStoreUnavailable
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%s %q: %w", c.kind, id, ErrNotFound)
	}
	return translate("delete "+c.kind, c.backend.Delete(ctx, uid))
}

// translate maps store failures onto repository errors.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, store.ErrDuplicate):
		return &ValidationError{Invalid: []string{"slug"}}
	case errors.Is(err, store.ErrUnavailable):
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// clock returns the current time truncated to microseconds, the precision
// PostgreSQL keeps, so values read back compare equal.
func clock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func byName(a, b string) int {
	return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
}
