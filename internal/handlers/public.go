// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"interviewcms/internal/cache"
	"interviewcms/internal/catalog"
	"interviewcms/internal/markdown"
	"interviewcms/internal/models"
	"interviewcms/internal/repository"
)

// maxRecent caps the limit accepted by GET /tutorials/recent.
const maxRecent = 50

// Public groups the unauthenticated read handlers. Only published tutorials
// are ever visible here. List responses are stored in the Valkey response
// cache and served from it until an admin write flushes it.
type Public struct {
	tutorials  *repository.Tutorials
	categories *repository.Categories
	cache      *cache.ResponseCache
}

// NewPublic creates the public handler group. responseCache may be nil.
func NewPublic(tutorials *repository.Tutorials, categories *repository.Categories, responseCache *cache.ResponseCache) *Public {
	return &Public{
		tutorials:  tutorials,
		categories: categories,
		cache:      responseCache,
	}
}

// Tutorials lists published tutorials, optionally filtered by difficulty
// and category slug and ordered by ?sort=newest|oldest|popular|title.
func (p *Public) Tutorials(w http.ResponseWriter, r *http.Request) {
	p.cached(w, r, tutorialResource, func(ctx context.Context) (any, error) {
		items, err := p.tutorials.Published(ctx)
		if err != nil {
			return nil, err
		}
		q := r.URL.Query()
		if d := q.Get("difficulty"); d != "" {
			items = catalog.FilterByDifficulty(items, models.Difficulty(d))
		}
		if c := q.Get("category"); c != "" {
			items = catalog.FilterByCategory(items, c)
		}
		items = catalog.Sort(items, q.Get("sort"))
		return listEnvelope(items), nil
	})
}

// Featured lists up to catalog.FeaturedLimit featured tutorials.
func (p *Public) Featured(w http.ResponseWriter, r *http.Request) {
	p.cached(w, r, tutorialResource, func(ctx context.Context) (any, error) {
		items, err := p.tutorials.Published(ctx)
		if err != nil {
			return nil, err
		}
		return listEnvelope(catalog.Featured(items)), nil
	})
}

// Recent lists the most recently published tutorials.
func (p *Public) Recent(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n <= 0 {
		n = catalog.DefaultRecent
	}
	n = min(n, maxRecent)

	p.cached(w, r, tutorialResource, func(ctx context.Context) (any, error) {
		items, err := p.tutorials.Published(ctx)
		if err != nil {
			return nil, err
		}
		return listEnvelope(catalog.Recent(items, n)), nil
	})
}

// Tutorial returns one published tutorial with its Markdown sections
// rendered, and counts the view. It is never cached so every view counts.
func (p *Public) Tutorial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	t, err := p.tutorials.PublishedBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		writeRepoError(w, r, tutorialResource, err)
		return
	}

	rendered, err := markdown.RenderTutorial(t)
	if err != nil {
		slog.Error("render tutorial failed", "error", err, "slug", t.Slug)
		writeError(w, http.StatusInternalServerError, "Failed to render tutorial")
		return
	}

	if err := p.tutorials.RecordView(ctx, t.ID); err != nil {
		slog.Warn("record tutorial view failed", "error", err, "id", t.ID)
	} else {
		t.Views++
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tutorial": t,
		"html":     rendered,
	})
}

// Categories lists every category in display order.
func (p *Public) Categories(w http.ResponseWriter, r *http.Request) {
	p.cached(w, r, categoryResource, func(ctx context.Context) (any, error) {
		items, err := p.categories.List(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{"categories": items, "count": len(items)}, nil
	})
}

// Category returns a category with its published tutorials.
func (p *Public) Category(w http.ResponseWriter, r *http.Request) {
	p.cached(w, r, categoryResource, func(ctx context.Context) (any, error) {
		c, err := p.categories.BySlug(ctx, chi.URLParam(r, "slug"))
		if err != nil {
			return nil, err
		}
		items, err := p.tutorials.Published(ctx)
		if err != nil {
			return nil, err
		}
		items = catalog.FilterByCategory(items, c.Slug)
		return map[string]any{
			"category":  c,
			"tutorials": items,
			"count":     len(items),
		}, nil
	})
}

// Topic lists published tutorials carrying the given tag.
func (p *Public) Topic(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")
	p.cached(w, r, tutorialResource, func(ctx context.Context) (any, error) {
		items, err := p.tutorials.Published(ctx)
		if err != nil {
			return nil, err
		}
		items = catalog.FilterByTag(items, tag)
		return map[string]any{
			"tag":       tag,
			"tutorials": items,
			"count":     len(items),
		}, nil
	})
}

// Search matches ?q= against published tutorials.
func (p *Public) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	p.cached(w, r, tutorialResource, func(ctx context.Context) (any, error) {
		items, err := p.tutorials.Published(ctx)
		if err != nil {
			return nil, err
		}
		items = catalog.Search(items, q)
		return map[string]any{
			"query":     q,
			"tutorials": items,
			"count":     len(items),
		}, nil
	})
}

func listEnvelope(items []models.Tutorial) map[string]any {
	return map[string]any{"tutorials": items, "count": len(items)}
}

// cached serves the response for r from the response cache, or builds it,
// stores it and serves it. Errors are never cached.
func (p *Public) cached(w http.ResponseWriter, r *http.Request, res resource, build func(ctx context.Context) (any, error)) {
	ctx := r.Context()
	key := cache.Key(r.URL.Path, r.URL.Query())

	if body, ok := p.cache.Get(ctx, key); ok {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("X-Cache", "HIT")
		w.Write(body)
		return
	}

	data, err := build(ctx)
	if err != nil {
		writeRepoError(w, r, res, err)
		return
	}
	body, err := json.Marshal(data)
	if err != nil {
		slog.Error("encode public response failed", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	body = append(body, '\n')
	p.cache.Set(ctx, key, body)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Cache", "MISS")
	w.Write(body)
}
