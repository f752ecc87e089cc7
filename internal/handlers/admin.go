// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"interviewcms/internal/cache"
	"interviewcms/internal/credentials"
	"interviewcms/internal/models"
	"interviewcms/internal/repository"
	"interviewcms/internal/store"
)

// InvalidationLog records which document caused a public cache flush and
// lists recent flushes. store.CacheLogStore satisfies it.
type InvalidationLog interface {
	Log(ctx context.Context, entityType string, entityID uuid.UUID, action string)
	RecentEntries(ctx context.Context, limit int) ([]store.CacheLogEntry, error)
}

// Admin groups the admin API handlers. Every route is mounted behind
// middleware.RequireAPIKey, so handlers here assume an authorized caller.
type Admin struct {
	tutorials  *repository.Tutorials
	categories *repository.Categories
	topics     *repository.Topics
	tags       *repository.LanguageTags
	keys       *credentials.Store
	cache      *cache.ResponseCache
	cacheLog   InvalidationLog

	tutorialAPI endpoint[models.Tutorial, models.TutorialInput]
	categoryAPI endpoint[models.Category, models.CategoryInput]
	topicAPI    endpoint[models.Topic, models.TopicInput]
	tagAPI      endpoint[models.LanguageTag, models.LanguageTagInput]
}

// NewAdmin creates the admin handler group. cache and cacheLog may be nil.
func NewAdmin(tutorials *repository.Tutorials, categories *repository.Categories, topics *repository.Topics, tags *repository.LanguageTags, keys *credentials.Store, responseCache *cache.ResponseCache, cacheLog InvalidationLog) *Admin {
	a := &Admin{
		tutorials:  tutorials,
		categories: categories,
		topics:     topics,
		tags:       tags,
		keys:       keys,
		cache:      responseCache,
		cacheLog:   cacheLog,
	}
	a.tutorialAPI = endpoint[models.Tutorial, models.TutorialInput]{repo: tutorials, res: tutorialResource, changed: a.contentChanged}
	a.categoryAPI = endpoint[models.Category, models.CategoryInput]{repo: categories, res: categoryResource, changed: a.contentChanged}
	a.topicAPI = endpoint[models.Topic, models.TopicInput]{repo: topics, res: topicResource, changed: a.contentChanged}
	a.tagAPI = endpoint[models.LanguageTag, models.LanguageTagInput]{repo: tags, res: tagResource, changed: a.contentChanged}
	return a
}

// contentChanged flushes the public read cache after a successful write.
func (a *Admin) contentChanged(ctx context.Context, entity, id, action string) {
	a.cache.InvalidateAll(ctx)
	if a.cacheLog == nil {
		return
	}
	if uid, err := uuid.Parse(id); err == nil {
		a.cacheLog.Log(ctx, entity, uid, action)
	}
}

// --- Tutorials ---

func (a *Admin) TutorialsList(w http.ResponseWriter, r *http.Request) { a.tutorialAPI.list(w, r) }

func (a *Admin) TutorialGet(w http.ResponseWriter, r *http.Request) {
	a.tutorialAPI.get(w, r, chi.URLParam(r, "id"))
}

func (a *Admin) TutorialCreate(w http.ResponseWriter, r *http.Request) { a.tutorialAPI.create(w, r) }

func (a *Admin) TutorialUpdate(w http.ResponseWriter, r *http.Request) {
	a.tutorialAPI.update(w, r, chi.URLParam(r, "id"))
}

func (a *Admin) TutorialDelete(w http.ResponseWriter, r *http.Request) {
	a.tutorialAPI.remove(w, r, chi.URLParam(r, "id"))
}

// --- Categories ---

func (a *Admin) CategoriesList(w http.ResponseWriter, r *http.Request) { a.categoryAPI.list(w, r) }

func (a *Admin) CategoryGet(w http.ResponseWriter, r *http.Request) {
	a.categoryAPI.get(w, r, chi.URLParam(r, "id"))
}

func (a *Admin) CategoryCreate(w http.ResponseWriter, r *http.Request) { a.categoryAPI.create(w, r) }

func (a *Admin) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	a.categoryAPI.update(w, r, chi.URLParam(r, "id"))
}

func (a *Admin) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	a.categoryAPI.remove(w, r, chi.URLParam(r, "id"))
}

// --- Topics ---
// Topics and programming tags take their id from the query string.

func (a *Admin) TopicsList(w http.ResponseWriter, r *http.Request) { a.topicAPI.list(w, r) }

func (a *Admin) TopicCreate(w http.ResponseWriter, r *http.Request) { a.topicAPI.create(w, r) }

func (a *Admin) TopicUpdate(w http.ResponseWriter, r *http.Request) {
	if id, ok := queryID(w, r, topicResource); ok {
		a.topicAPI.update(w, r, id)
	}
}

func (a *Admin) TopicDelete(w http.ResponseWriter, r *http.Request) {
	if id, ok := queryID(w, r, topicResource); ok {
		a.topicAPI.remove(w, r, id)
	}
}

// --- Programming tags ---

func (a *Admin) TagsList(w http.ResponseWriter, r *http.Request) { a.tagAPI.list(w, r) }

func (a *Admin) TagCreate(w http.ResponseWriter, r *http.Request) { a.tagAPI.create(w, r) }

func (a *Admin) TagUpdate(w http.ResponseWriter, r *http.Request) {
	if id, ok := queryID(w, r, tagResource); ok {
		a.tagAPI.update(w, r, id)
	}
}

func (a *Admin) TagDelete(w http.ResponseWriter, r *http.Request) {
	if id, ok := queryID(w, r, tagResource); ok {
		a.tagAPI.remove(w, r, id)
	}
}

func queryID(w http.ResponseWriter, r *http.Request, res resource) (string, bool) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, res.label+" ID required")
		return "", false
	}
	return id, true
}
