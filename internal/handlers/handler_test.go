// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for the handler tests:
// in-memory backends, a miniredis-backed response cache, and a router that
// mounts every handler the way the production router does.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"interviewcms/internal/auth"
	"interviewcms/internal/cache"
	"interviewcms/internal/credentials"
	"interviewcms/internal/middleware"
	"interviewcms/internal/models"
	"interviewcms/internal/repository"
	"interviewcms/internal/store"
)

const (
	testExternalKey = "test-external-key"
	testInternalKey = "internal_test-internal-key"
)

// recordingLog captures cache invalidation log entries.
type recordingLog struct {
	mu      sync.Mutex
	entries []string
}

func (l *recordingLog) Log(_ context.Context, entityType string, _ uuid.UUID, action string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entityType+":"+action)
}

func (l *recordingLog) RecentEntries(_ context.Context, limit int) ([]store.CacheLogEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []store.CacheLogEntry
	for i := len(l.entries) - 1; i >= 0 && len(out) < limit; i-- {
		entity, action, _ := strings.Cut(l.entries[i], ":")
		out = append(out, store.CacheLogEntry{ID: int64(i + 1), EntityType: entity, Action: action})
	}
	return out, nil
}

func (l *recordingLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}

// testEnv holds all dependencies for handler tests.
type testEnv struct {
	tutorials  *memTutorials
	categories *memCategories
	topics     *memBackend[models.Topic]
	tags       *memBackend[models.LanguageTag]
	keys       *credentials.Store
	redis      *miniredis.Miniredis
	cache      *cache.ResponseCache
	log        *recordingLog
	router     http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	env := &testEnv{
		tutorials:  newMemTutorials(),
		categories: newMemCategories(),
		topics:     newMemTopics(),
		tags:       newMemTags(),
		keys:       credentials.New(credentials.Defaults{External: testExternalKey, Internal: testInternalKey}, nil),
		redis:      mr,
		cache:      cache.NewResponseCache(client, 0, nil),
		log:        &recordingLog{},
	}

	tutorials := repository.NewTutorials(env.tutorials)
	categories := repository.NewCategories(env.categories)
	admin := NewAdmin(tutorials, categories,
		repository.NewTopics(env.topics), repository.NewLanguageTags(env.tags),
		env.keys, env.cache, env.log)
	public := NewPublic(tutorials, categories, env.cache)

	r := chi.NewRouter()
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.RequireAPIKey(auth.NewGate(env.keys), nil))

		r.Get("/stats", admin.Stats)
		r.Get("/settings/api-keys", admin.APIKeys)
		r.Put("/settings/api-keys", admin.UpdateAPIKeys)
		r.Get("/cache-log", admin.CacheLog)
		r.Post("/cache/flush", admin.FlushCache)

		r.Get("/tutorials", admin.TutorialsList)
		r.Post("/tutorials", admin.TutorialCreate)
		r.Get("/tutorials/{id}", admin.TutorialGet)
		r.Put("/tutorials/{id}", admin.TutorialUpdate)
		r.Delete("/tutorials/{id}", admin.TutorialDelete)

		r.Get("/categories", admin.CategoriesList)
		r.Post("/categories", admin.CategoryCreate)
		r.Get("/categories/{id}", admin.CategoryGet)
		r.Put("/categories/{id}", admin.CategoryUpdate)
		r.Delete("/categories/{id}", admin.CategoryDelete)

		r.Get("/topics", admin.TopicsList)
		r.Post("/topics", admin.TopicCreate)
		r.Put("/topics", admin.TopicUpdate)
		r.Delete("/topics", admin.TopicDelete)

		r.Get("/programming-tags", admin.TagsList)
		r.Post("/programming-tags", admin.TagCreate)
		r.Put("/programming-tags", admin.TagUpdate)
		r.Delete("/programming-tags", admin.TagDelete)
	})
	r.Route("/api/public", func(r chi.Router) {
		r.Get("/tutorials", public.Tutorials)
		r.Get("/tutorials/featured", public.Featured)
		r.Get("/tutorials/recent", public.Recent)
		r.Get("/tutorials/{slug}", public.Tutorial)
		r.Get("/categories", public.Categories)
		r.Get("/categories/{slug}", public.Category)
		r.Get("/topics/{tag}", public.Topic)
		r.Get("/search", public.Search)
	})
	env.router = r
	return env
}

// do sends a request with an optional JSON body. key, when non-empty, is
// sent in the x-api-key header.
func (env *testEnv) do(t *testing.T, method, path, key string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			if err := json.NewEncoder(&buf).Encode(b); err != nil {
				t.Fatalf("encode body: %v", err)
			}
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if key != "" {
		req.Header.Set("x-api-key", key)
	}
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

// admin sends an authorized admin request.
func (env *testEnv) admin(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return env.do(t, method, "/api/admin"+path, testExternalKey, body)
}

func (env *testEnv) repoCalls() int {
	return env.tutorials.callCount() + env.categories.callCount() +
		env.topics.callCount() + env.tags.callCount()
}

// decode unmarshals a response body into a generic map.
func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return out
}

func wantStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("status: got %d, want %d (body %s)", rr.Code, want, rr.Body.String())
	}
}

func wantError(t *testing.T, rr *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	wantStatus(t, rr, status)
	if got := decode(t, rr)["error"]; got != msg {
		t.Errorf("error: got %q, want %q", got, msg)
	}
}

// recordAdmin calls a handler directly, bypassing the router.
func recordAdmin(h http.HandlerFunc, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(method, path, nil))
	return rr
}
