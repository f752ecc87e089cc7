// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"slices"
	"strings"
	"testing"

	"interviewcms/internal/store"
)

var adminRoutes = []struct {
	method, path string
}{
	{http.MethodGet, "/api/admin/stats"},
	{http.MethodGet, "/api/admin/settings/api-keys"},
	{http.MethodPut, "/api/admin/settings/api-keys"},
	{http.MethodGet, "/api/admin/cache-log"},
	{http.MethodPost, "/api/admin/cache/flush"},
	{http.MethodGet, "/api/admin/tutorials"},
	{http.MethodPost, "/api/admin/tutorials"},
	{http.MethodGet, "/api/admin/tutorials/8b0b6a47-5f7c-4d5e-9a71-0d7f0c7e1a11"},
	{http.MethodPut, "/api/admin/tutorials/8b0b6a47-5f7c-4d5e-9a71-0d7f0c7e1a11"},
	{http.MethodDelete, "/api/admin/tutorials/8b0b6a47-5f7c-4d5e-9a71-0d7f0c7e1a11"},
	{http.MethodGet, "/api/admin/categories"},
	{http.MethodPost, "/api/admin/categories"},
	{http.MethodGet, "/api/admin/categories/8b0b6a47-5f7c-4d5e-9a71-0d7f0c7e1a11"},
	{http.MethodPut, "/api/admin/categories/8b0b6a47-5f7c-4d5e-9a71-0d7f0c7e1a11"},
	{http.MethodDelete, "/api/admin/categories/8b0b6a47-5f7c-4d5e-9a71-0d7f0c7e1a11"},
	{http.MethodGet, "/api/admin/topics"},
	{http.MethodPost, "/api/admin/topics"},
	{http.MethodPut, "/api/admin/topics?id=8b0b6a47-5f7c-4d5e-9a71-0d7f0c7e1a11"},
	{http.MethodDelete, "/api/admin/topics?id=8b0b6a47-5f7c-4d5e-9a71-0d7f0c7e1a11"},
	{http.MethodGet, "/api/admin/programming-tags"},
	{http.MethodPost, "/api/admin/programming-tags"},
	{http.MethodPut, "/api/admin/programming-tags?id=8b0b6a47-5f7c-4d5e-9a71-0d7f0c7e1a11"},
	{http.MethodDelete, "/api/admin/programming-tags?id=8b0b6a47-5f7c-4d5e-9a71-0d7f0c7e1a11"},
}

func TestAdminRejectsWithoutRepositoryAccess(t *testing.T) {
	env := newTestEnv(t)
	body := map[string]any{"name": "Arrays", "title": "Two Sum"}

	for _, rt := range adminRoutes {
		for _, key := range []string{"", "wrong-key"} {
			t.Run(rt.method+" "+rt.path+" key="+key, func(t *testing.T) {
				rr := env.do(t, rt.method, rt.path, key, body)
				wantError(t, rr, http.StatusUnauthorized, "Unauthorized")
			})
		}
	}

	if n := env.repoCalls(); n != 0 {
		t.Errorf("repository calls: got %d, want 0", n)
	}
}

func TestAdminAcceptsBothKeyClasses(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/admin/tutorials", testExternalKey, nil)
	wantStatus(t, rr, http.StatusOK)

	rr = env.do(t, http.MethodGet, "/api/admin/tutorials", testInternalKey, nil)
	wantStatus(t, rr, http.StatusOK)

	rr = env.do(t, http.MethodGet, "/api/admin/categories", "", nil)
	wantStatus(t, rr, http.StatusUnauthorized)
}

func validTutorial() map[string]any {
	return map[string]any{
		"title":            "Two Sum",
		"slug":             "two-sum",
		"category":         "Arrays",
		"categorySlug":     "arrays",
		"problemStatement": "Find two numbers that add up to **target**.",
		"tags":             []string{"hash-map"},
	}
}

func TestTutorialCRUD(t *testing.T) {
	env := newTestEnv(t)

	rr := env.admin(t, http.MethodPost, "/tutorials", validTutorial())
	wantStatus(t, rr, http.StatusCreated)
	created := decode(t, rr)
	if created["success"] != true || created["message"] != "Tutorial created successfully" {
		t.Fatalf("create response: %v", created)
	}
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("create response has no id")
	}

	rr = env.admin(t, http.MethodGet, "/tutorials/"+id, nil)
	wantStatus(t, rr, http.StatusOK)
	got := decode(t, rr)["tutorial"].(map[string]any)
	if got["title"] != "Two Sum" || got["status"] != "draft" || got["difficulty"] != "medium" {
		t.Errorf("stored tutorial: %v", got)
	}
	if got["views"] != float64(0) || got["publishedAt"] != nil {
		t.Errorf("computed fields: views=%v publishedAt=%v", got["views"], got["publishedAt"])
	}

	rr = env.admin(t, http.MethodGet, "/tutorials", nil)
	wantStatus(t, rr, http.StatusOK)
	list := decode(t, rr)
	if list["count"] != float64(1) || len(list["tutorials"].([]any)) != 1 {
		t.Errorf("list: %v", list)
	}

	rr = env.admin(t, http.MethodPut, "/tutorials/"+id, map[string]any{"status": "published", "id": "ignored"})
	wantStatus(t, rr, http.StatusOK)
	updated := decode(t, rr)
	if updated["message"] != "Tutorial updated successfully" || updated["id"] != id {
		t.Errorf("update response: %v", updated)
	}

	rr = env.admin(t, http.MethodGet, "/tutorials/"+id, nil)
	got = decode(t, rr)["tutorial"].(map[string]any)
	firstPublished := got["publishedAt"]
	if firstPublished == nil {
		t.Fatal("publishedAt not set after publishing")
	}

	env.admin(t, http.MethodPut, "/tutorials/"+id, map[string]any{"status": "published"})
	rr = env.admin(t, http.MethodGet, "/tutorials/"+id, nil)
	if again := decode(t, rr)["tutorial"].(map[string]any)["publishedAt"]; again != firstPublished {
		t.Errorf("publishedAt changed: %v -> %v", firstPublished, again)
	}

	rr = env.admin(t, http.MethodDelete, "/tutorials/"+id, nil)
	wantStatus(t, rr, http.StatusOK)
	if msg := decode(t, rr)["message"]; msg != "Tutorial deleted successfully" {
		t.Errorf("delete message: %v", msg)
	}

	rr = env.admin(t, http.MethodGet, "/tutorials/"+id, nil)
	wantError(t, rr, http.StatusNotFound, "Tutorial not found")
}

func TestTutorialCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	rr := env.admin(t, http.MethodPost, "/tutorials", map[string]any{})
	wantError(t, rr, http.StatusBadRequest,
		"Missing required fields: title, slug, category, categorySlug, problemStatement")

	body := validTutorial()
	delete(body, "slug")
	body["difficulty"] = "extreme"
	rr = env.admin(t, http.MethodPost, "/tutorials", body)
	wantError(t, rr, http.StatusBadRequest, "Missing required fields: slug; Invalid fields: difficulty")

	if n := env.tutorials.size(); n != 0 {
		t.Errorf("stored tutorials: got %d, want 0", n)
	}
}

func TestAdminMalformedInput(t *testing.T) {
	env := newTestEnv(t)

	rr := env.admin(t, http.MethodPost, "/tutorials", "{not json")
	wantError(t, rr, http.StatusBadRequest, "Invalid JSON body")

	rr = env.admin(t, http.MethodPost, "/categories", "")
	wantError(t, rr, http.StatusBadRequest, "Invalid JSON body")

	rr = env.admin(t, http.MethodGet, "/tutorials/not-a-uuid", nil)
	wantError(t, rr, http.StatusNotFound, "Tutorial not found")

	rr = env.admin(t, http.MethodDelete, "/categories/not-a-uuid", nil)
	wantError(t, rr, http.StatusNotFound, "Category not found")
}

func TestTutorialUpdateNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.admin(t, http.MethodPost, "/tutorials", validTutorial())

	rr := env.admin(t, http.MethodPut, "/tutorials/8b0b6a47-5f7c-4d5e-9a71-0d7f0c7e1a11", map[string]any{"title": "x"})
	wantError(t, rr, http.StatusNotFound, "Tutorial not found")

	if n := env.tutorials.size(); n != 1 {
		t.Errorf("stored tutorials: got %d, want 1", n)
	}
}

func TestCategoryOrderAndSlug(t *testing.T) {
	env := newTestEnv(t)

	for _, name := range []string{"Arrays", "Dynamic Programming!", "Graphs"} {
		rr := env.admin(t, http.MethodPost, "/categories", map[string]any{"name": name})
		wantStatus(t, rr, http.StatusCreated)
		if msg := decode(t, rr)["message"]; msg != "Category created successfully" {
			t.Errorf("create message: %v", msg)
		}
	}

	rr := env.admin(t, http.MethodGet, "/categories", nil)
	wantStatus(t, rr, http.StatusOK)
	list := decode(t, rr)
	cats := list["categories"].([]any)
	if len(cats) != 3 || list["count"] != float64(3) {
		t.Fatalf("categories: %v", list)
	}
	wantSlugs := []string{"arrays", "dynamic-programming", "graphs"}
	for i, c := range cats {
		m := c.(map[string]any)
		if m["order"] != float64(i+1) {
			t.Errorf("category %d order: got %v, want %d", i, m["order"], i+1)
		}
		if m["slug"] != wantSlugs[i] {
			t.Errorf("category %d slug: got %v, want %s", i, m["slug"], wantSlugs[i])
		}
	}

	rr = env.admin(t, http.MethodPost, "/categories", map[string]any{})
	wantError(t, rr, http.StatusBadRequest, "Missing required fields: name")
}

func TestTopicsAndTags(t *testing.T) {
	env := newTestEnv(t)

	rr := env.admin(t, http.MethodPost, "/topics", map[string]any{"name": "Two Pointers"})
	wantStatus(t, rr, http.StatusCreated)
	topicID := decode(t, rr)["id"].(string)

	rr = env.admin(t, http.MethodPost, "/programming-tags", map[string]any{"name": "Go"})
	wantStatus(t, rr, http.StatusCreated)
	created := decode(t, rr)
	if created["message"] != "Programming tag created successfully" {
		t.Errorf("tag create message: %v", created["message"])
	}
	tagID := created["id"].(string)

	rr = env.admin(t, http.MethodGet, "/programming-tags", nil)
	wantStatus(t, rr, http.StatusOK)
	if list := decode(t, rr); list["count"] != float64(1) || len(list["tags"].([]any)) != 1 {
		t.Errorf("tags list: %v", list)
	}

	rr = env.admin(t, http.MethodPut, "/topics", map[string]any{"name": "x"})
	wantError(t, rr, http.StatusBadRequest, "Topic ID required")
	rr = env.admin(t, http.MethodDelete, "/programming-tags", nil)
	wantError(t, rr, http.StatusBadRequest, "Tag ID required")

	rr = env.admin(t, http.MethodPut, "/topics?id="+topicID, map[string]any{"description": "Sliding indices"})
	wantStatus(t, rr, http.StatusOK)
	if msg := decode(t, rr)["message"]; msg != "Topic updated successfully" {
		t.Errorf("topic update message: %v", msg)
	}

	rr = env.admin(t, http.MethodDelete, "/topics?id="+topicID, nil)
	wantStatus(t, rr, http.StatusOK)
	rr = env.admin(t, http.MethodPut, "/topics?id="+topicID, map[string]any{"name": "again"})
	wantError(t, rr, http.StatusNotFound, "Topic not found")

	rr = env.admin(t, http.MethodDelete, "/programming-tags?id="+tagID, nil)
	wantStatus(t, rr, http.StatusOK)
	if msg := decode(t, rr)["message"]; msg != "Programming tag deleted successfully" {
		t.Errorf("tag delete message: %v", msg)
	}
	rr = env.admin(t, http.MethodDelete, "/programming-tags?id="+tagID, nil)
	wantError(t, rr, http.StatusNotFound, "Tag not found")
}

func TestAdminStoreFailures(t *testing.T) {
	env := newTestEnv(t)

	env.tutorials.err = store.ErrUnavailable
	rr := env.admin(t, http.MethodGet, "/tutorials", nil)
	wantError(t, rr, http.StatusInternalServerError, "Document store unavailable")

	env.tutorials.err = nil
	env.categories.err = errors.New("disk on fire")
	rr = env.admin(t, http.MethodGet, "/categories", nil)
	wantStatus(t, rr, http.StatusInternalServerError)
	if msg, _ := decode(t, rr)["error"].(string); !strings.Contains(msg, "disk on fire") {
		t.Errorf("error message: got %q, want it to mention the cause", msg)
	}
}

func TestAdminWritesInvalidatePublicCache(t *testing.T) {
	env := newTestEnv(t)
	env.redis.Set("public:/api/public/tutorials", `{"tutorials":[],"count":0}`)

	rr := env.admin(t, http.MethodPost, "/categories", map[string]any{"name": "Arrays"})
	wantStatus(t, rr, http.StatusCreated)

	if env.redis.Exists("public:/api/public/tutorials") {
		t.Error("public cache entry survived a write")
	}
	if got := env.log.all(); !slices.Equal(got, []string{"category:create"}) {
		t.Errorf("invalidation log: got %v", got)
	}

	// Failed writes leave the cache alone.
	env.redis.Set("public:/api/public/categories", "cached")
	env.admin(t, http.MethodPost, "/categories", map[string]any{})
	if !env.redis.Exists("public:/api/public/categories") {
		t.Error("failed write flushed the cache")
	}
}

func TestAdminStats(t *testing.T) {
	env := newTestEnv(t)

	published := validTutorial()
	published["status"] = "published"
	published["views"] = 7
	env.admin(t, http.MethodPost, "/tutorials", published)

	draft := validTutorial()
	draft["slug"] = "two-sum-draft"
	env.admin(t, http.MethodPost, "/tutorials", draft)

	env.admin(t, http.MethodPost, "/categories", map[string]any{"name": "Arrays"})
	env.admin(t, http.MethodPost, "/topics", map[string]any{"name": "Hashing"})
	env.admin(t, http.MethodPost, "/programming-tags", map[string]any{"name": "Go"})
	env.admin(t, http.MethodPost, "/programming-tags", map[string]any{"name": "Rust"})

	rr := env.admin(t, http.MethodGet, "/stats", nil)
	wantStatus(t, rr, http.StatusOK)
	stats := decode(t, rr)["stats"].(map[string]any)

	want := map[string]float64{
		"totalTutorials":     2,
		"publishedTutorials": 1,
		"draftTutorials":     1,
		"totalCategories":    1,
		"totalTopics":        1,
		"totalTags":          2,
		// Views always start at zero on create.
		"totalViews": 0,
	}
	for k, v := range want {
		if stats[k] != v {
			t.Errorf("%s: got %v, want %v", k, stats[k], v)
		}
	}
}

func TestAdminStatsStoreFailure(t *testing.T) {
	env := newTestEnv(t)
	env.topics.err = store.ErrUnavailable

	rr := env.admin(t, http.MethodGet, "/stats", nil)
	wantError(t, rr, http.StatusInternalServerError, "Document store unavailable")
}
