// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// tutorial CMS. Routes are organized into a public read group and an
// API-key protected admin group.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"interviewcms/internal/auth"
	"interviewcms/internal/handlers"
	"interviewcms/internal/metrics"
	"interviewcms/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. m may be nil, in which case no metrics are
// collected and /metrics is not mounted.
func New(gate *auth.Gate, admin *handlers.Admin, public *handlers.Public, m *metrics.Metrics) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)
	if m != nil {
		r.Use(m.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Health check and metrics, no credential.
	r.Get("/health", healthHandler)
	if m != nil {
		r.Handle("/metrics", m.Handler())
	}

	// Admin API. Every route sits behind the key gate, which answers 401
	// before any handler runs.
	var recorder middleware.AuthRecorder
	if m != nil {
		recorder = m
	}
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.NoStore)
		r.Use(middleware.RequireAPIKey(gate, recorder))

		r.Get("/stats", admin.Stats)
		r.Get("/settings/api-keys", admin.APIKeys)
		r.Put("/settings/api-keys", admin.UpdateAPIKeys)
		r.Get("/cache-log", admin.CacheLog)
		r.Post("/cache/flush", admin.FlushCache)

		r.Route("/tutorials", func(r chi.Router) {
			r.Get("/", admin.TutorialsList)
			r.Post("/", admin.TutorialCreate)
			r.Get("/{id}", admin.TutorialGet)
			r.Put("/{id}", admin.TutorialUpdate)
			r.Delete("/{id}", admin.TutorialDelete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", admin.CategoriesList)
			r.Post("/", admin.CategoryCreate)
			r.Get("/{id}", admin.CategoryGet)
			r.Put("/{id}", admin.CategoryUpdate)
			r.Delete("/{id}", admin.CategoryDelete)
		})

		// Topics and programming tags address documents by ?id=.
		r.Route("/topics", func(r chi.Router) {
			r.Get("/", admin.TopicsList)
			r.Post("/", admin.TopicCreate)
			r.Put("/", admin.TopicUpdate)
			r.Delete("/", admin.TopicDelete)
		})

		r.Route("/programming-tags", func(r chi.Router) {
			r.Get("/", admin.TagsList)
			r.Post("/", admin.TagCreate)
			r.Put("/", admin.TagUpdate)
			r.Delete("/", admin.TagDelete)
		})
	})

	// Public read API, published content only.
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

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}
