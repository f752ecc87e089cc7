// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"interviewcms/internal/models"
)

// Stats is the dashboard summary returned by GET /api/admin/stats.
type Stats struct {
	TotalTutorials     int `json:"totalTutorials"`
	PublishedTutorials int `json:"publishedTutorials"`
	DraftTutorials     int `json:"draftTutorials"`
	TotalCategories    int `json:"totalCategories"`
	TotalTopics        int `json:"totalTopics"`
	TotalTags          int `json:"totalTags"`
	TotalViews         int `json:"totalViews"`
}

// Stats counts the documents of every kind. The four collections are read
// concurrently; the first failure aborts the rest.
func (a *Admin) Stats(w http.ResponseWriter, r *http.Request) {
	var (
		tutorials  []models.Tutorial
		categories []models.Category
		topics     []models.Topic
		tags       []models.LanguageTag
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		tutorials, err = a.tutorials.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = a.categories.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		topics, err = a.topics.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		tags, err = a.tags.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		writeRepoError(w, r, resource{label: "Resource"}, err)
		return
	}

	stats := Stats{
		TotalTutorials:  len(tutorials),
		TotalCategories: len(categories),
		TotalTopics:     len(topics),
		TotalTags:       len(tags),
	}
	for _, t := range tutorials {
		if t.IsPublished() {
			stats.PublishedTutorials++
		} else {
			stats.DraftTutorials++
		}
		stats.TotalViews += t.Views
	}
	writeJSON(w, http.StatusOK, map[string]any{"stats": stats})
}
