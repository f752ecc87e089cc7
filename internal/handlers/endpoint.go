// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"

	"interviewcms/internal/repository"
)

// endpoint serves the five CRUD operations for one resource kind. T is the
// stored document and I its partial input.
type endpoint[T, I any] struct {
	repo    repository.Repository[T, I]
	res     resource
	changed func(ctx context.Context, entity, id, action string)
}

func (e endpoint[T, I]) list(w http.ResponseWriter, r *http.Request) {
	items, err := e.repo.List(r.Context())
	if err != nil {
		writeRepoError(w, r, e.res, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		e.res.plural: items,
		"count":      len(items),
	})
}

func (e endpoint[T, I]) get(w http.ResponseWriter, r *http.Request, id string) {
	item, err := e.repo.Get(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, e.res, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{e.res.singular: item})
}

func (e endpoint[T, I]) create(w http.ResponseWriter, r *http.Request) {
	var in I
	if !decodeBody(w, r, &in) {
		return
	}
	id, err := e.repo.Create(r.Context(), in)
	if err != nil {
		writeRepoError(w, r, e.res, err)
		return
	}
	e.notify(r.Context(), id.String(), "create")
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"id":      id,
		"message": e.res.messageLabel() + " created successfully",
	})
}

func (e endpoint[T, I]) update(w http.ResponseWriter, r *http.Request, id string) {
	var in I
	if !decodeBody(w, r, &in) {
		return
	}
	if err := e.repo.Update(r.Context(), id, in); err != nil {
		writeRepoError(w, r, e.res, err)
		return
	}
	e.notify(r.Context(), id, "update")
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": e.res.messageLabel() + " updated successfully",
		"id":      id,
	})
}

func (e endpoint[T, I]) remove(w http.ResponseWriter, r *http.Request, id string) {
	if err := e.repo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, r, e.res, err)
		return
	}
	e.notify(r.Context(), id, "delete")
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": e.res.messageLabel() + " deleted successfully",
		"id":      id,
	})
}

func (e endpoint[T, I]) notify(ctx context.Context, id, action string) {
	if e.changed != nil {
		e.changed(ctx, e.res.entity, id, action)
	}
}
