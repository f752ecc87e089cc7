// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the admin and public JSON
// APIs. Handlers are grouped by surface and receive their dependencies
// through the handler struct.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"interviewcms/internal/repository"
)

// maxBodyBytes caps the size of a JSON request body.
const maxBodyBytes = 1 << 20

// resource names a kind in response envelopes and messages.
type resource struct {
	singular string // envelope key for a single document
	plural   string // envelope key for a list
	label    string // human-readable name used in messages
	entity   string // entity type recorded in the cache invalidation log
}

var (
	tutorialResource = resource{singular: "tutorial", plural: "tutorials", label: "Tutorial", entity: "tutorial"}
	categoryResource = resource{singular: "category", plural: "categories", label: "Category", entity: "category"}
	topicResource    = resource{singular: "topic", plural: "topics", label: "Topic", entity: "topic"}
	tagResource      = resource{singular: "tag", plural: "tags", label: "Tag", entity: "programming_tag"}
)

// messageLabel is the name used in success messages. Language tags are
// called "Programming tag" there but plain "Tag" in errors.
func (r resource) messageLabel() string {
	if r == tagResource {
		return "Programming tag"
	}
	return r.label
}

// writeJSON encodes data as JSON with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write json response failed", "error", err)
	}
}

// writeError sends a {"error": msg} body.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeRepoError maps a repository failure onto an HTTP status. Validation
// failures name the offending fields, a missing document names its kind,
// and an unreachable store gets a generic message. Anything else is passed
// through as a 500 with the error text.
func writeRepoError(w http.ResponseWriter, r *http.Request, res resource, err error) {
	var verr *repository.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, res.label+" not found")
	case errors.Is(err, repository.ErrStoreUnavailable):
		slog.Error("document store unavailable", "error", err, "method", r.Method, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "Document store unavailable")
	default:
		slog.Error("repository operation failed", "error", err, "kind", res.singular, "method", r.Method, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeBody reads a JSON request body into dst. Unknown fields, including
// system-managed ones such as id, are ignored.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
