// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"interviewcms/internal/store"
)

const (
	defaultCacheLogLimit = 50
	maxCacheLogLimit     = 500
)

// CacheLog lists the most recent public cache flushes, newest first.
func (a *Admin) CacheLog(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultCacheLogLimit
	}
	limit = min(limit, maxCacheLogLimit)

	entries := []store.CacheLogEntry{}
	if a.cacheLog != nil {
		got, err := a.cacheLog.RecentEntries(r.Context(), limit)
		if err != nil {
			slog.Error("list cache log failed", "error", err)
			msg := err.Error()
			if errors.Is(err, store.ErrUnavailable) {
				msg = "Document store unavailable"
			}
			writeError(w, http.StatusInternalServerError, msg)
			return
		}
		if got != nil {
			entries = got
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"entries": entries,
		"count":   len(entries),
	})
}

// FlushCache empties the public response cache without a content change.
// With ?key= only that entry (a public path plus its query) is dropped.
func (a *Admin) FlushCache(w http.ResponseWriter, r *http.Request) {
	if key := r.URL.Query().Get("key"); key != "" {
		a.cache.Invalidate(r.Context(), key)
		slog.Info("public cache entry flushed by admin", "key", key, "by", string(authClass(r)))
	} else {
		a.cache.InvalidateAll(r.Context())
		slog.Info("public cache flushed by admin", "by", string(authClass(r)))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Cache cleared successfully",
	})
}
