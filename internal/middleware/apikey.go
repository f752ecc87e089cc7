// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"interviewcms/internal/auth"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const classHolderKey contextKey = "class_holder"

func withClassHolder(ctx context.Context, h *classHolder) context.Context {
	return context.WithValue(ctx, classHolderKey, h)
}

// AuthRecorder receives authorization outcomes. metrics.Metrics satisfies it.
type AuthRecorder interface {
	AuthResult(result string)
}

// RequireAPIKey rejects requests the gate does not authorize with a 401
// before any downstream handler runs. The response does not reveal whether
// the key was missing or wrong. On success the credential class is stored
// in the request context (see auth.ClassFromCtx). rec may be nil.
func RequireAPIKey(gate *auth.Gate, rec AuthRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := gate.Authorize(r)
			if err != nil {
				slog.Warn("admin API request rejected",
					"reason", err.Error(),
					"method", r.Method,
					"path", r.URL.Path,
					"remote", r.RemoteAddr,
				)
				if rec != nil {
					rec.AuthResult(err.Error())
				}
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			if rec != nil {
				rec.AuthResult(string(res.Class))
			}
			if h, ok := r.Context().Value(classHolderKey).(*classHolder); ok {
				h.class = res.Class
			}
			next.ServeHTTP(w, r.WithContext(auth.WithClass(r.Context(), res.Class)))
		})
	}
}

// writeError sends a {"error": msg} body with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
