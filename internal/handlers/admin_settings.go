// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"interviewcms/internal/auth"
	"interviewcms/internal/credentials"
)

// keyStatus describes one credential class without revealing the key.
type keyStatus struct {
	Custom bool   `json:"custom"`
	Masked string `json:"masked"`
}

// apiKeysUpdate is the body of PUT /api/admin/settings/api-keys. A nil
// field is left alone, an empty string clears the override, and Generate
// lists classes that should receive a freshly generated key.
type apiKeysUpdate struct {
	External *string  `json:"external"`
	Internal *string  `json:"internal"`
	Generate []string `json:"generate"`
}

// APIKeys reports which credential classes run on an override.
func (a *Admin) APIKeys(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"external": keyStatus{Custom: a.keys.IsCustomExternal(), Masked: credentials.Mask(a.keys.External())},
		"internal": keyStatus{Custom: a.keys.IsCustomInternal(), Masked: credentials.Mask(a.keys.Internal())},
	})
}

// UpdateAPIKeys sets, clears or regenerates key overrides. Generated keys
// are returned once in the response and never again.
func (a *Admin) UpdateAPIKeys(w http.ResponseWriter, r *http.Request) {
	var in apiKeysUpdate
	if !decodeBody(w, r, &in) {
		return
	}
	for _, c := range in.Generate {
		if c != string(auth.ClassExternal) && c != string(auth.ClassInternal) {
			writeError(w, http.StatusBadRequest, "Invalid fields: generate")
			return
		}
	}

	ctx := r.Context()
	generated := map[string]string{}

	external := in.External
	if slices.Contains(in.Generate, string(auth.ClassExternal)) {
		key, err := credentials.GenerateKey("")
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		external = &key
		generated[string(auth.ClassExternal)] = key
	}
	internal := in.Internal
	if slices.Contains(in.Generate, string(auth.ClassInternal)) {
		key, err := credentials.GenerateKey(credentials.InternalPrefix)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		internal = &key
		generated[string(auth.ClassInternal)] = key
	}

	// Both writes land or neither does, so a failed internal write puts the
	// external override back the way it was.
	previous := ""
	if a.keys.IsCustomExternal() {
		previous = a.keys.External()
	}
	if external != nil {
		if err := a.keys.SetExternal(ctx, *external); err != nil {
			slog.Error("update external API key failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to save API key")
			return
		}
	}
	if internal != nil {
		if err := a.keys.SetInternal(ctx, *internal); err != nil {
			slog.Error("update internal API key failed", "error", err)
			if external != nil {
				if rerr := a.keys.SetExternal(ctx, previous); rerr != nil {
					slog.Error("restore external API key failed", "error", rerr)
				}
			}
			writeError(w, http.StatusInternalServerError, "Failed to save API key")
			return
		}
	}

	slog.Info("admin API keys changed",
		"by", string(authClass(r)),
		"external", external != nil,
		"internal", internal != nil,
	)
	resp := map[string]any{
		"success": true,
		"message": "API keys updated successfully",
	}
	if len(generated) > 0 {
		resp["generated"] = generated
	}
	writeJSON(w, http.StatusOK, resp)
}

func authClass(r *http.Request) auth.Class {
	return auth.ClassFromCtx(r.Context())
}
