// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package credentials holds the two admin API keys the authorization gate
// compares requests against. Each key resolves in order: a runtime override
// persisted in the settings table, the value from the environment, then a
// built-in development fallback.
package credentials

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
)

// Built-in fallbacks used when neither an override nor an environment value
// is present. They exist so a fresh checkout works; production should always
// configure real keys.
const (
	FallbackExternal = "dev-external-key-change-me"
	FallbackInternal = "internal_dev-internal-key-change-me"
)

// Settings keys under which runtime overrides are persisted.
const (
	SettingExternal = "admin_external_api_key"
	SettingInternal = "admin_internal_api_key"
)

// InternalPrefix is prepended to generated internal keys so they are easy to
// tell apart from external ones in logs and dashboards.
const InternalPrefix = "internal_"

// Defaults are the environment-provided keys. An empty field means the
// built-in fallback applies.
type Defaults struct {
	External string
	Internal string
}

// Persister stores key overrides. Get returns "" when no override is stored.
type Persister interface {
	Get(ctx context.Context, key, fallback string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Store resolves the active admin keys. It is safe for concurrent use; the
// gate reads on every admin request while settings writes happen rarely.
type Store struct {
	defaults Defaults
	persist  Persister

	mu       sync.RWMutex
	external string // override, "" when unset
	internal string
}

// New creates a Store. persist may be nil, in which case overrides live in
// memory only and are lost on restart.
func New(defaults Defaults, persist Persister) *Store {
	return &Store{defaults: defaults, persist: persist}
}

// Load reads persisted overrides into memory. Call once at startup.
func (s *Store) Load(ctx context.Context) error {
	if s.persist == nil {
		return nil
	}
	ext, err := s.persist.Get(ctx, SettingExternal, "")
	if err != nil {
		return fmt.Errorf("load external key override: %w", err)
	}
	in, err := s.persist.Get(ctx, SettingInternal, "")
	if err != nil {
		return fmt.Errorf("load internal key override: %w", err)
	}

	s.mu.Lock()
	s.external, s.internal = ext, in
	s.mu.Unlock()

	if ext == "" && s.defaults.External == "" {
		slog.Warn("external admin API key is using the built-in fallback")
	}
	if in == "" && s.defaults.Internal == "" {
		slog.Warn("internal admin API key is using the built-in fallback")
	}
	return nil
}

// External returns the active key for third-party callers.
func (s *Store) External() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return resolve(s.external, s.defaults.External, FallbackExternal)
}

// Internal returns the active key for the admin dashboard.
func (s *Store) Internal() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return resolve(s.internal, s.defaults.Internal, FallbackInternal)
}

// IsCustomExternal reports whether a runtime override is in effect.
func (s *Store) IsCustomExternal() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.external != ""
}

// IsCustomInternal reports whether a runtime override is in effect.
func (s *Store) IsCustomInternal() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.internal != ""
}

// SetExternal stores an override for the external key. An empty value clears
// the override so the environment value or fallback applies again.
func (s *Store) SetExternal(ctx context.Context, key string) error {
	if err := s.save(ctx, SettingExternal, key); err != nil {
		return err
	}
	s.mu.Lock()
	s.external = key
	s.mu.Unlock()
	slog.Info("external admin API key updated", "custom", key != "")
	return nil
}

// SetInternal stores an override for the internal key. An empty value clears
// the override.
func (s *Store) SetInternal(ctx context.Context, key string) error {
	if err := s.save(ctx, SettingInternal, key); err != nil {
		return err
	}
	s.mu.Lock()
	s.internal = key
	s.mu.Unlock()
	slog.Info("internal admin API key updated", "custom", key != "")
	return nil
}

func (s *Store) save(ctx context.Context, name, value string) error {
	if s.persist == nil {
		return nil
	}
	var err error
	if value == "" {
		err = s.persist.Delete(ctx, name)
	} else {
		err = s.persist.Set(ctx, name, value)
	}
	if err != nil {
		return fmt.Errorf("persist %s: %w", name, err)
	}
	return nil
}

// GenerateKey returns a random 64-character hex key with the given prefix.
func GenerateKey(prefix string) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return prefix + hex.EncodeToString(b), nil
}

// Mask hides all but the last four characters of a key for display.
func Mask(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}

func resolve(override, env, fallback string) string {
	if override != "" {
		return override
	}
	if env != "" {
		return env
	}
	return fallback
}
