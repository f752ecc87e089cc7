// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// SettingStore manages key/value application settings, such as API key
// overrides, in the database.
type SettingStore struct {
	db *sql.DB
}

// NewSettingStore returns a new SettingStore backed by the given database.
func NewSettingStore(db *sql.DB) *SettingStore {
	return &SettingStore{db: db}
}

// Get returns a single setting by key, or the fallback if not found or empty.
func (s *SettingStore) Get(ctx context.Context, key, fallback string) (string, error) {
	var val string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return fallback, nil
	}
	if err != nil {
		return fallback, classify("get setting", err)
	}
	if val == "" {
		return fallback, nil
	}
	return val, nil
}

// Set upserts a single setting. Creates it if it doesn't exist.
func (s *SettingStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value, time.Now(),
	)
	return classify("set setting", err)
}

// Delete removes a setting. Deleting a missing key is not an error.
func (s *SettingStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = $1`, key)
	return classify("delete setting", err)
}
