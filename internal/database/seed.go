// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"interviewcms/internal/slug"
)

//go:embed seed.yaml
var seedYAML []byte

// SeedData is the starter taxonomy loaded into an empty development database.
type SeedData struct {
	Categories []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Icon        string `yaml:"icon"`
		Color       string `yaml:"color"`
	} `yaml:"categories"`
	Topics []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Color       string `yaml:"color"`
	} `yaml:"topics"`
	Tags []struct {
		Name  string `yaml:"name"`
		Slug  string `yaml:"slug"`
		Icon  string `yaml:"icon"`
		Color string `yaml:"color"`
	} `yaml:"tags"`
}

// LoadSeedData parses the embedded seed file.
func LoadSeedData() (*SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}

// Seed populates the database with starter categories, topics and language
// tags. It does nothing when any category already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	data, err := LoadSeedData()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for i, c := range data.Categories {
		_, err := tx.Exec(`
			INSERT INTO categories (id, name, slug, description, icon, color, tutorial_count, sort_order, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8, $8)
			ON CONFLICT (slug) DO NOTHING`,
			uuid.New(), c.Name, slug.Generate(c.Name), c.Description, c.Icon, c.Color, i+1, now,
		)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
	}
	for _, t := range data.Topics {
		_, err := tx.Exec(`
			INSERT INTO topics (id, name, slug, description, color, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			ON CONFLICT (slug) DO NOTHING`,
			uuid.New(), t.Name, slug.Generate(t.Name), t.Description, t.Color, now,
		)
		if err != nil {
			return fmt.Errorf("seed topic %q: %w", t.Name, err)
		}
	}
	for _, t := range data.Tags {
		s := t.Slug
		if s == "" {
			s = slug.Generate(t.Name)
		}
		_, err := tx.Exec(`
			INSERT INTO language_tags (id, name, slug, icon, color, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			ON CONFLICT (slug) DO NOTHING`,
			uuid.New(), t.Name, s, t.Icon, t.Color, now,
		)
		if err != nil {
			return fmt.Errorf("seed tag %q: %w", t.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded",
		"categories", len(data.Categories),
		"topics", len(data.Topics),
		"tags", len(data.Tags),
	)
	return nil
}
