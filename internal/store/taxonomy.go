// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"interviewcms/internal/models"
)

// TopicStore manages topics in the database.
type TopicStore struct {
	db *sql.DB
}

// NewTopicStore returns a new TopicStore.
func NewTopicStore(db *sql.DB) *TopicStore {
	return &TopicStore{db: db}
}

const topicColumns = `id, name, slug, description, color, created_at, updated_at`

func scanTopic(scanner interface{ Scan(...any) error }) (*models.Topic, error) {
	var t models.Topic
	if err := scanner.Scan(&t.ID, &t.Name, &t.Slug, &t.Description, &t.Color, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all topics ordered by name.
func (s *TopicStore) List(ctx context.Context) ([]models.Topic, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+topicColumns+` FROM topics ORDER BY name`)
	if err != nil {
		return nil, classify("list topics", err)
	}
	defer rows.Close()

	var items []models.Topic
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		items = append(items, *t)
	}
	return items, classify("list topics", rows.Err())
}

// FindByID returns the topic with the given id, or nil if none exists.
func (s *TopicStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Topic, error) {
	t, err := scanTopic(s.db.QueryRowContext(ctx, `SELECT `+topicColumns+` FROM topics WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("find topic by id", err)
	}
	return t, nil
}

func (s *TopicStore) Create(ctx context.Context, t *models.Topic) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO topics (`+topicColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.Name, t.Slug, t.Description, t.Color, t.CreatedAt, t.UpdatedAt,
	)
	return classify("insert topic", err)
}

func (s *TopicStore) Update(ctx context.Context, t *models.Topic) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE topics SET name = $2, slug = $3, description = $4, color = $5, updated_at = $6
		WHERE id = $1`,
		t.ID, t.Name, t.Slug, t.Description, t.Color, t.UpdatedAt,
	)
	if err != nil {
		return classify("update topic", err)
	}
	return requireAffected("update topic", res)
}

func (s *TopicStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM topics WHERE id = $1`, id)
	if err != nil {
		return classify("delete topic", err)
	}
	return requireAffected("delete topic", res)
}

// LanguageTagStore manages programming language tags in the database.
type LanguageTagStore struct {
	db *sql.DB
}

// NewLanguageTagStore returns a new LanguageTagStore.
func NewLanguageTagStore(db *sql.DB) *LanguageTagStore {
	return &LanguageTagStore{db: db}
}

const languageTagColumns = `id, name, slug, icon, color, created_at, updated_at`

func scanLanguageTag(scanner interface{ Scan(...any) error }) (*models.LanguageTag, error) {
	var t models.LanguageTag
	if err := scanner.Scan(&t.ID, &t.Name, &t.Slug, &t.Icon, &t.Color, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all language tags ordered by name.
func (s *LanguageTagStore) List(ctx context.Context) ([]models.LanguageTag, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+languageTagColumns+` FROM language_tags ORDER BY name`)
	if err != nil {
		return nil, classify("list language tags", err)
	}
	defer rows.Close()

	var items []models.LanguageTag
	for rows.Next() {
		t, err := scanLanguageTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan language tag: %w", err)
		}
		items = append(items, *t)
	}
	return items, classify("list language tags", rows.Err())
}

// FindByID returns the tag with the given id, or nil if none exists.
func (s *LanguageTagStore) FindByID(ctx context.Context, id uuid.UUID) (*models.LanguageTag, error) {
	t, err := scanLanguageTag(s.db.QueryRowContext(ctx,
		`SELECT `+languageTagColumns+` FROM language_tags WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("find language tag by id", err)
	}
	return t, nil
}

func (s *LanguageTagStore) Create(ctx context.Context, t *models.LanguageTag) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO language_tags (`+languageTagColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.Name, t.Slug, t.Icon, t.Color, t.CreatedAt, t.UpdatedAt,
	)
	return classify("insert language tag", err)
}

func (s *LanguageTagStore) Update(ctx context.Context, t *models.LanguageTag) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE language_tags SET name = $2, slug = $3, icon = $4, color = $5, updated_at = $6
		WHERE id = $1`,
		t.ID, t.Name, t.Slug, t.Icon, t.Color, t.UpdatedAt,
	)
	if err != nil {
		return classify("update language tag", err)
	}
	return requireAffected("update language tag", res)
}

func (s *LanguageTagStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM language_tags WHERE id = $1`, id)
	if err != nil {
		return classify("delete language tag", err)
	}
	return requireAffected("delete language tag", res)
}
