// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a subject area (e.g. "Sliding Window") tutorials can be filed under.
type Topic struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TopicInput is the writable subset of a Topic.
type TopicInput struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// ApplyTo copies every supplied field onto t.
func (in *TopicInput) ApplyTo(t *Topic) {
	setIf(&t.Name, in.Name)
	setIf(&t.Slug, in.Slug)
	setIf(&t.Description, in.Description)
	setIf(&t.Color, in.Color)
}

// LanguageTag labels the programming languages a tutorial has solutions in.
type LanguageTag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LanguageTagInput is the writable subset of a LanguageTag.
type LanguageTagInput struct {
	Name  *string `json:"name"`
	Slug  *string `json:"slug"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

// ApplyTo copies every supplied field onto t.
func (in *LanguageTagInput) ApplyTo(t *LanguageTag) {
	setIf(&t.Name, in.Name)
	setIf(&t.Slug, in.Slug)
	setIf(&t.Icon, in.Icon)
	setIf(&t.Color, in.Color)
}
