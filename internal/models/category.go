// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups tutorials for browsing. Categories are displayed sorted
// by Order. TutorialCount is maintained by callers on a best-effort basis.
type Category struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Icon          string    `json:"icon"`
	Color         string    `json:"color"`
	TutorialCount int       `json:"tutorialCount"`
	Order         int       `json:"order"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CategoryInput is the writable subset of a Category. A nil field was not supplied.
type CategoryInput struct {
	Name          *string `json:"name"`
	Slug          *string `json:"slug"`
	Description   *string `json:"description"`
	Icon          *string `json:"icon"`
	Color         *string `json:"color"`
	TutorialCount *int    `json:"tutorialCount"`
	Order         *int    `json:"order"`
}

// ApplyTo copies every supplied field onto c.
func (in *CategoryInput) ApplyTo(c *Category) {
	setIf(&c.Name, in.Name)
	setIf(&c.Slug, in.Slug)
	setIf(&c.Description, in.Description)
	setIf(&c.Icon, in.Icon)
	setIf(&c.Color, in.Color)
	setIf(&c.TutorialCount, in.TutorialCount)
	setIf(&c.Order, in.Order)
}
