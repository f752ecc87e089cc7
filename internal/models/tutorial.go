// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty grades how hard an interview problem is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// TutorialStatus represents the publishing state of a tutorial.
type TutorialStatus string

const (
	StatusDraft     TutorialStatus = "draft"
	StatusPublished TutorialStatus = "published"
)

// Example is one worked input/output pair shown under a problem statement.
type Example struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// Solution holds the reference solution for a single programming language.
type Solution struct {
	Code        string `json:"code"`
	Explanation string `json:"explanation"`
}

// Complexity is the asymptotic cost of the reference approach.
type Complexity struct {
	Time  string `json:"time"`
	Space string `json:"space"`
}

// Tutorial is a coding-interview problem with its walkthrough and solutions.
// Category and CategorySlug are a denormalized copy of the owning category;
// Topics and ProgrammingTags hold topic and language tag slugs. None of these
// references are enforced.
type Tutorial struct {
	ID               uuid.UUID           `json:"id"`
	Title            string              `json:"title"`
	Slug             string              `json:"slug"`
	Description      string              `json:"description"`
	Category         string              `json:"category"`
	CategorySlug     string              `json:"categorySlug"`
	Difficulty       Difficulty          `json:"difficulty"`
	Tags             []string            `json:"tags"`
	ProblemStatement string              `json:"problemStatement"`
	InputFormat      string              `json:"inputFormat"`
	OutputFormat     string              `json:"outputFormat"`
	Constraints      string              `json:"constraints"`
	Examples         []Example           `json:"examples"`
	Solutions        map[string]Solution `json:"solutions"`
	Approach         string              `json:"approach"`
	Complexity       Complexity          `json:"complexity"`
	RelatedTutorials []string            `json:"relatedTutorials"`
	Views            int                 `json:"views"`
	Status           TutorialStatus      `json:"status"`
	Featured         bool                `json:"featured"`
	Topics           []string            `json:"topics"`
	ProgrammingTags  []string            `json:"programmingTags"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
	PublishedAt      *time.Time          `json:"publishedAt"`
}

// IsPublished returns true if the tutorial is in published status.
func (t *Tutorial) IsPublished() bool {
	return t.Status == StatusPublished
}

// TutorialInput is the writable subset of a Tutorial as sent by API callers.
// A nil field was not supplied. System-managed fields (id, createdAt,
// updatedAt, publishedAt) have no counterpart here and are dropped on decode.
type TutorialInput struct {
	Title            *string              `json:"title"`
	Slug             *string              `json:"slug"`
	Description      *string              `json:"description"`
	Category         *string              `json:"category"`
	CategorySlug     *string              `json:"categorySlug"`
	Difficulty       *Difficulty          `json:"difficulty"`
	Tags             *[]string            `json:"tags"`
	ProblemStatement *string              `json:"problemStatement"`
	InputFormat      *string              `json:"inputFormat"`
	OutputFormat     *string              `json:"outputFormat"`
	Constraints      *string              `json:"constraints"`
	Examples         *[]Example           `json:"examples"`
	Solutions        *map[string]Solution `json:"solutions"`
	Approach         *string              `json:"approach"`
	Complexity       *Complexity          `json:"complexity"`
	RelatedTutorials *[]string            `json:"relatedTutorials"`
	Views            *int                 `json:"views"`
	Status           *TutorialStatus      `json:"status"`
	Featured         *bool                `json:"featured"`
	Topics           *[]string            `json:"topics"`
	ProgrammingTags  *[]string            `json:"programmingTags"`
}

// ApplyTo copies every supplied field onto t, leaving the rest untouched.
func (in *TutorialInput) ApplyTo(t *Tutorial) {
	setIf(&t.Title, in.Title)
	setIf(&t.Slug, in.Slug)
	setIf(&t.Description, in.Description)
	setIf(&t.Category, in.Category)
	setIf(&t.CategorySlug, in.CategorySlug)
	setIf(&t.Difficulty, in.Difficulty)
	setIf(&t.Tags, in.Tags)
	setIf(&t.ProblemStatement, in.ProblemStatement)
	setIf(&t.InputFormat, in.InputFormat)
	setIf(&t.OutputFormat, in.OutputFormat)
	setIf(&t.Constraints, in.Constraints)
	setIf(&t.Examples, in.Examples)
	setIf(&t.Solutions, in.Solutions)
	setIf(&t.Approach, in.Approach)
	setIf(&t.Complexity, in.Complexity)
	setIf(&t.RelatedTutorials, in.RelatedTutorials)
	setIf(&t.Views, in.Views)
	setIf(&t.Status, in.Status)
	setIf(&t.Featured, in.Featured)
	setIf(&t.Topics, in.Topics)
	setIf(&t.ProgrammingTags, in.ProgrammingTags)
}

// setIf assigns *src to *dst when src was supplied.
func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
