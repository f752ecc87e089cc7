// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package repository

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"interviewcms/internal/models"
)

var (
	difficultyRule = validation.In(
		string(models.DifficultyEasy),
		string(models.DifficultyMedium),
		string(models.DifficultyHard),
	)
	statusRule = validation.In(
		string(models.StatusDraft),
		string(models.StatusPublished),
	)
)

// requiredField is a named string input that must be present and non-empty.
type requiredField struct {
	name  string
	value *string
}

// checkCreate reports every required field that is absent or empty, in the
// order given.
func checkCreate(verr *ValidationError, fields ...requiredField) {
	for _, f := range fields {
		if validation.Validate(deref(f.value), validation.Required) != nil {
			verr.Missing = append(verr.Missing, f.name)
		}
	}
}

// checkUpdate rejects required fields that were supplied but emptied. Absent
// fields are fine on update.
func checkUpdate(verr *ValidationError, fields ...requiredField) {
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if validation.Validate(*f.value, validation.Required) != nil {
			verr.Invalid = append(verr.Invalid, f.name)
		}
	}
}

// checkEnum rejects a supplied value outside rule. An explicitly empty value
// is rejected too.
func checkEnum(verr *ValidationError, name string, value *string, rule validation.Rule) {
	if value == nil {
		return
	}
	if validation.Validate(*value, validation.Required, rule) != nil {
		verr.Invalid = append(verr.Invalid, name)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// asString converts a typed string enum pointer for validation.
func asString[S ~string](p *S) *string {
	if p == nil {
		return nil
	}
	s := string(*p)
	return &s
}
