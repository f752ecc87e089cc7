// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts tutorial Markdown into HTML using goldmark.
// Raw HTML in the source is escaped, since tutorial bodies arrive through the
// admin API from third-party integrations.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"interviewcms/internal/models"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,         // tables, strikethrough, autolinks, task lists
		extension.Typographer, // smart quotes and dashes
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
			highlighting.WithFormatOptions(),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// ToHTML converts Markdown source into HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// CodeToHTML renders code as a highlighted block for the given language.
func CodeToHTML(lang, code string) (string, error) {
	fence := "```"
	for strings.Contains(code, fence) {
		fence += "`"
	}
	return ToHTML(fence + lang + "\n" + code + "\n" + fence + "\n")
}

// TutorialHTML holds the rendered prose sections of a tutorial.
type TutorialHTML struct {
	ProblemStatement string                  `json:"problemStatement"`
	InputFormat      string                  `json:"inputFormat,omitempty"`
	OutputFormat     string                  `json:"outputFormat,omitempty"`
	Constraints      string                  `json:"constraints,omitempty"`
	Approach         string                  `json:"approach,omitempty"`
	Solutions        map[string]SolutionHTML `json:"solutions,omitempty"`
}

// SolutionHTML is a rendered solution for one language.
type SolutionHTML struct {
	Code        string `json:"code"`
	Explanation string `json:"explanation,omitempty"`
}

// RenderTutorial renders every Markdown section of t. Empty sections stay
// empty.
func RenderTutorial(t *models.Tutorial) (*TutorialHTML, error) {
	out := &TutorialHTML{}
	sections := []struct {
		name string
		src  string
		dst  *string
	}{
		{"problemStatement", t.ProblemStatement, &out.ProblemStatement},
		{"inputFormat", t.InputFormat, &out.InputFormat},
		{"outputFormat", t.OutputFormat, &out.OutputFormat},
		{"constraints", t.Constraints, &out.Constraints},
		{"approach", t.Approach, &out.Approach},
	}
	for _, s := range sections {
		if s.src == "" {
			continue
		}
		h, err := ToHTML(s.src)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", s.name, err)
		}
		*s.dst = h
	}

	if len(t.Solutions) > 0 {
		out.Solutions = make(map[string]SolutionHTML, len(t.Solutions))
	}
	for lang, sol := range t.Solutions {
		code, err := CodeToHTML(lang, sol.Code)
		if err != nil {
			return nil, fmt.Errorf("render %s solution: %w", lang, err)
		}
		var expl string
		if sol.Explanation != "" {
			if expl, err = ToHTML(sol.Explanation); err != nil {
				return nil, fmt.Errorf("render %s explanation: %w", lang, err)
			}
		}
		out.Solutions[lang] = SolutionHTML{Code: code, Explanation: expl}
	}
	return out, nil
}
