// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth decides whether an admin API request carries a recognized
// API key and, if so, which class of caller it belongs to.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// Rejection reasons. Both surface to the caller as the same 401; the
// distinction exists for logs and metrics only.
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidCredential = errors.New("invalid credential")
)

// Class identifies which configured key a request matched.
type Class string

const (
	ClassExternal Class = "external"
	ClassInternal Class = "internal"
)

// KeySource supplies the currently active keys. credentials.Store satisfies it.
type KeySource interface {
	External() string
	Internal() string
}

// Result is the outcome of a successful authorization.
type Result struct {
	Class Class
}

// Gate checks request credentials against a KeySource. Both classes are
// granted the same capabilities.
type Gate struct {
	keys KeySource
}

// NewGate returns a Gate backed by keys.
func NewGate(keys KeySource) *Gate {
	return &Gate{keys: keys}
}

// Authorize classifies r. A non-empty Bearer token takes precedence over the
// x-api-key header. Keys are compared with plain string equality and an empty
// configured key never matches.
func (g *Gate) Authorize(r *http.Request) (Result, error) {
	cred := Credential(r)
	if cred == "" {
		return Result{}, ErrMissingCredential
	}

	if ext := g.keys.External(); ext != "" && cred == ext {
		return Result{Class: ClassExternal}, nil
	}
	if in := g.keys.Internal(); in != "" && cred == in {
		return Result{Class: ClassInternal}, nil
	}
	return Result{}, ErrInvalidCredential
}

// Credential extracts the presented key from r, or "" if none.
func Credential(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			if token = strings.TrimSpace(token); token != "" {
				return token
			}
		}
	}
	return r.Header.Get("x-api-key")
}

type contextKey string

const classKey contextKey = "auth_class"

// WithClass stores the matched credential class in ctx.
func WithClass(ctx context.Context, c Class) context.Context {
	return context.WithValue(ctx, classKey, c)
}

// ClassFromCtx returns the class stored by WithClass, or "" if the request
// was never authorized.
func ClassFromCtx(ctx context.Context) Class {
	c, _ := ctx.Value(classKey).(Class)
	return c
}
