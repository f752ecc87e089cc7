// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// Errors returned by every store so callers can tell outcomes apart without
// looking at driver types.
var (
	// ErrNotFound means an update or delete matched no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a unique constraint (a slug) was violated.
	ErrDuplicate = errors.New("duplicate record")
	// ErrUnavailable means the database could not be reached.
	ErrUnavailable = errors.New("database unavailable")
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// classify wraps err with one of the store sentinels when it recognizes the
// failure, keeping the original error in the chain.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w: %s", op, ErrDuplicate, pgErr.ConstraintName)
	}

	var connErr *pgconn.ConnectError
	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) ||
		errors.As(err, &connErr) || errors.As(err, &netErr) {
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// requireAffected turns a zero-row result into ErrNotFound.
func requireAffected(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
