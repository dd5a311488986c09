// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Classification
//
// pgx errors are mapped by SQLSTATE so that storage details never leak to
// clients: missing rows and malformed identifiers become 404s, unique and
// foreign-key violations become 400s, everything else becomes a 500.
package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lmarchal/filmotheque/internal/platform/apperr"
)

// ErrNotFound is the standard error returned when a queried row doesn't exist.
var ErrNotFound = apperr.NotFound("Resource")

// constraintFields maps known unique-constraint names to the client-facing
// field named in the "<field> already exists" message.
var constraintFields = map[string]string{
	"uq_internaute_email":    "email",
	"pays_pkey":              "code",
	"uq_note_internaute_film": "note",
}

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action tag is preserved in the wrapped cause for server-side logs.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			// The unique index is the authoritative guard for all duplicate
			// invariants; a race that slips past a service-level pre-check
			// still surfaces here as the same client-facing 400.
			return apperr.Duplicate(fieldForConstraint(pgErr.ConstraintName))

		case pgerrcode.ForeignKeyViolation:
			return apperr.ValidationError("Referenced resource does not exist")

		case pgerrcode.InvalidTextRepresentation:
			// Malformed UUID in a WHERE clause: the resource cannot exist.
			return ErrNotFound

		case pgerrcode.CheckViolation:
			return apperr.ValidationError("Value violates a storage constraint")
		}
	}

	// Unknown query errors become Internal Server Errors.
	return apperr.Internal(&actionError{action: action, cause: err})
}

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint violation.
//
// Stores use it to substitute their own domain-specific duplicate error for
// the generic mapping above.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// fieldForConstraint resolves the client-facing field name for a unique
// constraint, falling back to the last underscore segment of its name.
func fieldForConstraint(constraint string) string {
	if field, ok := constraintFields[constraint]; ok {
		return field
	}

	if idx := strings.LastIndex(constraint, "_"); idx >= 0 && idx < len(constraint)-1 {
		return constraint[idx+1:]
	}
	return "resource"
}

// actionError tags a storage failure with the operation that produced it.
type actionError struct {
	action string
	cause  error
}

func (e *actionError) Error() string { return e.action + ": " + e.cause.Error() }

func (e *actionError) Unwrap() error { return e.cause }
