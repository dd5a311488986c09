// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmarchal/filmotheque/internal/platform/apperr"
	"github.com/lmarchal/filmotheque/internal/platform/dberr"
)

/*
TestWrap_NoRows maps a missing row to the shared not-found error.
*/
func TestWrap_NoRows(t *testing.T) {
	err := dberr.Wrap(pgx.ErrNoRows, "get_film")

	assert.ErrorIs(t, err, dberr.ErrNotFound)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
}

/*
TestWrap_UniqueViolation maps SQLSTATE 23505 to a 400 duplicate error with
the client-facing field resolved from the constraint name.
*/
func TestWrap_UniqueViolation(t *testing.T) {
	tests := []struct {
		name        string
		constraint  string
		wantMessage string
	}{
		{"email_constraint", "uq_internaute_email", "email already exists"},
		{"pays_pk", "pays_pkey", "code already exists"},
		{"note_pair", "uq_note_internaute_film", "note already exists"},
		{"unknown_constraint", "uq_widget_color", "color already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: "23505", ConstraintName: tt.constraint}
			err := dberr.Wrap(pgErr, "create")

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "DUPLICATE", ae.Code)
			assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
			assert.Equal(t, tt.wantMessage, ae.Message)
		})
	}
}

/*
TestWrap_ForeignKeyViolation maps SQLSTATE 23503 to a validation error.
*/
func TestWrap_ForeignKeyViolation(t *testing.T) {
	err := dberr.Wrap(&pgconn.PgError{Code: "23503"}, "create_film")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
}

/*
TestWrap_InvalidTextRepresentation maps a malformed UUID to not-found.
*/
func TestWrap_InvalidTextRepresentation(t *testing.T) {
	err := dberr.Wrap(&pgconn.PgError{Code: "22P02"}, "get_film")

	assert.ErrorIs(t, err, dberr.ErrNotFound)
}

/*
TestWrap_Unknown hides unclassified database errors behind a 500.
*/
func TestWrap_Unknown(t *testing.T) {
	err := dberr.Wrap(errors.New("connection reset"), "list_films")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
	// The action tag must survive in the hidden cause for server logs.
	assert.Contains(t, ae.Cause.Error(), "list_films")
	// The client never sees the raw failure.
	assert.NotContains(t, ae.Message, "connection reset")
}

/*
TestWrap_Nil passes nil through untouched.
*/
func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, dberr.Wrap(nil, "noop"))
}

/*
TestIsUniqueViolation detects 23505 anywhere in the chain.
*/
func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, dberr.IsUniqueViolation(errors.New("whatever")))
}
