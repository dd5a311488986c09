// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package validate_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmarchal/filmotheque/internal/platform/apperr"
	"github.com/lmarchal/filmotheque/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "titre", "Le Samouraï", false},
		{"empty_string", "titre", "", true},
		{"whitespace_only", "titre", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Range checks inclusive numeric bounds.
*/
func TestValidator_Range(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		min     int
		max     int
		isValid bool
	}{
		{"inside", 1950, 1900, 2026, true},
		{"lower_bound", 1900, 1900, 2026, true},
		{"upper_bound", 2026, 1900, 2026, true},
		{"below", 1899, 1900, 2026, false},
		{"above", 2027, 1900, 2026, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Range("annee", tt.value, tt.min, tt.max)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Matches checks the regexp rule used for country codes.
*/
func TestValidator_Matches(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z]{2}$`)

	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"uppercase_pair", "FR", true},
		{"lowercase", "fr", false},
		{"too_long", "FRA", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Matches("code", tt.value, pattern, "Must be a two-letter country code")

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_OneOf checks membership in the allowed set.
*/
func TestValidator_OneOf(t *testing.T) {
	genres := []string{"Action", "Drame", "Comédie"}

	v := &validate.Validator{}
	v.OneOf("genre", "Drame", genres...)
	assert.False(t, v.HasErrors())

	v = &validate.Validator{}
	v.OneOf("genre", "Western", genres...)
	assert.True(t, v.HasErrors())
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("nom", "Marchal").
		MinLen("motDePasse", "secret", 6).
		MaxLen("nom", "Marchal", 100).
		Email("email", "l.marchal@filmotheque.app").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_CollectsAllFailures verifies that every failed rule is reported.
*/
func TestValidator_CollectsAllFailures(t *testing.T) {
	v := &validate.Validator{}
	err := v.
		Required("titre", "").
		Range("annee", 1200, 1895, 2031).
		OneOf("genre", "Western", "Action", "Drame").
		Err()

	require.NotNil(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 3)
}
