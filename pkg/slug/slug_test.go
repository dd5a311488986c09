// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lmarchal/filmotheque/pkg/slug"
)

/*
TestFrom verifies accent stripping, lowercasing, and hyphenation for stored
upload filenames.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Vertigo", "vertigo"},
		{"spaces", "La Grande Illusion", "la-grande-illusion"},
		{"accents", "Les Quatre Cents Coups", "les-quatre-cents-coups"},
		{"diacritics", "Amélie Poulain à Montmartre", "amelie-poulain-a-montmartre"},
		{"punctuation", "8½ : Huit et demi!", "8-huit-et-demi"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
