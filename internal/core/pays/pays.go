// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

/*
Package pays manages the production-country referential of the catalogue.

Countries are keyed by their two-letter uppercase code; the code is
normalized before every read and write so "fr", "Fr", and "FR" address the
same record.
*/
package pays

import "time"

// Pays represents a production country.
type Pays struct {
	Code      string    `json:"code"`
	Nom       string    `json:"nom"`
	Langue    string    `json:"langue"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreatePaysInput carries the request payload for a new country.
type CreatePaysInput struct {
	Code   string `json:"code"`
	Nom    string `json:"nom"`
	Langue string `json:"langue"`
}

// UpdatePaysInput carries a partial country update. Nil fields are left
// untouched; the code itself is immutable.
type UpdatePaysInput struct {
	Nom    *string `json:"nom"`
	Langue *string `json:"langue"`
}

const (
	FieldCode   = "code"
	FieldNom    = "nom"
	FieldLangue = "langue"
)
