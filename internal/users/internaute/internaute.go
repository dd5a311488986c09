// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package internaute

import "time"

// Internaute represents a registered end-user of the platform.
type Internaute struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Nom   string `json:"nom"`
	Prenom string `json:"prenom"`

	// MotDePasse holds the bcrypt hash. It is never serialized.
	MotDePasse string `json:"-"`

	AnneeNaissance int       `json:"anneeNaissance"`
	Actif          bool      `json:"actif"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// UpdateInternauteInput carries a partial profile update. Nil fields are
// left untouched.
type UpdateInternauteInput struct {
	Email          *string `json:"email"`
	Nom            *string `json:"nom"`
	Prenom         *string `json:"prenom"`
	MotDePasse     *string `json:"motDePasse"`
	AnneeNaissance *int    `json:"anneeNaissance"`
}

const (
	FieldEmail          = "email"
	FieldNom            = "nom"
	FieldPrenom         = "prenom"
	FieldMotDePasse     = "motDePasse"
	FieldAnneeNaissance = "anneeNaissance"
)

const (
	// BirthYearMin bounds anneeNaissance from below.
	BirthYearMin = 1900
)
