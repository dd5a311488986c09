// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

/*
Package artiste manages the people referential of the catalogue: directors
and cast members.

An artiste's detail view carries their filmography, split between the films
they directed and the cast credits they hold.
*/
package artiste

import (
	"time"

	"github.com/lmarchal/filmotheque/internal/core/film"
)

// Artiste represents a director or cast member.
type Artiste struct {
	ID             string    `json:"id"`
	Nom            string    `json:"nom"`
	Prenom         string    `json:"prenom"`
	AnneeNaissance int       `json:"anneeNaissance"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Filmographie splits an artiste's work between directing and acting.
type Filmographie struct {
	// Realisateur lists the films this artiste directed, year descending.
	Realisateur []*film.Film `json:"realisateur"`
	// Roles lists the cast credits with the film populated.
	Roles []film.Role `json:"roles"`
}

// ArtisteDetail is the detail-view payload.
type ArtisteDetail struct {
	Artiste      *Artiste      `json:"artiste"`
	Filmographie *Filmographie `json:"filmographie"`
}

// CreateArtisteInput carries the request payload for a new artiste.
type CreateArtisteInput struct {
	Nom            string `json:"nom"`
	Prenom         string `json:"prenom"`
	AnneeNaissance int    `json:"anneeNaissance"`
}

// UpdateArtisteInput carries a partial update. Nil fields are left untouched.
type UpdateArtisteInput struct {
	Nom            *string `json:"nom"`
	Prenom         *string `json:"prenom"`
	AnneeNaissance *int    `json:"anneeNaissance"`
}

// Filter holds the parameters for a filtered artiste list query.
type Filter struct {
	Query string // substring match against nom and prenom
}

const (
	FieldNom            = "nom"
	FieldPrenom         = "prenom"
	FieldAnneeNaissance = "anneeNaissance"
)

// BirthYearMin bounds anneeNaissance from below.
const BirthYearMin = 1900
