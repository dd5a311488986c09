// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

/*
Package film defines the central aggregate of the Filmothèque catalogue.

A film carries its metadata, an optional resume document stored on disk, a
reference to its director (realisateur) and production country (pays), and
the cast credits (roles) attached to it.

Core Responsibility:

  - Catalogue: Defines the genre taxonomy and year bounds for releases.
  - Discovery: Filtered, paginated listing sorted by release year.
  - Documents: Associates an uploaded resume file with the film record.
*/
package film

import (
	"regexp"
	"time"
)

// # Domain Enums

// Genre classifies a film within the catalogue's fixed taxonomy.
type Genre string

const (
	GenreAction         Genre = "Action"
	GenreAventure       Genre = "Aventure"
	GenreComedie        Genre = "Comédie"
	GenreDrame          Genre = "Drame"
	GenreFantastique    Genre = "Fantastique"
	GenreHorreur        Genre = "Horreur"
	GenreRomance        Genre = "Romance"
	GenreScienceFiction Genre = "Science-fiction"
	GenreThriller       Genre = "Thriller"
	GenreDocumentaire   Genre = "Documentaire"
	GenreAnimation      Genre = "Animation"
	GenreAutre          Genre = "Autre"
)

// Genres lists every valid [Genre] value, in display order.
var Genres = []Genre{
	GenreAction, GenreAventure, GenreComedie, GenreDrame, GenreFantastique,
	GenreHorreur, GenreRomance, GenreScienceFiction, GenreThriller,
	GenreDocumentaire, GenreAnimation, GenreAutre,
}

// IsValid reports whether g is a recognised [Genre] value.
func (g Genre) IsValid() bool {
	for _, valid := range Genres {
		if g == valid {
			return true
		}
	}
	return false
}

// GenreNames returns the genre taxonomy as plain strings for validation.
func GenreNames() []string {
	names := make([]string, len(Genres))
	for i, g := range Genres {
		names[i] = string(g)
	}
	return names
}

// # Entities

// Film is the central aggregate of the Filmothèque domain.
type Film struct {
	ID     string `json:"id"`
	Titre  string `json:"titre"`
	Annee  int    `json:"annee"`
	Genre  Genre  `json:"genre"`
	Resume string `json:"resume"`

	// DocumentChemin is the stored path of the uploaded resume document.
	DocumentChemin *string `json:"document_chemin"`

	// RealisateurID and PaysCode are the raw references; the denormalized
	// Realisateur and Pays views are populated by explicit joins.
	RealisateurID *string `json:"-"`
	PaysCode      string  `json:"-"`

	Realisateur *Artiste `json:"realisateur,omitempty"`
	Pays        *Pays    `json:"pays,omitempty"`
	Roles       []Role   `json:"roles,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Artiste is the denormalized view of a director or cast member.
type Artiste struct {
	ID             string `json:"id"`
	Nom            string `json:"nom"`
	Prenom         string `json:"prenom"`
	AnneeNaissance int    `json:"anneeNaissance"`
}

// Pays is the denormalized view of a film's production country.
type Pays struct {
	Code   string `json:"code"`
	Nom    string `json:"nom"`
	Langue string `json:"langue"`
}

// Role is a cast credit. Artiste is populated when the role is listed under
// a film; Film is populated when it is listed under an artiste.
type Role struct {
	ID      string   `json:"id"`
	Libelle string   `json:"libelle"`
	Artiste *Artiste `json:"artiste,omitempty"`
	Film    *Film    `json:"film,omitempty"`
}

// # Inputs

// CreateFilmInput carries the request payload for a new film.
type CreateFilmInput struct {
	Titre       string  `json:"titre"`
	Annee       int     `json:"annee"`
	Genre       string  `json:"genre"`
	Resume      string  `json:"resume"`
	Realisateur *string `json:"realisateur"`
	Pays        string  `json:"pays"`
}

// UpdateFilmInput carries a partial film update. Nil fields are left untouched.
type UpdateFilmInput struct {
	Titre       *string `json:"titre"`
	Annee       *int    `json:"annee"`
	Genre       *string `json:"genre"`
	Resume      *string `json:"resume"`
	Realisateur *string `json:"realisateur"`
	Pays        *string `json:"pays"`
}

// # Search & Filtering

// Filter holds the parameters for a filtered film list query.
type Filter struct {
	Titre       string // case-insensitive substring match
	Genre       string
	Annee       *int
	Realisateur string // director's artiste ID
}

// # Field Identifiers

const (
	FieldTitre       = "titre"
	FieldAnnee       = "annee"
	FieldGenre       = "genre"
	FieldResume      = "resume"
	FieldRealisateur = "realisateur"
	FieldPays        = "pays"
)

// Year bounds for a film release. The upper bound allows announced
// productions a few years out.
const (
	ReleaseYearMin      = 1895
	ReleaseYearHeadroom = 5
	ResumeMaxLen        = 1000
	TitreMaxLen         = 200
)

// countryCodePattern is the ISO 3166-1 alpha-2 shape of a pays reference.
var countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)
