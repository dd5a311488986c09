// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

/*
Package note implements film ratings left by internautes.

An internaute may rate a film exactly once; the (internaute, film) unique
index is the authoritative guard and the service-level pre-check only exists
for a friendlier error message. Only the rating's owner may change or remove
it.

The per-film aggregate (mean and count) is cached in Redis with a short TTL
and invalidated on every write touching that film.
*/
package note

import "time"

// Note represents one internaute's rating of one film.
type Note struct {
	ID string `json:"id"`

	// InternauteID and FilmID are the raw references; the denormalized
	// views below are populated by explicit joins.
	InternauteID string `json:"-"`
	FilmID       string `json:"-"`

	Note        float64 `json:"note"`
	Commentaire *string `json:"commentaire"`

	Internaute *Internaute `json:"internaute,omitempty"`
	Film       *Film       `json:"film,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Internaute is the denormalized view of a rating's author.
type Internaute struct {
	ID     string `json:"id"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
}

// Film is the denormalized view of a rated film.
type Film struct {
	ID    string `json:"id"`
	Titre string `json:"titre"`
	Annee int    `json:"annee"`
}

// FilmNotes aggregates a film's ratings.
//
// MoyenneNote is rounded to one decimal and nil when the film has no
// ratings; it is never NaN.
type FilmNotes struct {
	Notes       []*Note  `json:"notes"`
	MoyenneNote *float64 `json:"moyenneNote"`
	NombreNotes int      `json:"nombreNotes"`
}

// CreateNoteInput carries the request payload for a new rating. The author
// comes from the authenticated context, never from the body.
type CreateNoteInput struct {
	Film        string  `json:"film"`
	Note        float64 `json:"note"`
	Commentaire *string `json:"commentaire"`
}

// UpdateNoteInput carries a partial rating update. Nil fields are left untouched.
type UpdateNoteInput struct {
	Note        *float64 `json:"note"`
	Commentaire *string  `json:"commentaire"`
}

// Filter holds the parameters for a filtered rating list query.
type Filter struct {
	FilmID       string
	InternauteID string
}

const (
	FieldFilm        = "film"
	FieldNote        = "note"
	FieldCommentaire = "commentaire"
)

// Rating bounds and limits.
const (
	NoteMin           = 0
	NoteMax           = 10
	CommentaireMaxLen = 500
)
