// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package note

import "context"

type Repository interface {
	// ListNotes returns ratings with both the author and the film populated.
	ListNotes(context context.Context, f Filter, limit, offset int) ([]*Note, int, error)

	GetNote(context context.Context, id string) (*Note, error)

	// ListNotesByFilm returns a film's ratings with the author populated,
	// newest first.
	ListNotesByFilm(context context.Context, filmID string) ([]*Note, error)

	// ListNotesByInternaute returns an internaute's ratings with the film
	// populated, newest first.
	ListNotesByInternaute(context context.Context, internauteID string) ([]*Note, error)

	// FindByInternauteAndFilm resolves the unique (internaute, film) pair.
	FindByInternauteAndFilm(context context.Context, internauteID, filmID string) (*Note, error)

	CreateNote(context context.Context, n *Note) error
	UpdateNote(context context.Context, n *Note) error
	DeleteNote(context context.Context, id string) error
}

// AggregateCache holds the per-film rating aggregate between writes.
// Failures are tolerated: the database remains the source of truth.
type AggregateCache interface {
	GetFilmNotes(context context.Context, filmID string) (*FilmNotes, error)
	SetFilmNotes(context context.Context, filmID string, payload *FilmNotes) error
	InvalidateFilm(context context.Context, filmID string) error
}
