// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package film

import "context"

type Repository interface {
	// ListFilms returns films with realisateur and pays populated,
	// sorted by release year descending.
	ListFilms(context context.Context, f Filter, limit, offset int) ([]*Film, int, error)

	// GetFilm returns a film with realisateur, pays, and cast roles populated.
	GetFilm(context context.Context, id string) (*Film, error)

	CreateFilm(context context.Context, film *Film) error
	UpdateFilm(context context.Context, film *Film) error
	DeleteFilm(context context.Context, id string) error

	// SetDocumentChemin records the stored path of an uploaded resume document.
	SetDocumentChemin(context context.Context, id, path string) error

	// ListFilmsByPays returns a country's films (realisateur populated),
	// sorted by release year descending.
	ListFilmsByPays(context context.Context, code string) ([]*Film, error)

	// ListFilmsByRealisateur returns the films directed by an artiste.
	ListFilmsByRealisateur(context context.Context, artisteID string) ([]*Film, error)

	// ListRolesByArtiste returns an artiste's cast credits with the film populated.
	ListRolesByArtiste(context context.Context, artisteID string) ([]Role, error)
}
