// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package artiste

import "context"

type Repository interface {
	ListArtistes(context context.Context, f Filter, limit, offset int) ([]*Artiste, int, error)
	GetArtiste(context context.Context, id string) (*Artiste, error)
	CreateArtiste(context context.Context, a *Artiste) error
	UpdateArtiste(context context.Context, a *Artiste) error
	DeleteArtiste(context context.Context, id string) error
}
