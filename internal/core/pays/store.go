// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package pays

import "context"

type Repository interface {
	ListPays(context context.Context, limit, offset int) ([]*Pays, int, error)
	GetPays(context context.Context, code string) (*Pays, error)
	CreatePays(context context.Context, p *Pays) error
	UpdatePays(context context.Context, p *Pays) error
	DeletePays(context context.Context, code string) error
}
