// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package internaute

import "context"

type Repository interface {
	ListInternautes(context context.Context, limit, offset int) ([]*Internaute, int, error)
	GetInternaute(context context.Context, id string) (*Internaute, error)
	FindByEmail(context context.Context, email string) (*Internaute, error)
	CreateInternaute(context context.Context, i *Internaute) error
	UpdateInternaute(context context.Context, i *Internaute) error
	DeleteInternaute(context context.Context, id string) error
}
