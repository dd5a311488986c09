// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package pays

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/lmarchal/filmotheque/internal/core/film"
	"github.com/lmarchal/filmotheque/internal/platform/validate"
)

// codePattern is the ISO 3166-1 alpha-2 shape enforced after normalization.
var codePattern = regexp.MustCompile(`^[A-Z]{2}$`)

// FilmLister supplies a country's films for the detail view. The film
// repository is the production implementation.
type FilmLister interface {
	ListFilmsByPays(context context.Context, code string) ([]*film.Film, error)
}

// PaysDetail pairs a country with its films, sorted by release year
// descending, directors populated.
type PaysDetail struct {
	Pays  *Pays        `json:"pays"`
	Films []*film.Film `json:"films"`
}

type Service struct {
	repo   Repository
	films  FilmLister
	logger *slog.Logger
}

func NewService(repo Repository, films FilmLister, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		films:  films,
		logger: logger,
	}
}

func (service *Service) ListPays(context context.Context, limit, offset int) ([]*Pays, int, error) {
	return service.repo.ListPays(context, limit, offset)
}

// GetPays returns a country together with its films.
func (service *Service) GetPays(context context.Context, code string) (*PaysDetail, error) {
	normalized := NormalizeCode(code)

	country, err := service.repo.GetPays(context, normalized)
	if err != nil {
		return nil, err
	}

	films, err := service.films.ListFilmsByPays(context, normalized)
	if err != nil {
		return nil, err
	}
	if films == nil {
		films = []*film.Film{}
	}

	return &PaysDetail{Pays: country, Films: films}, nil
}

func (service *Service) CreatePays(context context.Context, input CreatePaysInput) (*Pays, error) {
	code := NormalizeCode(input.Code)

	validator := &validate.Validator{}
	validator.Matches(FieldCode, code, codePattern, "Must be a two-letter country code")
	validator.Required(FieldNom, input.Nom).MaxLen(FieldNom, input.Nom, 100)
	validator.Required(FieldLangue, input.Langue).MaxLen(FieldLangue, input.Langue, 100)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	country := &Pays{
		Code:   code,
		Nom:    input.Nom,
		Langue: input.Langue,
	}

	if err := service.repo.CreatePays(context, country); err != nil {
		return nil, err
	}

	service.logger.Info("pays_created", slog.String("code", country.Code))
	return country, nil
}

func (service *Service) UpdatePays(context context.Context, code string, input UpdatePaysInput) (*Pays, error) {
	country, err := service.repo.GetPays(context, NormalizeCode(code))
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if input.Nom != nil {
		validator.Required(FieldNom, *input.Nom).MaxLen(FieldNom, *input.Nom, 100)
		country.Nom = *input.Nom
	}
	if input.Langue != nil {
		validator.Required(FieldLangue, *input.Langue).MaxLen(FieldLangue, *input.Langue, 100)
		country.Langue = *input.Langue
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdatePays(context, country); err != nil {
		return nil, err
	}

	service.logger.Info("pays_updated", slog.String("code", country.Code))
	return country, nil
}

func (service *Service) DeletePays(context context.Context, code string) error {
	normalized := NormalizeCode(code)

	if err := service.repo.DeletePays(context, normalized); err != nil {
		return err
	}

	service.logger.Warn("pays_deleted", slog.String("code", normalized))
	return nil
}

// NormalizeCode upper-cases and trims a country code so every lookup and
// write addresses the same record.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
