// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package artiste

import (
	"context"
	"log/slog"
	"time"

	"github.com/lmarchal/filmotheque/internal/core/film"
	"github.com/lmarchal/filmotheque/internal/platform/validate"
	"github.com/lmarchal/filmotheque/pkg/uuidv7"
)

// FilmographyProvider supplies an artiste's directing and acting credits.
// The film repository is the production implementation.
type FilmographyProvider interface {
	ListFilmsByRealisateur(context context.Context, artisteID string) ([]*film.Film, error)
	ListRolesByArtiste(context context.Context, artisteID string) ([]film.Role, error)
}

type Service struct {
	repo   Repository
	films  FilmographyProvider
	logger *slog.Logger
}

func NewService(repo Repository, films FilmographyProvider, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		films:  films,
		logger: logger,
	}
}

func (service *Service) ListArtistes(context context.Context, f Filter, limit, offset int) ([]*Artiste, int, error) {
	return service.repo.ListArtistes(context, f, limit, offset)
}

// GetArtiste returns an artiste together with their filmography.
func (service *Service) GetArtiste(context context.Context, id string) (*ArtisteDetail, error) {
	artiste, err := service.repo.GetArtiste(context, id)
	if err != nil {
		return nil, err
	}

	directed, err := service.films.ListFilmsByRealisateur(context, id)
	if err != nil {
		return nil, err
	}
	if directed == nil {
		directed = []*film.Film{}
	}

	roles, err := service.films.ListRolesByArtiste(context, id)
	if err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []film.Role{}
	}

	return &ArtisteDetail{
		Artiste: artiste,
		Filmographie: &Filmographie{
			Realisateur: directed,
			Roles:       roles,
		},
	}, nil
}

func (service *Service) CreateArtiste(context context.Context, input CreateArtisteInput) (*Artiste, error) {
	if err := validateArtisteFields(input.Nom, input.Prenom, input.AnneeNaissance); err != nil {
		return nil, err
	}

	artiste := &Artiste{
		ID:             uuidv7.New(),
		Nom:            input.Nom,
		Prenom:         input.Prenom,
		AnneeNaissance: input.AnneeNaissance,
	}

	if err := service.repo.CreateArtiste(context, artiste); err != nil {
		return nil, err
	}

	service.logger.Info("artiste_created", slog.String("artiste_id", artiste.ID))
	return artiste, nil
}

func (service *Service) UpdateArtiste(context context.Context, id string, input UpdateArtisteInput) (*Artiste, error) {
	artiste, err := service.repo.GetArtiste(context, id)
	if err != nil {
		return nil, err
	}

	if input.Nom != nil {
		artiste.Nom = *input.Nom
	}
	if input.Prenom != nil {
		artiste.Prenom = *input.Prenom
	}
	if input.AnneeNaissance != nil {
		artiste.AnneeNaissance = *input.AnneeNaissance
	}

	if err := validateArtisteFields(artiste.Nom, artiste.Prenom, artiste.AnneeNaissance); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateArtiste(context, artiste); err != nil {
		return nil, err
	}

	service.logger.Info("artiste_updated", slog.String("artiste_id", id))
	return artiste, nil
}

func (service *Service) DeleteArtiste(context context.Context, id string) error {
	if err := service.repo.DeleteArtiste(context, id); err != nil {
		return err
	}

	service.logger.Warn("artiste_deleted", slog.String("artiste_id", id))
	return nil
}

func validateArtisteFields(nom, prenom string, anneeNaissance int) error {
	validator := &validate.Validator{}
	validator.Required(FieldNom, nom).MaxLen(FieldNom, nom, 100)
	validator.Required(FieldPrenom, prenom).MaxLen(FieldPrenom, prenom, 100)
	validator.Range(FieldAnneeNaissance, anneeNaissance, BirthYearMin, time.Now().Year())
	return validator.Err()
}
