// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package film

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmarchal/filmotheque/internal/platform/validate"
	"github.com/lmarchal/filmotheque/pkg/uuidv7"
)

// DocumentStore persists uploaded resume documents and returns their stored path.
type DocumentStore interface {
	Save(originalName, label string, content io.Reader) (string, error)
}

type Service struct {
	repo      Repository
	documents DocumentStore
	logger    *slog.Logger
}

func NewService(repo Repository, documents DocumentStore, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		documents: documents,
		logger:    logger,
	}
}

func (service *Service) ListFilms(context context.Context, f Filter, limit, offset int) ([]*Film, int, error) {
	return service.repo.ListFilms(context, f, limit, offset)
}

func (service *Service) GetFilm(context context.Context, id string) (*Film, error) {
	return service.repo.GetFilm(context, id)
}

func (service *Service) CreateFilm(context context.Context, input CreateFilmInput) (*Film, error) {
	paysCode := strings.ToUpper(strings.TrimSpace(input.Pays))

	if err := validateFilmFields(input.Titre, input.Annee, input.Genre, input.Resume, paysCode); err != nil {
		return nil, err
	}

	film := &Film{
		ID:            uuidv7.New(),
		Titre:         input.Titre,
		Annee:         input.Annee,
		Genre:         Genre(input.Genre),
		Resume:        input.Resume,
		RealisateurID: input.Realisateur,
		PaysCode:      paysCode,
	}

	if err := service.repo.CreateFilm(context, film); err != nil {
		return nil, err
	}

	service.logger.Info("film_created", slog.String("film_id", film.ID), slog.String("titre", film.Titre))

	// Re-read so the response carries the populated director and country.
	return service.repo.GetFilm(context, film.ID)
}

func (service *Service) UpdateFilm(context context.Context, id string, input UpdateFilmInput) (*Film, error) {
	film, err := service.repo.GetFilm(context, id)
	if err != nil {
		return nil, err
	}

	if input.Titre != nil {
		film.Titre = *input.Titre
	}
	if input.Annee != nil {
		film.Annee = *input.Annee
	}
	if input.Genre != nil {
		film.Genre = Genre(*input.Genre)
	}
	if input.Resume != nil {
		film.Resume = *input.Resume
	}
	if input.Realisateur != nil {
		// An explicit empty string detaches the director.
		if *input.Realisateur == "" {
			film.RealisateurID = nil
		} else {
			film.RealisateurID = input.Realisateur
		}
	}
	if input.Pays != nil {
		film.PaysCode = strings.ToUpper(strings.TrimSpace(*input.Pays))
	}

	if err := validateFilmFields(film.Titre, film.Annee, string(film.Genre), film.Resume, film.PaysCode); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateFilm(context, film); err != nil {
		return nil, err
	}

	service.logger.Info("film_updated", slog.String("film_id", id))

	return service.repo.GetFilm(context, id)
}

func (service *Service) DeleteFilm(context context.Context, id string) error {
	if err := service.repo.DeleteFilm(context, id); err != nil {
		return err
	}

	service.logger.Warn("film_deleted", slog.String("film_id", id))
	return nil
}

// AttachResumeDocument stores an uploaded resume document and records its
// path on the film.
func (service *Service) AttachResumeDocument(context context.Context, id, originalName string, content io.Reader) (*Film, error) {
	film, err := service.repo.GetFilm(context, id)
	if err != nil {
		return nil, err
	}

	path, err := service.documents.Save(originalName, film.Titre, content)
	if err != nil {
		return nil, err
	}

	if err := service.repo.SetDocumentChemin(context, id, path); err != nil {
		return nil, err
	}

	service.logger.Info("film_resume_uploaded",
		slog.String("film_id", id),
		slog.String("document_chemin", path),
	)

	return service.repo.GetFilm(context, id)
}

// validateFilmFields applies the shared create/update validation rules.
func validateFilmFields(titre string, annee int, genre, resume, paysCode string) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitre, titre).MaxLen(FieldTitre, titre, TitreMaxLen)
	validator.Range(FieldAnnee, annee, ReleaseYearMin, time.Now().Year()+ReleaseYearHeadroom)
	validator.OneOf(FieldGenre, genre, GenreNames()...)
	validator.Required(FieldResume, resume).MaxLen(FieldResume, resume, ResumeMaxLen)
	validator.Matches(FieldPays, paysCode, countryCodePattern, "Must be a two-letter country code")
	return validator.Err()
}
