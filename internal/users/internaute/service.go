// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

/*
Package internaute implements self-service account management for registered
users.

Reading accounts is open to any authenticated caller; mutating one is
restricted to its owner. The bcrypt hash lives on the entity but is excluded
from every JSON representation.
*/
package internaute

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/lmarchal/filmotheque/internal/platform/apperr"
	"github.com/lmarchal/filmotheque/internal/platform/sec"
	"github.com/lmarchal/filmotheque/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListInternautes(context context.Context, limit, offset int) ([]*Internaute, int, error) {
	return service.repo.ListInternautes(context, limit, offset)
}

func (service *Service) GetInternaute(context context.Context, id string) (*Internaute, error) {
	return service.repo.GetInternaute(context, id)
}

// UpdateInternaute applies a partial profile update. Only the account owner
// may update it; a new password is re-hashed before storage.
func (service *Service) UpdateInternaute(context context.Context, actorID, id string, input UpdateInternauteInput) (*Internaute, error) {
	if actorID != id {
		return nil, apperr.Forbidden("You can only update your own account")
	}

	user, err := service.repo.GetInternaute(context, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}

	if input.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*input.Email))
		validator.Required(FieldEmail, normalized).Email(FieldEmail, normalized)
		user.Email = normalized
	}
	if input.Nom != nil {
		validator.Required(FieldNom, *input.Nom).MaxLen(FieldNom, *input.Nom, 100)
		user.Nom = *input.Nom
	}
	if input.Prenom != nil {
		validator.Required(FieldPrenom, *input.Prenom).MaxLen(FieldPrenom, *input.Prenom, 100)
		user.Prenom = *input.Prenom
	}
	if input.AnneeNaissance != nil {
		validator.Range(FieldAnneeNaissance, *input.AnneeNaissance, BirthYearMin, time.Now().Year())
		user.AnneeNaissance = *input.AnneeNaissance
	}
	if input.MotDePasse != nil {
		validator.MinLen(FieldMotDePasse, *input.MotDePasse, 6)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.MotDePasse != nil {
		hashed, err := sec.HashPassword(*input.MotDePasse)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		user.MotDePasse = hashed
	}

	if err := service.repo.UpdateInternaute(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("internaute_updated", slog.String("internaute_id", id))
	return user, nil
}

// DeleteInternaute hard-deletes an account. Owner only.
func (service *Service) DeleteInternaute(context context.Context, actorID, id string) error {
	if actorID != id {
		return apperr.Forbidden("You can only delete your own account")
	}

	if err := service.repo.DeleteInternaute(context, id); err != nil {
		return err
	}

	service.logger.Warn("internaute_deleted", slog.String("internaute_id", id))
	return nil
}
