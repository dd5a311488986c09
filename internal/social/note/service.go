// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package note

import (
	"context"
	"log/slog"
	"math"

	"github.com/lmarchal/filmotheque/internal/platform/apperr"
	"github.com/lmarchal/filmotheque/internal/platform/validate"
	"github.com/lmarchal/filmotheque/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	cache  AggregateCache
	logger *slog.Logger
}

func NewService(repo Repository, cache AggregateCache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (service *Service) ListNotes(context context.Context, f Filter, limit, offset int) ([]*Note, int, error) {
	return service.repo.ListNotes(context, f, limit, offset)
}

// GetFilmNotes returns a film's ratings with their mean and count.
//
// The aggregate is served from the cache when fresh; cache failures fall
// back to the database silently.
func (service *Service) GetFilmNotes(context context.Context, filmID string) (*FilmNotes, error) {
	if cached, err := service.cache.GetFilmNotes(context, filmID); err == nil {
		return cached, nil
	}

	notes, err := service.repo.ListNotesByFilm(context, filmID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []*Note{}
	}

	payload := &FilmNotes{
		Notes:       notes,
		MoyenneNote: meanNote(notes),
		NombreNotes: len(notes),
	}

	if err := service.cache.SetFilmNotes(context, filmID, payload); err != nil {
		service.logger.Warn("film_notes_cache_set_failed",
			slog.String("film_id", filmID),
			slog.String("error", err.Error()),
		)
	}

	return payload, nil
}

// GetInternauteNotes returns every rating left by an internaute.
func (service *Service) GetInternauteNotes(context context.Context, internauteID string) ([]*Note, error) {
	notes, err := service.repo.ListNotesByInternaute(context, internauteID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []*Note{}
	}
	return notes, nil
}

// CreateNote records a new rating for the acting internaute.
//
// The existence pre-check yields the friendly duplicate message; a race
// slipping past it is still caught by the unique index and surfaces as the
// same error.
func (service *Service) CreateNote(context context.Context, actorID string, input CreateNoteInput) (*Note, error) {
	if err := validateNoteFields(input.Film, input.Note, input.Commentaire); err != nil {
		return nil, err
	}

	if _, err := service.repo.FindByInternauteAndFilm(context, actorID, input.Film); err == nil {
		return nil, apperr.Duplicate(FieldNote)
	}

	note := &Note{
		ID:           uuidv7.New(),
		InternauteID: actorID,
		FilmID:       input.Film,
		Note:         input.Note,
		Commentaire:  input.Commentaire,
	}

	if err := service.repo.CreateNote(context, note); err != nil {
		return nil, err
	}

	service.invalidate(context, note.FilmID)
	service.logger.Info("note_created",
		slog.String("note_id", note.ID),
		slog.String("film_id", note.FilmID),
	)

	// Re-read so the response carries the populated author and film.
	return service.repo.GetNote(context, note.ID)
}

// UpdateNote modifies a rating. Owner only.
func (service *Service) UpdateNote(context context.Context, actorID, id string, input UpdateNoteInput) (*Note, error) {
	note, err := service.repo.GetNote(context, id)
	if err != nil {
		return nil, err
	}

	if note.InternauteID != actorID {
		return nil, apperr.Forbidden("You can only update your own ratings")
	}

	if input.Note != nil {
		note.Note = *input.Note
	}
	if input.Commentaire != nil {
		note.Commentaire = input.Commentaire
	}

	if err := validateNoteFields(note.FilmID, note.Note, note.Commentaire); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateNote(context, note); err != nil {
		return nil, err
	}

	service.invalidate(context, note.FilmID)
	service.logger.Info("note_updated", slog.String("note_id", id))

	return note, nil
}

// DeleteNote removes a rating. Owner only.
func (service *Service) DeleteNote(context context.Context, actorID, id string) error {
	note, err := service.repo.GetNote(context, id)
	if err != nil {
		return err
	}

	if note.InternauteID != actorID {
		return apperr.Forbidden("You can only delete your own ratings")
	}

	if err := service.repo.DeleteNote(context, id); err != nil {
		return err
	}

	service.invalidate(context, note.FilmID)
	service.logger.Warn("note_deleted", slog.String("note_id", id))

	return nil
}

// invalidate drops a film's cached aggregate, tolerating cache failures.
func (service *Service) invalidate(context context.Context, filmID string) {
	if err := service.cache.InvalidateFilm(context, filmID); err != nil {
		service.logger.Warn("film_notes_cache_invalidate_failed",
			slog.String("film_id", filmID),
			slog.String("error", err.Error()),
		)
	}
}

// meanNote computes the mean rating rounded to one decimal, nil for an
// empty set.
func meanNote(notes []*Note) *float64 {
	if len(notes) == 0 {
		return nil
	}

	var sum float64
	for _, n := range notes {
		sum += n.Note
	}

	mean := math.Round(sum/float64(len(notes))*10) / 10
	return &mean
}

func validateNoteFields(filmID string, score float64, commentaire *string) error {
	validator := &validate.Validator{}
	validator.Required(FieldFilm, filmID)
	validator.Custom(FieldNote, score < NoteMin || score > NoteMax, "Must be between 0 and 10")
	if commentaire != nil {
		validator.MaxLen(FieldCommentaire, *commentaire, CommentaireMaxLen)
	}
	return validator.Err()
}
