// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package note

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmarchal/filmotheque/internal/platform/apperr"
	"github.com/lmarchal/filmotheque/internal/platform/dberr"
	"github.com/lmarchal/filmotheque/pkg/pointer"
)

type memoryRepository struct {
	notes map[string]*Note
}

func newMemoryRepository(seed ...*Note) *memoryRepository {
	repo := &memoryRepository{notes: map[string]*Note{}}
	for _, n := range seed {
		repo.notes[n.ID] = n
	}
	return repo
}

func (r *memoryRepository) ListNotes(_ context.Context, f Filter, limit, offset int) ([]*Note, int, error) {
	var all []*Note
	for _, n := range r.notes {
		all = append(all, n)
	}
	return all, len(all), nil
}

func (r *memoryRepository) GetNote(_ context.Context, id string) (*Note, error) {
	if n, ok := r.notes[id]; ok {
		copied := *n
		return &copied, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryRepository) ListNotesByFilm(_ context.Context, filmID string) ([]*Note, error) {
	var matched []*Note
	for _, n := range r.notes {
		if n.FilmID == filmID {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

func (r *memoryRepository) ListNotesByInternaute(_ context.Context, internauteID string) ([]*Note, error) {
	var matched []*Note
	for _, n := range r.notes {
		if n.InternauteID == internauteID {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

func (r *memoryRepository) FindByInternauteAndFilm(_ context.Context, internauteID, filmID string) (*Note, error) {
	for _, n := range r.notes {
		if n.InternauteID == internauteID && n.FilmID == filmID {
			return n, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryRepository) CreateNote(_ context.Context, n *Note) error {
	n.CreatedAt = time.Now()
	n.UpdatedAt = n.CreatedAt
	r.notes[n.ID] = n
	return nil
}

func (r *memoryRepository) UpdateNote(_ context.Context, n *Note) error {
	if _, ok := r.notes[n.ID]; !ok {
		return dberr.ErrNotFound
	}
	n.UpdatedAt = time.Now()
	r.notes[n.ID] = n
	return nil
}

func (r *memoryRepository) DeleteNote(_ context.Context, id string) error {
	if _, ok := r.notes[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.notes, id)
	return nil
}

// memoryCache is an in-memory AggregateCache recording invalidations.
type memoryCache struct {
	entries       map[string]*FilmNotes
	invalidations []string
	failing       bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]*FilmNotes{}}
}

func (c *memoryCache) GetFilmNotes(_ context.Context, filmID string) (*FilmNotes, error) {
	if c.failing {
		return nil, errors.New("cache unavailable")
	}
	if payload, ok := c.entries[filmID]; ok {
		return payload, nil
	}
	return nil, ErrCacheMiss
}

func (c *memoryCache) SetFilmNotes(_ context.Context, filmID string, payload *FilmNotes) error {
	if c.failing {
		return errors.New("cache unavailable")
	}
	c.entries[filmID] = payload
	return nil
}

func (c *memoryCache) InvalidateFilm(_ context.Context, filmID string) error {
	c.invalidations = append(c.invalidations, filmID)
	if c.failing {
		return errors.New("cache unavailable")
	}
	delete(c.entries, filmID)
	return nil
}

func newNoteService(repo Repository, cache AggregateCache) *Service {
	return NewService(repo, cache, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMeanNote(t *testing.T) {
	tests := []struct {
		name  string
		notes []float64
		want  *float64
	}{
		{"empty_set", nil, nil},
		{"single", []float64{7}, pointer.To(7.0)},
		{"exact_half", []float64{5, 6}, pointer.To(5.5)},
		{"rounded_up", []float64{7, 8, 8}, pointer.To(7.7)},
		{"one_decimal", []float64{1, 2, 2}, pointer.To(1.7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var notes []*Note
			for _, score := range tt.notes {
				notes = append(notes, &Note{Note: score})
			}

			got := meanNote(notes)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestCreateNote(t *testing.T) {
	repo := newMemoryRepository()
	cache := newMemoryCache()
	service := newNoteService(repo, cache)

	created, err := service.CreateNote(context.Background(), "user-1", CreateNoteInput{
		Film:        "film-1",
		Note:        8.5,
		Commentaire: pointer.To("Un chef-d'œuvre."),
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", created.InternauteID)
	assert.Equal(t, "film-1", created.FilmID)
	assert.Equal(t, 8.5, created.Note)

	// A write always drops the film's cached aggregate.
	assert.Equal(t, []string{"film-1"}, cache.invalidations)
}

func TestCreateNote_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateNoteInput
	}{
		{"missing_film", CreateNoteInput{Note: 5}},
		{"score_below_zero", CreateNoteInput{Film: "film-1", Note: -0.5}},
		{"score_above_ten", CreateNoteInput{Film: "film-1", Note: 10.5}},
		{"commentaire_too_long", CreateNoteInput{Film: "film-1", Note: 5, Commentaire: pointer.To(strings.Repeat("x", CommentaireMaxLen+1))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newNoteService(newMemoryRepository(), newMemoryCache())

			_, err := service.CreateNote(context.Background(), "user-1", tt.input)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

// One rating per internaute per film.
func TestCreateNote_Duplicate(t *testing.T) {
	repo := newMemoryRepository(&Note{ID: "n-1", InternauteID: "user-1", FilmID: "film-1", Note: 7})
	service := newNoteService(repo, newMemoryCache())

	_, err := service.CreateNote(context.Background(), "user-1", CreateNoteInput{Film: "film-1", Note: 9})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 400, ae.HTTPStatus)
	assert.Equal(t, "note already exists", ae.Message)
}

func TestGetFilmNotes_Aggregate(t *testing.T) {
	repo := newMemoryRepository(
		&Note{ID: "n-1", InternauteID: "user-1", FilmID: "film-1", Note: 7},
		&Note{ID: "n-2", InternauteID: "user-2", FilmID: "film-1", Note: 8},
		&Note{ID: "n-3", InternauteID: "user-1", FilmID: "film-2", Note: 2},
	)
	cache := newMemoryCache()
	service := newNoteService(repo, cache)

	payload, err := service.GetFilmNotes(context.Background(), "film-1")
	require.NoError(t, err)
	assert.Equal(t, 2, payload.NombreNotes)
	require.NotNil(t, payload.MoyenneNote)
	assert.InDelta(t, 7.5, *payload.MoyenneNote, 1e-9)

	// The aggregate is now cached for the next read.
	assert.Contains(t, cache.entries, "film-1")
}

func TestGetFilmNotes_ServedFromCache(t *testing.T) {
	cache := newMemoryCache()
	cache.entries["film-1"] = &FilmNotes{
		Notes:       []*Note{},
		MoyenneNote: pointer.To(9.9),
		NombreNotes: 42,
	}
	// An empty repository proves the cached payload is what gets served.
	service := newNoteService(newMemoryRepository(), cache)

	payload, err := service.GetFilmNotes(context.Background(), "film-1")
	require.NoError(t, err)
	assert.Equal(t, 42, payload.NombreNotes)
}

func TestGetFilmNotes_NoRatings(t *testing.T) {
	service := newNoteService(newMemoryRepository(), newMemoryCache())

	payload, err := service.GetFilmNotes(context.Background(), "film-ghost")
	require.NoError(t, err)
	assert.NotNil(t, payload.Notes)
	assert.Empty(t, payload.Notes)
	assert.Nil(t, payload.MoyenneNote)
	assert.Zero(t, payload.NombreNotes)
}

// A broken cache degrades to database reads instead of failing the request.
func TestGetFilmNotes_CacheFailureTolerated(t *testing.T) {
	repo := newMemoryRepository(&Note{ID: "n-1", InternauteID: "user-1", FilmID: "film-1", Note: 6})
	cache := newMemoryCache()
	cache.failing = true
	service := newNoteService(repo, cache)

	payload, err := service.GetFilmNotes(context.Background(), "film-1")
	require.NoError(t, err)
	assert.Equal(t, 1, payload.NombreNotes)
}

func TestUpdateNote_OwnerOnly(t *testing.T) {
	repo := newMemoryRepository(&Note{ID: "n-1", InternauteID: "user-1", FilmID: "film-1", Note: 7})
	cache := newMemoryCache()
	service := newNoteService(repo, cache)

	_, err := service.UpdateNote(context.Background(), "user-2", "n-1", UpdateNoteInput{Note: pointer.To(1.0)})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 403, ae.HTTPStatus)
	assert.Equal(t, "You can only update your own ratings", ae.Message)

	updated, err := service.UpdateNote(context.Background(), "user-1", "n-1", UpdateNoteInput{Note: pointer.To(9.0)})
	require.NoError(t, err)
	assert.Equal(t, 9.0, updated.Note)
	assert.Equal(t, []string{"film-1"}, cache.invalidations)
}

func TestDeleteNote_OwnerOnly(t *testing.T) {
	repo := newMemoryRepository(&Note{ID: "n-1", InternauteID: "user-1", FilmID: "film-1", Note: 7})
	cache := newMemoryCache()
	service := newNoteService(repo, cache)

	err := service.DeleteNote(context.Background(), "user-2", "n-1")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 403, ae.HTTPStatus)
	assert.Equal(t, "You can only delete your own ratings", ae.Message)

	require.NoError(t, service.DeleteNote(context.Background(), "user-1", "n-1"))
	_, err = repo.GetNote(context.Background(), "n-1")
	assert.ErrorIs(t, err, dberr.ErrNotFound)
	assert.Equal(t, []string{"film-1"}, cache.invalidations)
}
