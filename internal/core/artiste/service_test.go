// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package artiste

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmarchal/filmotheque/internal/core/film"
	"github.com/lmarchal/filmotheque/internal/platform/apperr"
	"github.com/lmarchal/filmotheque/internal/platform/dberr"
	"github.com/lmarchal/filmotheque/pkg/pointer"
)

type memoryRepository struct {
	artistes map[string]*Artiste
}

func newMemoryRepository(seed ...*Artiste) *memoryRepository {
	repo := &memoryRepository{artistes: map[string]*Artiste{}}
	for _, a := range seed {
		repo.artistes[a.ID] = a
	}
	return repo
}

func (r *memoryRepository) ListArtistes(_ context.Context, f Filter, limit, offset int) ([]*Artiste, int, error) {
	var all []*Artiste
	for _, a := range r.artistes {
		all = append(all, a)
	}
	return all, len(all), nil
}

func (r *memoryRepository) GetArtiste(_ context.Context, id string) (*Artiste, error) {
	if a, ok := r.artistes[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryRepository) CreateArtiste(_ context.Context, a *Artiste) error {
	r.artistes[a.ID] = a
	return nil
}

func (r *memoryRepository) UpdateArtiste(_ context.Context, a *Artiste) error {
	if _, ok := r.artistes[a.ID]; !ok {
		return dberr.ErrNotFound
	}
	r.artistes[a.ID] = a
	return nil
}

func (r *memoryRepository) DeleteArtiste(_ context.Context, id string) error {
	if _, ok := r.artistes[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.artistes, id)
	return nil
}

// stubFilmography returns canned directing and acting credits.
type stubFilmography struct {
	directed map[string][]*film.Film
	roles    map[string][]film.Role
}

func (s *stubFilmography) ListFilmsByRealisateur(_ context.Context, artisteID string) ([]*film.Film, error) {
	return s.directed[artisteID], nil
}

func (s *stubFilmography) ListRolesByArtiste(_ context.Context, artisteID string) ([]film.Role, error) {
	return s.roles[artisteID], nil
}

func newArtisteService(repo Repository, films FilmographyProvider) *Service {
	return NewService(repo, films, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateArtiste(t *testing.T) {
	service := newArtisteService(newMemoryRepository(), &stubFilmography{})

	created, err := service.CreateArtiste(context.Background(), CreateArtisteInput{
		Nom:            "Audiard",
		Prenom:         "Jacques",
		AnneeNaissance: 1952,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Audiard", created.Nom)
}

func TestCreateArtiste_BirthYearBounds(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		wantErr bool
	}{
		{"lower_bound", BirthYearMin, false},
		{"below_lower_bound", BirthYearMin - 1, true},
		{"current_year", time.Now().Year(), false},
		{"future_year", time.Now().Year() + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newArtisteService(newMemoryRepository(), &stubFilmography{})

			_, err := service.CreateArtiste(context.Background(), CreateArtisteInput{
				Nom:            "Denis",
				Prenom:         "Claire",
				AnneeNaissance: tt.year,
			})

			if tt.wantErr {
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// GetArtiste composes the filmography from the film slice, with empty
// non-nil slices when the artiste has no credits.
func TestGetArtiste_Filmography(t *testing.T) {
	repo := newMemoryRepository(&Artiste{ID: "a-1", Nom: "Jeunet", Prenom: "Jean-Pierre", AnneeNaissance: 1953})
	films := &stubFilmography{
		directed: map[string][]*film.Film{
			"a-1": {{ID: "f-1", Titre: "Amélie", Annee: 2001}},
		},
		roles: map[string][]film.Role{
			"a-1": {{ID: "r-1", Libelle: "Caméo"}},
		},
	}
	service := newArtisteService(repo, films)

	detail, err := service.GetArtiste(context.Background(), "a-1")
	require.NoError(t, err)
	assert.Equal(t, "Jeunet", detail.Artiste.Nom)
	require.Len(t, detail.Filmographie.Realisateur, 1)
	assert.Equal(t, "f-1", detail.Filmographie.Realisateur[0].ID)
	require.Len(t, detail.Filmographie.Roles, 1)
	assert.Equal(t, "Caméo", detail.Filmographie.Roles[0].Libelle)
}

func TestGetArtiste_EmptyFilmography(t *testing.T) {
	repo := newMemoryRepository(&Artiste{ID: "a-2", Nom: "Nouvelle", Prenom: "Venue", AnneeNaissance: 2000})
	service := newArtisteService(repo, &stubFilmography{})

	detail, err := service.GetArtiste(context.Background(), "a-2")
	require.NoError(t, err)
	assert.NotNil(t, detail.Filmographie.Realisateur)
	assert.Empty(t, detail.Filmographie.Realisateur)
	assert.NotNil(t, detail.Filmographie.Roles)
	assert.Empty(t, detail.Filmographie.Roles)
}

func TestUpdateArtiste(t *testing.T) {
	repo := newMemoryRepository(&Artiste{ID: "a-1", Nom: "Varda", Prenom: "Agnes", AnneeNaissance: 1928})
	service := newArtisteService(repo, &stubFilmography{})

	updated, err := service.UpdateArtiste(context.Background(), "a-1", UpdateArtisteInput{
		Prenom: pointer.To("Agnès"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Agnès", updated.Prenom)
	assert.Equal(t, "Varda", updated.Nom)

	// Merged state is re-validated, so clearing a required field fails.
	_, err = service.UpdateArtiste(context.Background(), "a-1", UpdateArtisteInput{
		Nom: pointer.To(""),
	})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

func TestDeleteArtiste_Unknown(t *testing.T) {
	service := newArtisteService(newMemoryRepository(), &stubFilmography{})

	err := service.DeleteArtiste(context.Background(), "missing")
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}
