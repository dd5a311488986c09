// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package internaute

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmarchal/filmotheque/internal/platform/apperr"
	"github.com/lmarchal/filmotheque/internal/platform/dberr"
	"github.com/lmarchal/filmotheque/internal/platform/sec"
	"github.com/lmarchal/filmotheque/pkg/pointer"
)

// memoryRepository is an in-memory Repository for service tests.
type memoryRepository struct {
	users map[string]*Internaute
}

func newMemoryRepository(seed ...*Internaute) *memoryRepository {
	repo := &memoryRepository{users: map[string]*Internaute{}}
	for _, u := range seed {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *memoryRepository) ListInternautes(_ context.Context, limit, offset int) ([]*Internaute, int, error) {
	var all []*Internaute
	for _, u := range r.users {
		all = append(all, u)
	}
	return all, len(all), nil
}

func (r *memoryRepository) GetInternaute(_ context.Context, id string) (*Internaute, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (*Internaute, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryRepository) CreateInternaute(_ context.Context, u *Internaute) error {
	r.users[u.ID] = u
	return nil
}

func (r *memoryRepository) UpdateInternaute(_ context.Context, u *Internaute) error {
	if _, ok := r.users[u.ID]; !ok {
		return dberr.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	r.users[u.ID] = u
	return nil
}

func (r *memoryRepository) DeleteInternaute(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seededUser() *Internaute {
	hash, _ := sec.HashPassword("original-password")
	return &Internaute{
		ID:             "user-1",
		Email:          "jean.dupont@example.com",
		Nom:            "Dupont",
		Prenom:         "Jean",
		MotDePasse:     hash,
		AnneeNaissance: 1985,
		Actif:          true,
	}
}

func TestUpdateInternaute_OwnerOnly(t *testing.T) {
	service := NewService(newMemoryRepository(seededUser()), testLogger())

	_, err := service.UpdateInternaute(context.Background(), "someone-else", "user-1", UpdateInternauteInput{
		Nom: pointer.To("Pirate"),
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 403, ae.HTTPStatus)
	assert.Equal(t, "You can only update your own account", ae.Message)
}

func TestUpdateInternaute_PartialFields(t *testing.T) {
	repo := newMemoryRepository(seededUser())
	service := NewService(repo, testLogger())

	updated, err := service.UpdateInternaute(context.Background(), "user-1", "user-1", UpdateInternauteInput{
		Email:  pointer.To("  Jean.DUPONT@New.example.com "),
		Prenom: pointer.To("Jean-Luc"),
	})
	require.NoError(t, err)

	assert.Equal(t, "jean.dupont@new.example.com", updated.Email)
	assert.Equal(t, "Jean-Luc", updated.Prenom)
	// Untouched fields survive the partial update.
	assert.Equal(t, "Dupont", updated.Nom)
	assert.Equal(t, 1985, updated.AnneeNaissance)
}

func TestUpdateInternaute_RehashesPassword(t *testing.T) {
	repo := newMemoryRepository(seededUser())
	service := NewService(repo, testLogger())

	updated, err := service.UpdateInternaute(context.Background(), "user-1", "user-1", UpdateInternauteInput{
		MotDePasse: pointer.To("fresh-password"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, "fresh-password", updated.MotDePasse)
	assert.True(t, sec.CheckPasswordHash("fresh-password", updated.MotDePasse))
	assert.False(t, sec.CheckPasswordHash("original-password", updated.MotDePasse))
}

func TestUpdateInternaute_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input UpdateInternauteInput
	}{
		{"bad_email", UpdateInternauteInput{Email: pointer.To("nope")}},
		{"empty_nom", UpdateInternauteInput{Nom: pointer.To("")}},
		{"short_password", UpdateInternauteInput{MotDePasse: pointer.To("abc")}},
		{"birth_year_out_of_range", UpdateInternauteInput{AnneeNaissance: pointer.To(1850)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(newMemoryRepository(seededUser()), testLogger())

			_, err := service.UpdateInternaute(context.Background(), "user-1", "user-1", tt.input)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

func TestDeleteInternaute(t *testing.T) {
	repo := newMemoryRepository(seededUser())
	service := NewService(repo, testLogger())

	err := service.DeleteInternaute(context.Background(), "intruder", "user-1")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 403, ae.HTTPStatus)

	require.NoError(t, service.DeleteInternaute(context.Background(), "user-1", "user-1"))
	_, err = service.GetInternaute(context.Background(), "user-1")
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}

// The password hash must never leak through JSON rendering.
func TestInternaute_JSONExcludesPassword(t *testing.T) {
	payload, err := json.Marshal(seededUser())
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "motDePasse")
	assert.NotContains(t, string(payload), "$2a$")
}
