// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmarchal/filmotheque/internal/auth"
	"github.com/lmarchal/filmotheque/internal/platform/apperr"
	"github.com/lmarchal/filmotheque/internal/platform/dberr"
	"github.com/lmarchal/filmotheque/internal/platform/sec"
	"github.com/lmarchal/filmotheque/internal/users/internaute"
)

// fakeUserRepository is an in-memory internaute.Repository.
type fakeUserRepository struct {
	byID    map[string]*internaute.Internaute
	byEmail map[string]*internaute.Internaute
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byID:    map[string]*internaute.Internaute{},
		byEmail: map[string]*internaute.Internaute{},
	}
}

func (f *fakeUserRepository) ListInternautes(_ context.Context, limit, offset int) ([]*internaute.Internaute, int, error) {
	var all []*internaute.Internaute
	for _, u := range f.byID {
		all = append(all, u)
	}
	return all, len(all), nil
}

func (f *fakeUserRepository) GetInternaute(_ context.Context, id string) (*internaute.Internaute, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*internaute.Internaute, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeUserRepository) CreateInternaute(_ context.Context, i *internaute.Internaute) error {
	if _, exists := f.byEmail[i.Email]; exists {
		return apperr.Duplicate("email")
	}
	i.CreatedAt = time.Now()
	i.UpdatedAt = i.CreatedAt
	f.byID[i.ID] = i
	f.byEmail[i.Email] = i
	return nil
}

func (f *fakeUserRepository) UpdateInternaute(_ context.Context, i *internaute.Internaute) error {
	if _, ok := f.byID[i.ID]; !ok {
		return dberr.ErrNotFound
	}
	i.UpdatedAt = time.Now()
	f.byID[i.ID] = i
	f.byEmail[i.Email] = i
	return nil
}

func (f *fakeUserRepository) DeleteInternaute(_ context.Context, id string) error {
	u, ok := f.byID[id]
	if !ok {
		return dberr.ErrNotFound
	}
	delete(f.byEmail, u.Email)
	delete(f.byID, id)
	return nil
}

func newAuthService(t *testing.T) (*auth.Service, *fakeUserRepository) {
	t.Helper()

	repo := newFakeUserRepository()
	tokens, err := sec.NewTokenService("test-signing-secret", "filmotheque.test")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.NewService(repo, tokens, time.Hour, logger), repo
}

func validRegistration() auth.RegisterInput {
	return auth.RegisterInput{
		Email:          "Lea.Marchal@Example.com",
		Nom:            "Marchal",
		Prenom:         "Léa",
		MotDePasse:     "motdepasse",
		AnneeNaissance: 1990,
	}
}

/*
TestRegister_Success verifies enrollment: normalized email, hashed password,
active account, and a verifiable session token.
*/
func TestRegister_Success(t *testing.T) {
	service, _ := newAuthService(t)

	session, err := service.Register(context.Background(), validRegistration())
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "lea.marchal@example.com", session.Internaute.Email)
	assert.True(t, session.Internaute.Actif)
	assert.NotEmpty(t, session.Internaute.ID)

	// Never store the plain-text password.
	assert.NotEqual(t, "motdepasse", session.Internaute.MotDePasse)
	assert.True(t, sec.CheckPasswordHash("motdepasse", session.Internaute.MotDePasse))

	// The issued token resolves back to the new account.
	claims, err := service.VerifyUser(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Internaute.ID, claims.UserID)
}

/*
TestRegister_DuplicateEmail verifies the case-insensitive duplicate check.
*/
func TestRegister_DuplicateEmail(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	input := validRegistration()
	input.Email = "LEA.MARCHAL@example.com"
	_, err = service.Register(context.Background(), input)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "DUPLICATE", ae.Code)
	assert.Equal(t, "email already exists", ae.Message)
	assert.Equal(t, 400, ae.HTTPStatus)
}

/*
TestRegister_Validation rejects malformed enrollment payloads.
*/
func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*auth.RegisterInput)
	}{
		{"bad_email", func(i *auth.RegisterInput) { i.Email = "not-an-email" }},
		{"short_password", func(i *auth.RegisterInput) { i.MotDePasse = "abc" }},
		{"missing_nom", func(i *auth.RegisterInput) { i.Nom = "" }},
		{"birth_year_too_old", func(i *auth.RegisterInput) { i.AnneeNaissance = 1820 }},
		{"birth_year_future", func(i *auth.RegisterInput) { i.AnneeNaissance = time.Now().Year() + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newAuthService(t)
			input := validRegistration()
			tt.mutate(&input)

			_, err := service.Register(context.Background(), input)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

/*
TestLogin_GenericFailures verifies that unknown email, wrong password, and
deactivated accounts return the identical unauthorized message.
*/
func TestLogin_GenericFailures(t *testing.T) {
	service, repo := newAuthService(t)

	session, err := service.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	deactivated := *session.Internaute
	deactivated.Actif = false
	repo.byID["inactive-id"] = &deactivated
	repo.byEmail["inactive@example.com"] = &deactivated

	tests := []struct {
		name  string
		input auth.LoginInput
	}{
		{"unknown_email", auth.LoginInput{Email: "ghost@example.com", MotDePasse: "motdepasse"}},
		{"wrong_password", auth.LoginInput{Email: "lea.marchal@example.com", MotDePasse: "wrong"}},
		{"inactive_account", auth.LoginInput{Email: "inactive@example.com", MotDePasse: "motdepasse"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), tt.input)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, 401, ae.HTTPStatus)
			assert.Equal(t, "Invalid login credentials", ae.Message)
		})
	}
}

/*
TestLogin_Success verifies credential checks with a case-folded email.
*/
func TestLogin_Success(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:      "Lea.Marchal@example.COM",
		MotDePasse: "motdepasse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "lea.marchal@example.com", session.Internaute.Email)
}

/*
TestVerifyUser_RejectsDeactivated verifies that a valid token for a
deactivated account no longer authenticates.
*/
func TestVerifyUser_RejectsDeactivated(t *testing.T) {
	service, repo := newAuthService(t)

	session, err := service.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	repo.byID[session.Internaute.ID].Actif = false

	_, err = service.VerifyUser(context.Background(), session.Token)
	assert.Error(t, err)
}

/*
TestVerifyUser_RejectsGarbage verifies that an unparseable token fails.
*/
func TestVerifyUser_RejectsGarbage(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.VerifyUser(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}
