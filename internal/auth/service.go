// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

/*
Package auth implements identity management for the Filmothèque API.

It handles registration with secure password hashing, credential verification,
and stateless HS256 session tokens whose payload carries only the internaute
identifier.

Architecture:

  - Service: Orchestrates business logic (Register, Login, VerifyUser).
  - Repository: The internaute store, shared with the account slice.
  - Security: bcrypt hashing and HMAC-signed JWTs via the sec package.

Token verification re-fetches the internaute record on every request, so a
deactivated account is locked out immediately even while its token is still
cryptographically valid.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lmarchal/filmotheque/internal/platform/apperr"
	"github.com/lmarchal/filmotheque/internal/platform/sec"
	"github.com/lmarchal/filmotheque/internal/platform/validate"
	"github.com/lmarchal/filmotheque/internal/users/internaute"
	"github.com/lmarchal/filmotheque/pkg/uuidv7"
)

// # Contracts & Types

// TokenProvider defines the contract for issuing and checking session tokens.
// [sec.TokenService] is the production implementation.
type TokenProvider interface {
	GenerateAccessToken(userID string, timeToLive time.Duration) (string, error)
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// Service implements the authentication use cases.
type Service struct {
	users         internaute.Repository
	tokenProvider TokenProvider
	tokenTTL      time.Duration
	logger        *slog.Logger
}

// NewService constructs the auth [Service] with its dependencies.
func NewService(users internaute.Repository, tokenProvider TokenProvider, tokenTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		users:         users,
		tokenProvider: tokenProvider,
		tokenTTL:      tokenTTL,
		logger:        logger,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new internaute.
type RegisterInput struct {
	Email          string `json:"email"`
	Nom            string `json:"nom"`
	Prenom         string `json:"prenom"`
	MotDePasse     string `json:"motDePasse"`
	AnneeNaissance int    `json:"anneeNaissance"`
}

// AuthSession pairs a signed access token with the public user representation.
type AuthSession struct {
	Token      string                 `json:"token"`
	Internaute *internaute.Internaute `json:"internaute"`
}

/*
Register validates, hashes, and persists a brand new internaute, then issues
a session token.

The email is normalized to lowercase before the uniqueness check, so
"User@Example.com" and "user@example.com" are the same identity.

Returns:
  - *AuthSession: token plus the created account
  - error: Duplicate (email taken), validation, or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*AuthSession, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	validator := &validate.Validator{}
	validator.Required(internaute.FieldEmail, email).Email(internaute.FieldEmail, email)
	validator.Required(internaute.FieldNom, input.Nom).MaxLen(internaute.FieldNom, input.Nom, 100)
	validator.Required(internaute.FieldPrenom, input.Prenom).MaxLen(internaute.FieldPrenom, input.Prenom, 100)
	validator.MinLen(internaute.FieldMotDePasse, input.MotDePasse, 6)
	validator.Range(internaute.FieldAnneeNaissance, input.AnneeNaissance, internaute.BirthYearMin, time.Now().Year())

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Friendly pre-check; the unique index on email remains the authoritative
	// guard and surfaces the same Duplicate error under a race.
	if _, err := service.users.FindByEmail(context, email); err == nil {
		return nil, apperr.Duplicate(internaute.FieldEmail)
	}

	hashedPassword, err := sec.HashPassword(input.MotDePasse)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Time-sortable ID to prevent PG index fragmentation.
	user := &internaute.Internaute{
		ID:             uuidv7.New(),
		Email:          email,
		Nom:            input.Nom,
		Prenom:         input.Prenom,
		MotDePasse:     hashedPassword,
		AnneeNaissance: input.AnneeNaissance,
		Actif:          true,
	}

	if err := service.users.CreateInternaute(context, user); err != nil {
		return nil, err
	}

	token, err := service.tokenProvider.GenerateAccessToken(user.ID, service.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.logger.Info("internaute_registered", slog.String("internaute_id", user.ID))

	return &AuthSession{Token: token, Internaute: user}, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email      string `json:"email"`
	MotDePasse string `json:"motDePasse"`
}

/*
Login validates credentials and issues a session token.

Unknown email, wrong password, and deactivated account all return the same
generic Unauthorized error to prevent account enumeration.
*/
func (service *Service) Login(context context.Context, input LoginInput) (*AuthSession, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := service.users.FindByEmail(context, email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Constant-time comparison inside bcrypt prevents timing attacks.
	if !sec.CheckPasswordHash(input.MotDePasse, user.MotDePasse) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !user.Actif {
		service.logger.Warn("login_inactive_account", slog.String("internaute_id", user.ID))
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	token, err := service.tokenProvider.GenerateAccessToken(user.ID, service.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.logger.Info("internaute_logged_in", slog.String("internaute_id", user.ID))

	return &AuthSession{Token: token, Internaute: user}, nil
}

// # Identity Resolution

// GetProfile returns the account of the authenticated internaute.
func (service *Service) GetProfile(context context.Context, userID string) (*internaute.Internaute, error) {
	return service.users.GetInternaute(context, userID)
}

/*
VerifyUser resolves a bearer token into claims for the auth middleware.

It checks the token signature, re-fetches the referenced internaute, and
rejects deactivated accounts. The distinct failure reasons stay inside the
returned error for logging; the middleware collapses them into one generic
401 for the client.
*/
func (service *Service) VerifyUser(context context.Context, tokenString string) (*sec.AuthClaims, error) {
	claims, err := service.tokenProvider.VerifyToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := service.users.GetInternaute(context, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_unknown_user: %w", err)
	}

	if !user.Actif {
		return nil, fmt.Errorf("auth_service_inactive_user: %s", user.ID)
	}

	return claims, nil
}
