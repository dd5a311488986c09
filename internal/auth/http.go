// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lmarchal/filmotheque/internal/platform/middleware"
	requestutil "github.com/lmarchal/filmotheque/internal/platform/request"
	"github.com/lmarchal/filmotheque/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements the authentication HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with the authentication endpoints.
//
// # Endpoints
//   - POST /register : Creates a new internaute and returns a JWT.
//   - POST /login    : Authenticates and returns a JWT.
//   - GET  /profile  : Returns the authenticated internaute.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(handler.authService))
		r.Get("/profile", handler.profile)
	})

	return router
}

// # Handlers

func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input RegisterInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Register(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusCreated, map[string]interface{}{
		"message":    "Compte créé avec succès",
		"token":      session.Token,
		"internaute": session.Internaute,
	})
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]interface{}{
		"message":    "Connexion réussie",
		"token":      session.Token,
		"internaute": session.Internaute,
	})
}

func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]interface{}{"internaute": user})
}
