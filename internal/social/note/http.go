// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package note

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/lmarchal/filmotheque/internal/platform/request"
	"github.com/lmarchal/filmotheque/internal/platform/respond"
	"github.com/lmarchal/filmotheque/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the rating endpoints. Reads are public; writes are
// wrapped in the provided authentication middleware.
func (handler *Handler) RegisterRoutes(router chi.Router, requireAuth func(http.Handler) http.Handler) {
	// Public
	router.Get("/", handler.listNotes)
	router.Get("/film/{id}", handler.getFilmNotes)
	router.Get("/internaute/{id}", handler.getInternauteNotes)

	// Authenticated writes
	router.Group(func(authRoute chi.Router) {
		authRoute.Use(requireAuth)

		authRoute.Post("/", handler.createNote)
		authRoute.Put("/{id}", handler.updateNote)
		authRoute.Delete("/{id}", handler.deleteNote)
	})
}

func (handler *Handler) listNotes(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		FilmID:       queryParams.Get("film"),
		InternauteID: queryParams.Get("internaute"),
	}

	notes, total, err := handler.service.ListNotes(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, "notes", notes, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getFilmNotes(writer http.ResponseWriter, request *http.Request) {
	payload, err := handler.service.GetFilmNotes(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, payload)
}

func (handler *Handler) getInternauteNotes(writer http.ResponseWriter, request *http.Request) {
	notes, err := handler.service.GetInternauteNotes(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]interface{}{"notes": notes})
}

func (handler *Handler) createNote(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateNoteInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	note, err := handler.service.CreateNote(request.Context(), actorID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "note", note, "Note créée avec succès")
}

func (handler *Handler) updateNote(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateNoteInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	note, err := handler.service.UpdateNote(request.Context(), actorID, requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Resource(writer, http.StatusOK, "note", note, "Note mise à jour avec succès")
}

func (handler *Handler) deleteNote(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteNote(request.Context(), actorID, requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Note supprimée avec succès")
}
