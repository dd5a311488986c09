// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package artiste

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

// RegisterRoutes mounts the artiste endpoints. The caller wraps the whole
// group in the authentication middleware.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listArtistes)
	router.Get("/{id}", handler.getArtiste)
	router.Post("/", handler.createArtiste)
	router.Put("/{id}", handler.updateArtiste)
	router.Delete("/{id}", handler.deleteArtiste)
}

func (handler *Handler) listArtistes(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	artistes, total, err := handler.service.ListArtistes(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, "artistes", artistes, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getArtiste(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetArtiste(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}

func (handler *Handler) createArtiste(writer http.ResponseWriter, request *http.Request) {
	var input CreateArtisteInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	artiste, err := handler.service.CreateArtiste(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "artiste", artiste, "Artiste créé avec succès")
}

func (handler *Handler) updateArtiste(writer http.ResponseWriter, request *http.Request) {
	var input UpdateArtisteInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	artiste, err := handler.service.UpdateArtiste(request.Context(), requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Resource(writer, http.StatusOK, "artiste", artiste, "Artiste mis à jour avec succès")
}

func (handler *Handler) deleteArtiste(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteArtiste(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Artiste supprimé avec succès")
}
