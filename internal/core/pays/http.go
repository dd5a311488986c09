// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package pays

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

// RegisterRoutes mounts the country endpoints. The caller wraps the whole
// group in the authentication middleware.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listPays)
	router.Get("/{code}", handler.getPays)
	router.Post("/", handler.createPays)
	router.Put("/{code}", handler.updatePays)
	router.Delete("/{code}", handler.deletePays)
}

func (handler *Handler) listPays(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	countries, total, err := handler.service.ListPays(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, "pays", countries, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getPays(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetPays(request.Context(), requestutil.Param(request, "code"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}

func (handler *Handler) createPays(writer http.ResponseWriter, request *http.Request) {
	var input CreatePaysInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	country, err := handler.service.CreatePays(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "pays", country, "Pays créé avec succès")
}

func (handler *Handler) updatePays(writer http.ResponseWriter, request *http.Request) {
	var input UpdatePaysInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	country, err := handler.service.UpdatePays(request.Context(), requestutil.Param(request, "code"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Resource(writer, http.StatusOK, "pays", country, "Pays mis à jour avec succès")
}

func (handler *Handler) deletePays(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeletePays(request.Context(), requestutil.Param(request, "code")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Pays supprimé avec succès")
}
