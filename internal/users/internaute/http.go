// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package internaute

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

// RegisterRoutes mounts the account endpoints. The caller wraps the whole
// group in the authentication middleware.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listInternautes)
	router.Get("/{id}", handler.getInternaute)
	router.Put("/{id}", handler.updateInternaute)
	router.Delete("/{id}", handler.deleteInternaute)
}

func (handler *Handler) listInternautes(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	internautes, total, err := handler.service.ListInternautes(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, "internautes", internautes, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getInternaute(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.service.GetInternaute(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]interface{}{"internaute": user})
}

func (handler *Handler) updateInternaute(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInternauteInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.UpdateInternaute(request.Context(), actorID, requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Resource(writer, http.StatusOK, "internaute", user, "Internaute mis à jour avec succès")
}

func (handler *Handler) deleteInternaute(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteInternaute(request.Context(), actorID, requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Internaute supprimé avec succès")
}
