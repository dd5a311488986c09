// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package film

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lmarchal/filmotheque/internal/platform/apperr"
	"github.com/lmarchal/filmotheque/internal/platform/constants"
	requestutil "github.com/lmarchal/filmotheque/internal/platform/request"
	"github.com/lmarchal/filmotheque/internal/platform/respond"
	"github.com/lmarchal/filmotheque/pkg/convert"
	"github.com/lmarchal/filmotheque/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the film endpoints. The caller wraps the whole group
// in the authentication middleware.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listFilms)
	router.Get("/{id}", handler.getFilm)
	router.Post("/", handler.createFilm)
	router.Put("/{id}", handler.updateFilm)
	router.Delete("/{id}", handler.deleteFilm)
	router.Post("/{id}/resume/upload", handler.uploadResume)
}

func (handler *Handler) listFilms(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		Titre:       queryParams.Get("titre"),
		Genre:       queryParams.Get("genre"),
		Realisateur: queryParams.Get("realisateur"),
	}
	if raw := queryParams.Get("annee"); raw != "" {
		if annee := convert.ToInt(raw); annee != 0 {
			filter.Annee = &annee
		}
	}

	films, total, err := handler.service.ListFilms(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, "films", films, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getFilm(writer http.ResponseWriter, request *http.Request) {
	film, err := handler.service.GetFilm(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]interface{}{"film": film})
}

func (handler *Handler) createFilm(writer http.ResponseWriter, request *http.Request) {
	var input CreateFilmInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	film, err := handler.service.CreateFilm(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "film", film, "Film créé avec succès")
}

func (handler *Handler) updateFilm(writer http.ResponseWriter, request *http.Request) {
	var input UpdateFilmInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	film, err := handler.service.UpdateFilm(request.Context(), requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Resource(writer, http.StatusOK, "film", film, "Film mis à jour avec succès")
}

func (handler *Handler) deleteFilm(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteFilm(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Film supprimé avec succès")
}

// uploadResume handles the multipart resume-document upload for a film.
// The document travels in the single form field named by
// [constants.UploadFieldName].
func (handler *Handler) uploadResume(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxUploadBytes)

	file, header, err := request.FormFile(constants.UploadFieldName)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("A file is required in the \""+constants.UploadFieldName+"\" field"))
		return
	}
	defer file.Close()

	film, err := handler.service.AttachResumeDocument(request.Context(), requestutil.Param(request, "id"), header.Filename, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Resource(writer, http.StatusOK, "film", film, "Document de résumé téléversé avec succès")
}
