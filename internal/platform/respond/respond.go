// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Every success body wraps the affected resource under a named key with an
// optional human-readable message; list bodies pair the collection with a
// pagination block; error bodies are either {"error": ...} or, for
// multi-field validation failures, {"errors": [...]}.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lmarchal/filmotheque/internal/platform/apperr"
	"github.com/lmarchal/filmotheque/internal/platform/ctxutil"
	"github.com/lmarchal/filmotheque/pkg/pagination"
)

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the payload as-is.
//
// Used by read endpoints whose body shape is already the full contract
// (single DTOs and composite objects like {pays, films}).
func OK(writer http.ResponseWriter, payload interface{}) {
	JSON(writer, http.StatusOK, payload)
}

// Resource writes a response wrapping a single resource under its named key
// alongside a human-readable message:
//
//	{"message": "Film créé avec succès", "film": {...}}
func Resource(writer http.ResponseWriter, statusCode int, key string, resource interface{}, message string) {
	JSON(writer, statusCode, map[string]interface{}{
		"message": message,
		key:       resource,
	})
}

// Created writes a 201 Created response wrapping the new resource.
func Created(writer http.ResponseWriter, key string, resource interface{}, message string) {
	Resource(writer, http.StatusCreated, key, resource, message)
}

// List writes a 200 OK response pairing a collection with pagination metadata:
//
//	{"films": [...], "pagination": {"page": 1, "limit": 10, "total": 42, "pages": 5}}
func List(writer http.ResponseWriter, key string, items interface{}, meta pagination.Meta) {
	JSON(writer, http.StatusOK, map[string]interface{}{
		key:          items,
		"pagination": meta,
	})
}

// Message writes a 200 OK response carrying only a human-readable message.
func Message(writer http.ResponseWriter, message string) {
	JSON(writer, http.StatusOK, map[string]string{"message": message})
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		// Unexpected internal error: log full details but hide them from the client.
		logger := loggerFrom(request)
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := loggerFrom(request)
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	// Multi-field validation failures expose the full field list; everything
	// else is a single sanitized message.
	if len(appError.Details) > 0 {
		JSON(writer, appError.HTTPStatus, map[string]interface{}{
			"errors": appError.Details,
		})
		return
	}

	JSON(writer, appError.HTTPStatus, map[string]string{"error": appError.Message})
}

// loggerFrom extracts the per-request logger, falling back to the default.
func loggerFrom(request *http.Request) *slog.Logger {
	return ctxutil.GetLogger(request.Context())
}
