// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/lmarchal/filmotheque/internal/platform/apperr"
	"github.com/lmarchal/filmotheque/internal/platform/ctxutil"
	"github.com/lmarchal/filmotheque/internal/platform/respond"
	"github.com/lmarchal/filmotheque/internal/platform/sec"
)

// UserVerifier resolves a bearer token into authenticated user claims.
//
// # Why an interface?
//
// Defining UserVerifier here decouples the middleware from the auth service
// implementation, allowing us to inject fakes during unit testing. The
// implementation verifies the token signature AND re-fetches the user record,
// so revoked or deactivated accounts are rejected immediately.
type UserVerifier interface {
	VerifyUser(ctx context.Context, tokenStr string) (*sec.AuthClaims, error)
}

// genericAuthError is the single client-facing message for every
// authentication failure. Missing header, malformed header, bad signature,
// unknown user, and inactive user are deliberately indistinguishable to the
// caller; the precise reason goes to the server log only.
const genericAuthError = "Invalid or missing authentication token"

// RequireAuth blocks requests that do not carry a valid bearer token for an
// active user, attaching the resolved claims to the request context.
//
// # Flow
//  1. Extract 'Authorization: Bearer <token>' header.
//  2. Verify signature and load the referenced user via [UserVerifier].
//  3. Inject [*sec.AuthClaims] into the request context for downstream use.
func RequireAuth(verifier UserVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			logger := ctxutil.GetLogger(request.Context())

			authHeader := request.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("auth_rejected", slog.String("reason", "missing_token"))
				respond.Error(writer, request, apperr.Unauthorized(genericAuthError))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				logger.Warn("auth_rejected", slog.String("reason", "malformed_header"))
				respond.Error(writer, request, apperr.Unauthorized(genericAuthError))
				return
			}

			claims, err := verifier.VerifyUser(request.Context(), parts[1])
			if err != nil {
				// VerifyUser distinguishes bad signatures from missing or
				// inactive users in its own error; log it, don't expose it.
				logger.Warn("auth_rejected",
					slog.String("reason", "verification_failed"),
					slog.String("error", err.Error()),
				)
				respond.Error(writer, request, apperr.Unauthorized(genericAuthError))
				return
			}

			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
