// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmarchal/filmotheque/internal/platform/ctxutil"
	"github.com/lmarchal/filmotheque/internal/platform/middleware"
	"github.com/lmarchal/filmotheque/internal/platform/sec"
)

// fakeVerifier resolves a single known token.
type fakeVerifier struct {
	validToken string
	claims     *sec.AuthClaims
}

func (f *fakeVerifier) VerifyUser(_ context.Context, tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == f.validToken {
		return f.claims, nil
	}
	return nil, errors.New("verification failed")
}

/*
TestRequireAuth_Rejections verifies that every authentication failure mode
returns the same generic 401 body.
*/
func TestRequireAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{"missing_header", ""},
		{"not_bearer", "Basic dXNlcjpwYXNz"},
		{"malformed", "Bearer"},
		{"bad_token", "Bearer forged-token"},
	}

	verifier := &fakeVerifier{validToken: "good-token", claims: &sec.AuthClaims{UserID: "internaute-1"}}
	protected := middleware.RequireAuth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/api/films", nil)
			if tt.authHeader != "" {
				request.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			protected.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, "Invalid or missing authentication token", body["error"])
		})
	}
}

/*
TestRequireAuth_Success verifies that a valid bearer token reaches the
handler with claims attached to the request context.
*/
func TestRequireAuth_Success(t *testing.T) {
	verifier := &fakeVerifier{validToken: "good-token", claims: &sec.AuthClaims{UserID: "internaute-1"}}

	var seenUserID string
	protected := middleware.RequireAuth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ctxutil.GetAuthUser(r.Context())
		require.NotNil(t, claims)
		seenUserID = claims.UserID
		w.WriteHeader(http.StatusOK)
	}))

	request := httptest.NewRequest("GET", "/api/films", nil)
	request.Header.Set("Authorization", "Bearer good-token")
	recorder := httptest.NewRecorder()

	protected.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "internaute-1", seenUserID)
}
