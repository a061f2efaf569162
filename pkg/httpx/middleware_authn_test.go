package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lakefield/tasklist/pkg/jwtx"
)

func TestAuthnMiddleware(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewHS256([]byte("test-secret"))
	require.NoError(t, err)

	var gotUserID, gotUsername string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromCtx(r.Context())
		gotUsername = UsernameFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := Chain(inner, AuthnMiddleware(signer))

	t.Run("missing header yields 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Access token required"}`, rec.Body.String())
	})

	t.Run("garbage token yields 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())
	})

	t.Run("expired token yields 403", func(t *testing.T) {
		raw, err := signer.Sign(jwtx.NewClaims("u1", "alice", "tasklist",
			time.Minute, time.Now().UTC().Add(-time.Hour)))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("valid token passes identity through", func(t *testing.T) {
		raw, err := signer.Sign(jwtx.NewClaims("u1", "alice", "tasklist",
			time.Hour, time.Now().UTC()))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "u1", gotUserID)
		require.Equal(t, "alice", gotUsername)
	})
}
