package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSignKey = []byte("test-sign-key")

func signedToken(t *testing.T, sub string, key []byte, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestAuthenticator_Middleware_ValidToken(t *testing.T) {
	t.Parallel()
	auth := NewAuthenticator(testSignKey)
	userID := uuid.Must(uuid.NewV4())

	var seen uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromCtx(r.Context())
		require.True(t, ok)
		seen = id
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/listPuzzleTemplates", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, userID.String(), testSignKey, time.Minute))
	rec := httptest.NewRecorder()

	auth.Middleware(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, userID, seen)
}

func TestAuthenticator_Middleware_Rejections(t *testing.T) {
	t.Parallel()
	auth := NewAuthenticator(testSignKey)
	userID := uuid.Must(uuid.NewV4())

	cases := map[string]string{
		"no header":   "",
		"not bearer":  "Basic abc",
		"bad key":     "Bearer " + signedToken(t, userID.String(), []byte("other-key"), time.Minute),
		"expired":     "Bearer " + signedToken(t, userID.String(), testSignKey, -time.Hour),
		"bad subject": "Bearer " + signedToken(t, "not-a-uuid", testSignKey, time.Minute),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodPost, "/api/v1/listPuzzleTemplates", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			auth.Middleware(next).ServeHTTP(rec, req)

			require.False(t, called, "handler must not run")
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			env := decodeEnvelope(t, rec)
			require.False(t, env.Success)
			require.Equal(t, codeUnauthorized, env.Error.Code)
		})
	}
}
