package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
)

// Authenticator resolves the acting user from bearer tokens issued by the
// external identity provider. The token subject is trusted completely; no
// independent authentication happens here.
type Authenticator struct {
	signKey []byte
}

// NewAuthenticator constructs an Authenticator with the provider's HS256 key.
func NewAuthenticator(signKey []byte) *Authenticator {
	return &Authenticator{signKey: signKey}
}

// Middleware rejects requests without a valid caller before any handler
// logic or storage access runs.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := a.userIDFromRequest(r)
		if err != nil {
			writeError(w, codeUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
	})
}

// userIDFromRequest: extract "Authorization: Bearer <JWT>", verify HS256,
// return sub as UUID.
func (a *Authenticator) userIDFromRequest(r *http.Request) (uuid.UUID, error) {
	tok, err := bearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return uuid.Nil, err
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return a.signKey, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	v := jwt.NewValidator(jwt.WithLeeway(30 * time.Second))
	if err := v.Validate(&claims); err != nil {
		return uuid.Nil, errors.New("token expired or not valid yet")
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.New("bad subject")
	}
	return id, nil
}

func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if len(header) >= 7 && strings.EqualFold(header[:7], "bearer ") {
		t := strings.TrimSpace(header[7:])
		if t != "" {
			return t, nil
		}
	}
	return "", errors.New("no bearer token")
}
