package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiram/casting-agency/internal/auth"
)

const (
	testIssuer   = "https://casting.example.com/"
	testAudience = "casting-agency"
)

func newTestValidator(t *testing.T) (*auth.Validator, func(permissions []string) string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	kid := "test-key-1"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"keys": []map[string]any{{
				"kty": "RSA",
				"kid": kid,
				"use": "sig",
				"n":   base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.PublicKey.E)).Bytes()),
			}},
		})
	}))
	t.Cleanup(srv.Close)

	v := &auth.Validator{
		Issuer:   testIssuer,
		Audience: testAudience,
		Keys:     auth.NewKeyCache(srv.URL),
	}

	sign := func(permissions []string) string {
		claims := jwt.MapClaims{
			"iss": testIssuer,
			"aud": testAudience,
			"sub": "auth0|1234567890",
			"exp": time.Now().Add(time.Hour).Unix(),
		}
		if permissions != nil {
			claims["permissions"] = permissions
		}
		tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
		tok.Header["kid"] = kid
		signed, err := tok.SignedString(key)
		require.NoError(t, err)
		return signed
	}

	return v, sign
}

func callWithHeader(t *testing.T, mw *PermissionMiddleware, permission, header string, next echo.HandlerFunc) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	return mw.RequirePermission(permission)(next)(c)
}

func TestRequirePermission_AllowsAndStashesClaims(t *testing.T) {
	t.Parallel()

	v, sign := newTestValidator(t)
	mw := NewPermissionMiddleware(v)

	var seen *auth.ClaimSet
	err := callWithHeader(t, mw, "get:movies", "Bearer "+sign([]string{"get:movies"}), func(c echo.Context) error {
		seen = ClaimsFrom(c)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, err)

	require.NotNil(t, seen)
	assert.Equal(t, "auth0|1234567890", seen.Subject)
	assert.True(t, seen.HasPermission("get:movies"))
}

func TestRequirePermission_DeniesBeforeHandlerRuns(t *testing.T) {
	t.Parallel()

	v, sign := newTestValidator(t)
	mw := NewPermissionMiddleware(v)

	tests := []struct {
		name   string
		header string
		kind   auth.Kind
	}{
		{name: "no header", header: "", kind: auth.KindMissingHeader},
		{name: "wrong scope", header: "Bearer " + sign([]string{"get:actors"}), kind: auth.KindInsufficientPermission},
		{name: "scopeless token", header: "Bearer " + sign(nil), kind: auth.KindMissingPermissionsClaim},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handlerRan := false
			err := callWithHeader(t, mw, "get:movies", tt.header, func(c echo.Context) error {
				handlerRan = true
				return c.NoContent(http.StatusOK)
			})

			require.Error(t, err)
			assert.False(t, handlerRan)

			var authErr *auth.Error
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.kind, authErr.Kind)
		})
	}
}

func TestClaimsFrom_NilOnPublicRoute(t *testing.T) {
	t.Parallel()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", http.NoBody), httptest.NewRecorder())
	assert.Nil(t, ClaimsFrom(c))
}
