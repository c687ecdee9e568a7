package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Validator verifies bearer tokens issued by a single external identity
// provider. Only RS256 is accepted; unsigned tokens and other algorithms
// are rejected before signature verification.
type Validator struct {
	Issuer   string
	Audience string
	Keys     *KeyCache
}

func NewValidator(domain, audience string, keys *KeyCache) *Validator {
	return &Validator{
		Issuer:   "https://" + domain + "/",
		Audience: audience,
		Keys:     keys,
	}
}

// Validate parses the Authorization header, verifies the token's signature
// against the issuer's signing keys and checks exp, iss and aud. On success
// it returns the decoded claim set.
func (v *Validator) Validate(ctx context.Context, header string) (*ClaimSet, error) {
	if header == "" {
		return nil, newError(KindMissingHeader, http.StatusUnauthorized, "authorization header is expected")
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, newError(KindMalformedHeader, http.StatusUnauthorized, "authorization header must be a bearer token")
	}

	raw := parts[1]
	if strings.Count(raw, ".") != 2 {
		return nil, newError(KindMalformedHeader, http.StatusUnauthorized, "token must have three segments")
	}

	claims := &ClaimSet{}
	_, err := jwt.ParseWithClaims(raw, claims, v.keyFor(ctx),
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.Issuer),
		jwt.WithAudience(v.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, translateJWTError(err)
	}

	return claims, nil
}

func (v *Validator) keyFor(ctx context.Context) jwt.Keyfunc {
	return func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, newError(KindUnknownSigningKey, http.StatusUnauthorized, "token missing kid header")
		}
		key, err := v.Keys.Key(ctx, kid)
		if err != nil {
			return nil, newError(KindUnknownSigningKey, http.StatusUnauthorized, "unable to find appropriate signing key")
		}
		return key, nil
	}
}

func translateJWTError(err error) error {
	var authErr *Error
	switch {
	case errors.As(err, &authErr):
		return authErr
	case errors.Is(err, jwt.ErrTokenExpired):
		return newError(KindTokenExpired, http.StatusUnauthorized, "token is expired")
	case errors.Is(err, jwt.ErrTokenInvalidIssuer),
		errors.Is(err, jwt.ErrTokenInvalidAudience),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return newError(KindClaimMismatch, http.StatusUnauthorized, "incorrect claims, check the audience and issuer")
	case errors.Is(err, jwt.ErrTokenMalformed):
		return newError(KindMalformedHeader, http.StatusUnauthorized, "unable to parse token")
	default:
		return newError(KindBadSignature, http.StatusUnauthorized, "token signature verification failed")
	}
}
