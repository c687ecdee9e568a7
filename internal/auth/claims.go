package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

// Kind identifies one authentication or authorization failure mode.
type Kind string

const (
	KindMissingHeader           Kind = "missing_header"
	KindMalformedHeader         Kind = "malformed_header"
	KindUnknownSigningKey       Kind = "unknown_signing_key"
	KindBadSignature            Kind = "bad_signature"
	KindTokenExpired            Kind = "token_expired"
	KindClaimMismatch           Kind = "claim_mismatch"
	KindMissingPermissionsClaim Kind = "missing_permissions_claim"
	KindInsufficientPermission  Kind = "insufficient_permission"
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func newError(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message}
}

// ClaimSet is the verified payload of a bearer token. Permissions stays nil
// when the token carries no permissions claim at all, which is distinct from
// a present-but-empty claim.
type ClaimSet struct {
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

func (c *ClaimSet) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// Require checks that the claim set grants the given permission scope.
func (c *ClaimSet) Require(permission string) error {
	if c.Permissions == nil {
		return newError(KindMissingPermissionsClaim, http.StatusBadRequest, "permissions claim not included in token")
	}
	if !c.HasPermission(permission) {
		return newError(KindInsufficientPermission, http.StatusForbidden, "permission not found")
	}
	return nil
}
