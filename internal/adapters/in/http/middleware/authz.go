package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Permissions checked by the API routes. Tokens carry a "perms" claim with
// the subset granted to the caller; admin tokens simply carry all of them.
const (
	PermOrdersRead      = "orders:read"
	PermOrdersWrite     = "orders:write"
	PermProductionRead  = "production:read"
	PermProductionWrite = "production:write"
)

// Authz validates bearer tokens and enforces per-route permissions.
type Authz struct {
	secret   string
	issuer   string
	audience string
}

func NewAuthz(secret, issuer, audience string) *Authz {
	return &Authz{secret: secret, issuer: issuer, audience: audience}
}

// Require checks the JWT and ensures all required permissions are present.
func (a *Authz) Require(requiredPerms ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return unauth(c, "invalid_request", "missing bearer token")
			}

			raw := strings.TrimPrefix(auth, "Bearer ")
			token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(a.secret), nil
			}, jwt.WithLeeway(30*time.Second)) // small clock skew

			if err != nil || !token.Valid {
				return unauth(c, "invalid_token", "invalid jwt")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauth(c, "invalid_token", "claims parsing error")
			}

			if claims["iss"] != a.issuer || claims["aud"] != a.audience {
				return unauth(c, "invalid_token", "iss/aud mismatch")
			}

			perms := extractPerms(claims)
			if !hasAll(perms, requiredPerms) {
				return forbidden(c, "insufficient_scope", "missing required permissions")
			}

			return next(c)
		}
	}
}

func extractPerms(claims jwt.MapClaims) map[string]struct{} {
	out := map[string]struct{}{}
	if arr, ok := claims["perms"].([]any); ok {
		for _, v := range arr {
			if s, ok := v.(string); ok && s != "" {
				out[s] = struct{}{}
			}
		}
	}
	return out
}

func hasAll(have map[string]struct{}, req []string) bool {
	for _, r := range req {
		if _, ok := have[r]; !ok {
			return false
		}
	}
	return true
}

func unauth(c echo.Context, code, desc string) error {
	c.Response().Header().Set("WWW-Authenticate",
		`Bearer error="`+code+`", error_description="`+desc+`"`)
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error": code, "error_description": desc,
	})
}

func forbidden(c echo.Context, code, desc string) error {
	c.Response().Header().Set("WWW-Authenticate",
		`Bearer error="`+code+`", error_description="`+desc+`"`)
	return c.JSON(http.StatusForbidden, map[string]string{
		"error": code, "error_description": desc,
	})
}
