package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/mcikids/portal/models"
)

// ContextUserKey is where the session identity is stored on the request
// context by the auth middlewares.
const ContextUserKey = "user"

// Claims carried by issued session tokens.
type Claims struct {
	UID  string      `json:"uid"`
	Role models.Role `json:"role"`
	Name string      `json:"name"`
	jwt.RegisteredClaims
}

func extractBearer(c echo.Context) (string, bool) {
	h := c.Request().Header.Get("Authorization")
	if h == "" {
		return "", false
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func parseToken(tok, secret string) (*models.User, error) {
	token, err := jwt.ParseWithClaims(tok, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_TOKEN_METHOD"})
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_TOKEN"})
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CLAIMS"})
	}
	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "TOKEN_EXPIRED"})
	}
	return &models.User{ID: claims.UID, Name: claims.Name, Role: claims.Role}, nil
}

// RequireAuth rejects requests without a valid session token and attaches
// the identity to the context.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, ok := extractBearer(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "NOT_AUTHENTICATED"})
			}
			user, err := parseToken(tok, secret)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// OptionalAuth attaches the identity when a valid token is present and lets
// the request through as a guest otherwise. Used by the feed, whose
// visibility rules differ per role.
func OptionalAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if tok, ok := extractBearer(c); ok {
				if user, err := parseToken(tok, secret); err == nil {
					c.Set(ContextUserKey, user)
				}
			}
			return next(c)
		}
	}
}

// RequireRole restricts a route to the given roles, e.g.
// RequireRole(models.RoleLeader).
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	allowed := map[models.Role]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(ContextUserKey).(*models.User)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "NOT_AUTHENTICATED"})
			}
			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, map[string]any{"error": "FORBIDDEN"})
			}
			return next(c)
		}
	}
}
