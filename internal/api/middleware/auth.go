package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/imovelhub/imoveis-api/internal/core/domain"
	"github.com/imovelhub/imoveis-api/internal/core/ports"
)

// Auth validates the JWT carried in the Authorization header, confirms the
// referenced account still exists, and injects user_id and role into the
// request context.
//
// The header carries the raw token; a conventional "Bearer " prefix is
// tolerated and stripped.
func Auth(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("Authorization")
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token not provided")
			}
			if len(raw) > 7 && strings.EqualFold(raw[:7], "bearer ") {
				raw = raw[7:]
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, _ := claims["user_id"].(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// One store read per request: a token for a deleted account is
			// rejected even before its expiry.
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if err == domain.ErrUserNotFound {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			c.Set("user_id", user.ID)
			c.Set("role", user.Role)

			return next(c)
		}
	}
}
