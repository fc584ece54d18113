package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/Tinaglini/RV-Project/pkg/jwtutil"
	"github.com/Tinaglini/RV-Project/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AdminGuard protects operator routes. When disabled it lets every request
// through; when enabled it requires a bearer token with the admin role.
func AdminGuard(enabled bool, jwtUtil *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if !enabled {
			return next
		}
		return func(c echo.Context) error {
			log := logger.FromContext(c)

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				log.Warn("Missing authorization header")
				return deny(c, http.StatusUnauthorized, "Missing authorization header")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("Invalid authorization header format")
				return deny(c, http.StatusUnauthorized, "Invalid authorization header format")
			}

			claims, err := jwtUtil.ValidateToken(parts[1])
			if err != nil {
				log.Warn("Invalid or expired token", zap.Error(err))
				return deny(c, http.StatusUnauthorized, "Invalid or expired token")
			}

			if claims.Role != jwtutil.RoleAdmin {
				log.Warn("Token without admin role",
					zap.String("subject", claims.Subject),
					zap.String("role", claims.Role))
				return deny(c, http.StatusForbidden, "Admin role required")
			}

			c.Set("admin", claims)
			log.Debug("Admin token validated", zap.String("subject", claims.Subject))

			return next(c)
		}
	}
}

func deny(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{
		"error":     msg,
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
