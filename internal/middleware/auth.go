package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/FelipeK57/comandapro-api/pkg/jwtutil"
	"github.com/FelipeK57/comandapro-api/pkg/logger"
	"github.com/FelipeK57/comandapro-api/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware validates the session token from the Authorization header and
// stores the caller's identity and restaurant binding in the request context.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		// Get the Authorization header
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Error("Missing Authorization header")
			prometheus.RecordAuthError("missing_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
		}

		// Check if it's a Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Error("Invalid Authorization header format")
			prometheus.RecordAuthError("invalid_auth_format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
		}

		tokenString := parts[1]

		// Expiry is enforced here; ParseToken alone only checks the signature
		if !jwtutil.ValidateToken(tokenString) {
			log.Error("Invalid or expired token")
			prometheus.RecordAuthError("invalid_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		claims, err := jwtutil.ParseToken(tokenString)
		if err != nil {
			log.Error("Failed to parse token claims", zap.Error(err))
			prometheus.RecordAuthError("invalid_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		userID, err := jwtutil.ExtractUserID(tokenString)
		if err != nil {
			log.Error("Token subject is not a user ID", zap.Error(err))
			prometheus.RecordAuthError("invalid_subject")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		// Store identity and restaurant binding for handlers
		c.Set("user_id", userID)
		c.Set("restaurant_id", uint(claims.RestaurantID))
		c.Set("full_name", claims.FullName)
		c.Set("user_role", claims.Role)

		// Propagate the restaurant binding for downstream use
		c.Request().Header.Set("X-Restaurant-ID", fmt.Sprintf("%d", uint(claims.RestaurantID)))

		log.Debug("Request authenticated",
			zap.Uint("user_id", userID),
			zap.Uint("restaurant_id", uint(claims.RestaurantID)),
			zap.String("role", claims.Role))

		return next(c)
	}
}

// RestaurantIDFromContext returns the restaurant binding stored by AuthMiddleware
func RestaurantIDFromContext(c echo.Context) (uint, bool) {
	id, ok := c.Get("restaurant_id").(uint)
	return id, ok
}

// UserIDFromContext returns the user ID stored by AuthMiddleware
func UserIDFromContext(c echo.Context) (uint, bool) {
	id, ok := c.Get("user_id").(uint)
	return id, ok
}
