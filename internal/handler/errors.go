package handler

import (
	"errors"
	"net/http"

	"github.com/FelipeK57/comandapro-api/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// writeServiceError translates the service error taxonomy to HTTP responses.
// Anything outside the taxonomy becomes a generic 500 so internals never leak.
func writeServiceError(c echo.Context, log *zap.Logger, err error) error {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": validationErr.Message})
	}

	var conflictErr *service.ConflictError
	if errors.As(err, &conflictErr) {
		return c.JSON(http.StatusConflict, echo.Map{"error": conflictErr.Message})
	}

	var authErr *service.AuthError
	if errors.As(err, &authErr) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": authErr.Message})
	}

	var notFoundErr *service.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": notFoundErr.Message})
	}

	log.Error("Unexpected service error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error interno del servidor"})
}
