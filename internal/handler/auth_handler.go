package handler

import (
	"net/http"

	"github.com/FelipeK57/comandapro-api/internal/service"
	"github.com/FelipeK57/comandapro-api/pkg/logger"
	"github.com/FelipeK57/comandapro-api/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthHandler exposes registration and login
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles new restaurant registration
func (h *AuthHandler) Register(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RegisterCounter.Inc()

	// Parse request
	var req struct {
		FullName       string `json:"full_name"`
		RestaurantName string `json:"restaurant_name"`
		Email          string `json:"email"`
		Password       string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	message, err := h.auth.Register(req.FullName, req.RestaurantName, req.Email, req.Password)
	if err != nil {
		log.Error("Registration failed", zap.String("email", req.Email), zap.Error(err))
		prometheus.RecordAuthError("registration_failed")
		return writeServiceError(c, log, err)
	}

	log.Info("Restaurant registered",
		zap.String("restaurant_name", req.RestaurantName),
		zap.String("email", req.Email))
	return c.JSON(http.StatusOK, echo.Map{"message": message})
}

// Login handles credential verification and token issuance
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	// Parse request
	var req struct {
		Email      string `json:"email"`
		Password   string `json:"password"`
		RememberMe bool   `json:"remember_me"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	token, err := h.auth.Login(req.Email, req.Password, req.RememberMe)
	if err != nil {
		log.Error("Login failed", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_credentials")
		return writeServiceError(c, log, err)
	}

	prometheus.IncreaseActiveTokens()
	log.Info("User logged in", zap.String("email", req.Email), zap.Bool("remember_me", req.RememberMe))
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
