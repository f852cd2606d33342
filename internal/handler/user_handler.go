package handler

import (
	"net/http"
	"strconv"

	"github.com/FelipeK57/comandapro-api/internal/middleware"
	"github.com/FelipeK57/comandapro-api/internal/model"
	"github.com/FelipeK57/comandapro-api/internal/service"
	"github.com/FelipeK57/comandapro-api/pkg/logger"
	"github.com/FelipeK57/comandapro-api/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserHandler exposes staff account management scoped to the caller's restaurant
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a UserHandler
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// CreateUser creates a staff account in the caller's restaurant
func (h *UserHandler) CreateUser(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("user", "create")

	restaurantID, ok := middleware.RestaurantIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
		Active   *bool  `json:"active"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse user creation request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	user, err := h.users.CreateUser(service.CreateUserInput{
		RestaurantID: restaurantID,
		FullName:     req.FullName,
		Email:        req.Email,
		Password:     req.Password,
		Role:         model.UserRole(req.Role),
		Active:       active,
	})
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("User created",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email),
		zap.Uint("restaurant_id", restaurantID))
	return c.JSON(http.StatusCreated, user)
}

// GetUser returns a user of the caller's restaurant by ID
func (h *UserHandler) GetUser(c echo.Context) error {
	log := logger.FromContext(c)

	restaurantID, _ := middleware.RestaurantIDFromContext(c)
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	user, err := h.users.GetUserByID(id)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	if user.RestaurantID != restaurantID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Usuario no encontrado"})
	}
	return c.JSON(http.StatusOK, user)
}

// ListUsers lists users of the caller's restaurant, with optional role and
// active filters
func (h *UserHandler) ListUsers(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("user", "list")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)

	if role := c.QueryParam("role"); role != "" {
		users, err := h.users.GetUsersByRole(role, restaurantID)
		if err != nil {
			return writeServiceError(c, log, err)
		}
		return c.JSON(http.StatusOK, users)
	}

	activeOnly, _ := strconv.ParseBool(c.QueryParam("active"))
	users, err := h.users.GetUsersByRestaurant(restaurantID, activeOnly)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	return c.JSON(http.StatusOK, users)
}

// CountUsers counts users of the caller's restaurant
func (h *UserHandler) CountUsers(c echo.Context) error {
	log := logger.FromContext(c)

	restaurantID, _ := middleware.RestaurantIDFromContext(c)
	activeOnly, _ := strconv.ParseBool(c.QueryParam("active"))

	count, err := h.users.CountUsersByRestaurant(restaurantID, activeOnly)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// UpdateUser applies a partial update to a user of the caller's restaurant
func (h *UserHandler) UpdateUser(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("user", "update")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	existing, err := h.users.GetUserByID(id)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	if existing.RestaurantID != restaurantID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Usuario no encontrado"})
	}

	var req struct {
		FullName *string `json:"full_name"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
		Role     *string `json:"role"`
		Active   *bool   `json:"active"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse user update request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	var role *model.UserRole
	if req.Role != nil {
		r := model.UserRole(*req.Role)
		role = &r
	}

	user, err := h.users.UpdateUser(id, service.UpdateUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
		Active:   req.Active,
	})
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("User updated", zap.Uint("user_id", user.ID))
	return c.JSON(http.StatusOK, user)
}

// ToggleUserStatus activates or deactivates a user
func (h *UserHandler) ToggleUserStatus(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("user", "toggle_status")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	active, err := strconv.ParseBool(c.QueryParam("active"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "active query parameter is required"})
	}

	existing, err := h.users.GetUserByID(id)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	if existing.RestaurantID != restaurantID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Usuario no encontrado"})
	}

	user, err := h.users.ToggleUserStatus(id, active)
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("User status toggled", zap.Uint("user_id", user.ID), zap.Bool("active", active))
	return c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user of the caller's restaurant
func (h *UserHandler) DeleteUser(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("user", "delete")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	existing, err := h.users.GetUserByID(id)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	if existing.RestaurantID != restaurantID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Usuario no encontrado"})
	}

	if err := h.users.DeleteUser(id); err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("User deleted", zap.Uint("user_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Usuario eliminado correctamente"})
}

func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
