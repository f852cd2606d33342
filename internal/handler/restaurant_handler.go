package handler

import (
	"net/http"
	"strconv"

	"github.com/FelipeK57/comandapro-api/internal/middleware"
	"github.com/FelipeK57/comandapro-api/internal/service"
	"github.com/FelipeK57/comandapro-api/pkg/logger"
	"github.com/FelipeK57/comandapro-api/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RestaurantHandler exposes the caller's own restaurant
type RestaurantHandler struct {
	restaurants *service.RestaurantService
}

// NewRestaurantHandler creates a RestaurantHandler
func NewRestaurantHandler(restaurants *service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants}
}

// GetRestaurant returns the caller's restaurant
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	log := logger.FromContext(c)

	restaurantID, ok := middleware.RestaurantIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	restaurant, err := h.restaurants.GetRestaurantByID(restaurantID)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	return c.JSON(http.StatusOK, restaurant)
}

// UpdateRestaurant applies a partial update to the caller's restaurant
func (h *RestaurantHandler) UpdateRestaurant(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("restaurant", "update")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)

	var req struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse restaurant update request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	restaurant, err := h.restaurants.UpdateRestaurant(restaurantID, service.UpdateRestaurantInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Restaurant updated", zap.Uint("restaurant_id", restaurant.ID))
	return c.JSON(http.StatusOK, restaurant)
}

// ToggleRestaurantStatus activates or deactivates the caller's restaurant
func (h *RestaurantHandler) ToggleRestaurantStatus(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("restaurant", "toggle_status")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)

	active, err := strconv.ParseBool(c.QueryParam("active"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "active query parameter is required"})
	}

	restaurant, err := h.restaurants.ToggleRestaurantStatus(restaurantID, active)
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Restaurant status toggled",
		zap.Uint("restaurant_id", restaurant.ID),
		zap.Bool("active", active))
	return c.JSON(http.StatusOK, restaurant)
}
