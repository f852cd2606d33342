package handler

import (
	"net/http"
	"time"

	"github.com/FelipeK57/comandapro-api/internal/middleware"
	"github.com/FelipeK57/comandapro-api/internal/model"
	"github.com/FelipeK57/comandapro-api/internal/service"
	"github.com/FelipeK57/comandapro-api/pkg/logger"
	"github.com/FelipeK57/comandapro-api/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SubscriptionHandler exposes the caller's restaurant subscription
type SubscriptionHandler struct {
	subscriptions *service.SubscriptionService
}

// NewSubscriptionHandler creates a SubscriptionHandler
func NewSubscriptionHandler(subscriptions *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

// CreateSubscription opens a subscription for the caller's restaurant
func (h *SubscriptionHandler) CreateSubscription(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("subscription", "create")

	restaurantID, ok := middleware.RestaurantIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req struct {
		StartDate time.Time `json:"start_date"`
		EndDate   time.Time `json:"end_date"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse subscription creation request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	subscription, err := h.subscriptions.CreateSubscription(restaurantID, req.StartDate, req.EndDate)
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Subscription created",
		zap.Uint("subscription_id", subscription.ID),
		zap.Uint("restaurant_id", restaurantID))
	return c.JSON(http.StatusCreated, subscription)
}

// GetSubscription returns the caller's subscription
func (h *SubscriptionHandler) GetSubscription(c echo.Context) error {
	log := logger.FromContext(c)

	restaurantID, _ := middleware.RestaurantIDFromContext(c)

	subscription, err := h.subscriptions.GetSubscriptionByRestaurant(restaurantID)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	return c.JSON(http.StatusOK, subscription)
}

// UpdateSubscriptionStatus sets the caller's subscription status
func (h *SubscriptionHandler) UpdateSubscriptionStatus(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("subscription", "update_status")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse subscription status request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	subscription, err := h.subscriptions.UpdateSubscriptionStatus(restaurantID, model.SubscriptionStatus(req.Status))
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Subscription status updated",
		zap.Uint("subscription_id", subscription.ID),
		zap.String("status", string(subscription.Status)))
	return c.JSON(http.StatusOK, subscription)
}

// RenewSubscription extends the caller's subscription
func (h *SubscriptionHandler) RenewSubscription(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("subscription", "renew")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)

	var req struct {
		EndDate time.Time `json:"end_date"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse subscription renewal request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	subscription, err := h.subscriptions.RenewSubscription(restaurantID, req.EndDate)
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Subscription renewed",
		zap.Uint("subscription_id", subscription.ID),
		zap.Time("end_date", subscription.EndDate))
	return c.JSON(http.StatusOK, subscription)
}
