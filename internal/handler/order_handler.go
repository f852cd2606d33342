package handler

import (
	"net/http"

	"github.com/FelipeK57/comandapro-api/internal/middleware"
	"github.com/FelipeK57/comandapro-api/internal/model"
	"github.com/FelipeK57/comandapro-api/internal/service"
	"github.com/FelipeK57/comandapro-api/pkg/logger"
	"github.com/FelipeK57/comandapro-api/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OrderHandler exposes order management scoped to the caller's restaurant
type OrderHandler struct {
	orders *service.OrderService
}

// NewOrderHandler creates an OrderHandler
func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CreateOrder opens an order on a table. The waiter defaults to the caller.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("order", "create")

	restaurantID, ok := middleware.RestaurantIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req struct {
		WaiterID uint     `json:"waiter_id"`
		TableID  uint     `json:"table_id"`
		Subtotal *float64 `json:"subtotal"`
		Total    *float64 `json:"total"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse order creation request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	waiterID := req.WaiterID
	if waiterID == 0 {
		if callerID, ok := middleware.UserIDFromContext(c); ok {
			waiterID = callerID
		}
	}

	order, err := h.orders.CreateOrder(service.CreateOrderInput{
		RestaurantID: restaurantID,
		WaiterID:     waiterID,
		TableID:      req.TableID,
		Subtotal:     req.Subtotal,
		Total:        req.Total,
	})
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Order created",
		zap.Uint("order_id", order.ID),
		zap.Uint("table_id", order.TableID),
		zap.Uint("waiter_id", order.WaiterID))
	return c.JSON(http.StatusCreated, order)
}

// GetOrder returns an order of the caller's restaurant by ID
func (h *OrderHandler) GetOrder(c echo.Context) error {
	log := logger.FromContext(c)

	restaurantID, _ := middleware.RestaurantIDFromContext(c)
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	order, err := h.orders.GetOrderByID(id)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	if order.RestaurantID != restaurantID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Orden no encontrada"})
	}
	return c.JSON(http.StatusOK, order)
}

// ListOrders lists orders of the caller's restaurant, optionally by status
func (h *OrderHandler) ListOrders(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("order", "list")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)

	var status *model.OrderStatus
	if s := c.QueryParam("status"); s != "" {
		st := model.OrderStatus(s)
		status = &st
	}

	orders, err := h.orders.GetOrdersByRestaurant(restaurantID, status)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus moves an order to a new status
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("order", "update_status")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse order status request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	existing, err := h.orders.GetOrderByID(id)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	if existing.RestaurantID != restaurantID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Orden no encontrada"})
	}

	order, err := h.orders.UpdateOrderStatus(id, model.OrderStatus(req.Status))
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Order status updated",
		zap.Uint("order_id", order.ID),
		zap.String("status", string(order.Status)))
	return c.JSON(http.StatusOK, order)
}

// UpdateOrderTotals sets the subtotal and total of an order
func (h *OrderHandler) UpdateOrderTotals(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("order", "update_totals")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req struct {
		Subtotal float64 `json:"subtotal"`
		Total    float64 `json:"total"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse order totals request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	existing, err := h.orders.GetOrderByID(id)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	if existing.RestaurantID != restaurantID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Orden no encontrada"})
	}

	order, err := h.orders.UpdateOrderTotals(id, req.Subtotal, req.Total)
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Order totals updated", zap.Uint("order_id", order.ID))
	return c.JSON(http.StatusOK, order)
}

// DeleteOrder removes an order of the caller's restaurant
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("order", "delete")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	existing, err := h.orders.GetOrderByID(id)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	if existing.RestaurantID != restaurantID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Orden no encontrada"})
	}

	if err := h.orders.DeleteOrder(id); err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Order deleted", zap.Uint("order_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Orden eliminada correctamente"})
}
