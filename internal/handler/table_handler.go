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

// TableHandler exposes table management scoped to the caller's restaurant
type TableHandler struct {
	tables *service.TableService
}

// NewTableHandler creates a TableHandler
func NewTableHandler(tables *service.TableService) *TableHandler {
	return &TableHandler{tables: tables}
}

// CreateTable adds a table to the caller's restaurant
func (h *TableHandler) CreateTable(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("table", "create")

	restaurantID, ok := middleware.RestaurantIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req struct {
		Number string `json:"number"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse table creation request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	table, err := h.tables.CreateTable(restaurantID, req.Number)
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Table created",
		zap.Uint("table_id", table.ID),
		zap.String("number", table.Number),
		zap.Uint("restaurant_id", restaurantID))
	return c.JSON(http.StatusCreated, table)
}

// GetTable returns a table of the caller's restaurant by ID
func (h *TableHandler) GetTable(c echo.Context) error {
	log := logger.FromContext(c)

	restaurantID, _ := middleware.RestaurantIDFromContext(c)
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	table, err := h.tables.GetTableByID(id)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	if table.RestaurantID != restaurantID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Mesa no encontrada"})
	}
	return c.JSON(http.StatusOK, table)
}

// ListTables lists tables of the caller's restaurant, optionally by status
func (h *TableHandler) ListTables(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("table", "list")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)

	var status *model.TableStatus
	if s := c.QueryParam("status"); s != "" {
		st := model.TableStatus(s)
		status = &st
	}

	tables, err := h.tables.GetTablesByRestaurant(restaurantID, status)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	return c.JSON(http.StatusOK, tables)
}

// UpdateTableStatus marks a table DISPONIBLE or OCUPADA
func (h *TableHandler) UpdateTableStatus(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("table", "update_status")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse table status request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	existing, err := h.tables.GetTableByID(id)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	if existing.RestaurantID != restaurantID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Mesa no encontrada"})
	}

	table, err := h.tables.UpdateTableStatus(id, model.TableStatus(req.Status))
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Table status updated",
		zap.Uint("table_id", table.ID),
		zap.String("status", string(table.Status)))
	return c.JSON(http.StatusOK, table)
}

// DeleteTable removes a table of the caller's restaurant
func (h *TableHandler) DeleteTable(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("table", "delete")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	existing, err := h.tables.GetTableByID(id)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	if existing.RestaurantID != restaurantID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Mesa no encontrada"})
	}

	if err := h.tables.DeleteTable(id); err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Table deleted", zap.Uint("table_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Mesa eliminada correctamente"})
}
