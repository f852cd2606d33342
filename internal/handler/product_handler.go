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

// ProductHandler exposes menu management scoped to the caller's restaurant
type ProductHandler struct {
	products *service.ProductService
}

// NewProductHandler creates a ProductHandler
func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// CreateProduct adds a menu item to the caller's restaurant
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("product", "create")

	restaurantID, ok := middleware.RestaurantIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Category    string  `json:"category"`
		ImageURL    string  `json:"image_url"`
		Available   *bool   `json:"available"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse product creation request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	product, err := h.products.CreateProduct(service.CreateProductInput{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     model.ProductCategory(req.Category),
		ImageURL:     req.ImageURL,
		Available:    available,
	})
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Uint("restaurant_id", restaurantID))
	return c.JSON(http.StatusCreated, product)
}

// GetProduct returns a menu item of the caller's restaurant by ID
func (h *ProductHandler) GetProduct(c echo.Context) error {
	log := logger.FromContext(c)

	restaurantID, _ := middleware.RestaurantIDFromContext(c)
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	product, err := h.products.GetProductByID(id)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	if product.RestaurantID != restaurantID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Producto no encontrado"})
	}
	return c.JSON(http.StatusOK, product)
}

// ListProducts lists the caller's menu with optional filters: category,
// available, name, min_price, max_price
func (h *ProductHandler) ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("product", "list")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)

	var filter service.ProductFilter
	if s := c.QueryParam("category"); s != "" {
		category := model.ProductCategory(s)
		filter.Category = &category
	}
	if s := c.QueryParam("available"); s != "" {
		available, err := strconv.ParseBool(s)
		if err == nil && available {
			filter.AvailableOnly = true
		}
	}
	filter.Name = c.QueryParam("name")
	if s := c.QueryParam("min_price"); s != "" {
		if price, err := strconv.ParseFloat(s, 64); err == nil {
			filter.MinPrice = &price
		}
	}
	if s := c.QueryParam("max_price"); s != "" {
		if price, err := strconv.ParseFloat(s, 64); err == nil {
			filter.MaxPrice = &price
		}
	}

	products, err := h.products.GetProductsByRestaurant(restaurantID, filter)
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Products retrieved", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// UpdateProduct applies a partial update to a menu item
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("product", "update")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	existing, err := h.products.GetProductByID(id)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	if existing.RestaurantID != restaurantID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Producto no encontrado"})
	}

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Category    *string  `json:"category"`
		ImageURL    *string  `json:"image_url"`
		Available   *bool    `json:"available"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse product update request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	var category *model.ProductCategory
	if req.Category != nil {
		cat := model.ProductCategory(*req.Category)
		category = &cat
	}

	product, err := h.products.UpdateProduct(id, service.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    category,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
	})
	if err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Product updated", zap.Uint("product_id", product.ID))
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a menu item of the caller's restaurant
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOperation("product", "delete")

	restaurantID, _ := middleware.RestaurantIDFromContext(c)
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	existing, err := h.products.GetProductByID(id)
	if err != nil {
		return writeServiceError(c, log, err)
	}
	if existing.RestaurantID != restaurantID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Producto no encontrado"})
	}

	if err := h.products.DeleteProduct(id); err != nil {
		return writeServiceError(c, log, err)
	}

	log.Info("Product deleted", zap.Uint("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Producto eliminado correctamente"})
}
