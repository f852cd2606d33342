package service

import (
	"fmt"

	"github.com/FelipeK57/comandapro-api/internal/model"
)

// ProductService manages the menu of a restaurant
type ProductService struct {
	products    ProductStore
	restaurants RestaurantStore
}

// NewProductService wires a ProductService
func NewProductService(products ProductStore, restaurants RestaurantStore) *ProductService {
	return &ProductService{products: products, restaurants: restaurants}
}

// CreateProductInput carries the fields needed to create a menu item
type CreateProductInput struct {
	RestaurantID uint
	Name         string
	Description  string
	Price        float64
	Category     model.ProductCategory
	ImageURL     string
	Available    bool
}

// CreateProduct adds a menu item to an existing restaurant
func (s *ProductService) CreateProduct(in CreateProductInput) (*model.Product, error) {
	if isBlank(in.Name) {
		return nil, &ValidationError{Message: "El nombre del producto es obligatorio"}
	}
	if in.Price <= 0 {
		return nil, &ValidationError{Message: "El precio del producto debe ser mayor a 0"}
	}
	if !in.Category.IsValid() {
		return nil, &ValidationError{Message: fmt.Sprintf("Categoría no válida: %s", in.Category)}
	}

	restaurant, err := s.restaurants.FindByID(in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, &NotFoundError{Message: fmt.Sprintf("Restaurante no encontrado con ID: %d", in.RestaurantID)}
	}

	product := &model.Product{
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Category:     in.Category,
		ImageURL:     in.ImageURL,
		Available:    in.Available,
	}
	if err := s.products.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProductByID returns a product or a NotFoundError
func (s *ProductService) GetProductByID(id uint) (*model.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &NotFoundError{Message: "Producto no encontrado"}
	}
	return product, nil
}

// GetProductsByRestaurant lists the menu of a restaurant with optional filters
func (s *ProductService) GetProductsByRestaurant(restaurantID uint, filter ProductFilter) ([]model.Product, error) {
	if filter.Category != nil && !filter.Category.IsValid() {
		return nil, &ValidationError{Message: fmt.Sprintf("Categoría no válida: %s", *filter.Category)}
	}
	return s.products.FindByRestaurant(restaurantID, filter)
}

// UpdateProductInput carries optional updates; nil fields are left unchanged
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *model.ProductCategory
	ImageURL    *string
	Available   *bool
}

// UpdateProduct applies a partial update to a menu item
func (s *ProductService) UpdateProduct(id uint, in UpdateProductInput) (*model.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &NotFoundError{Message: "Producto no encontrado"}
	}

	if in.Name != nil {
		if isBlank(*in.Name) {
			return nil, &ValidationError{Message: "El nombre del producto es obligatorio"}
		}
		product.Name = *in.Name
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, &ValidationError{Message: "El precio del producto debe ser mayor a 0"}
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		if !in.Category.IsValid() {
			return nil, &ValidationError{Message: fmt.Sprintf("Categoría no válida: %s", *in.Category)}
		}
		product.Category = *in.Category
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.Available != nil {
		product.Available = *in.Available
	}

	if err := s.products.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a menu item
func (s *ProductService) DeleteProduct(id uint) error {
	deleted, err := s.products.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return &NotFoundError{Message: "Producto no encontrado"}
	}
	return nil
}
