package repository

import (
	"errors"
	"time"

	"github.com/FelipeK57/comandapro-api/internal/model"
	"github.com/FelipeK57/comandapro-api/internal/service"
	"github.com/FelipeK57/comandapro-api/prometheus"
	"gorm.io/gorm"
)

// ProductRepository implements service.ProductStore on GORM
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a ProductRepository bound to db
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindByID returns the product with the given ID, or nil if none exists
func (r *ProductRepository) FindByID(id uint) (*model.Product, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var product model.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// FindByRestaurant lists the menu of a restaurant applying the given filter
func (r *ProductRepository) FindByRestaurant(restaurantID uint, filter service.ProductFilter) ([]model.Product, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	query := r.db.Where("restaurant_id = ?", restaurantID)
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.AvailableOnly {
		query = query.Where("available = ?", true)
	}
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save inserts or updates a product
func (r *ProductRepository) Save(product *model.Product) error {
	defer prometheus.TrackDBOperation("save")(time.Now())
	return r.db.Save(product).Error
}

// Delete soft-deletes a product and reports whether a row existed
func (r *ProductRepository) Delete(id uint) (bool, error) {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := r.db.Delete(&model.Product{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
