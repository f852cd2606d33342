package repository

import (
	"errors"
	"time"

	"github.com/FelipeK57/comandapro-api/internal/model"
	"github.com/FelipeK57/comandapro-api/prometheus"
	"gorm.io/gorm"
)

// OrderRepository implements service.OrderStore on GORM
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an OrderRepository bound to db
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// FindByID returns the order with the given ID, or nil if none exists
func (r *OrderRepository) FindByID(id uint) (*model.Order, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var order model.Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// FindByRestaurant lists orders of a restaurant, optionally filtered by status
func (r *OrderRepository) FindByRestaurant(restaurantID uint, status *model.OrderStatus) ([]model.Order, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	query := r.db.Where("restaurant_id = ?", restaurantID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var orders []model.Order
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save inserts or updates an order
func (r *OrderRepository) Save(order *model.Order) error {
	defer prometheus.TrackDBOperation("save")(time.Now())
	return r.db.Save(order).Error
}

// Delete soft-deletes an order and reports whether a row existed
func (r *OrderRepository) Delete(id uint) (bool, error) {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := r.db.Delete(&model.Order{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
