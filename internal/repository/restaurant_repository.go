package repository

import (
	"errors"
	"time"

	"github.com/FelipeK57/comandapro-api/internal/model"
	"github.com/FelipeK57/comandapro-api/prometheus"
	"gorm.io/gorm"
)

// RestaurantRepository implements service.RestaurantStore on GORM
type RestaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a RestaurantRepository bound to db
func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// FindByID returns the restaurant with the given ID, or nil if none exists
func (r *RestaurantRepository) FindByID(id uint) (*model.Restaurant, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var restaurant model.Restaurant
	if err := r.db.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &restaurant, nil
}

// FindByName returns the restaurant with the exact name, or nil if none exists
func (r *RestaurantRepository) FindByName(name string) (*model.Restaurant, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var restaurant model.Restaurant
	if err := r.db.Where("name = ?", name).First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &restaurant, nil
}

// FindAll lists restaurants, optionally only active ones
func (r *RestaurantRepository) FindAll(activeOnly bool) ([]model.Restaurant, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	query := r.db
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	var restaurants []model.Restaurant
	if err := query.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// Save inserts or updates a restaurant
func (r *RestaurantRepository) Save(restaurant *model.Restaurant) error {
	defer prometheus.TrackDBOperation("save")(time.Now())
	return r.db.Save(restaurant).Error
}
