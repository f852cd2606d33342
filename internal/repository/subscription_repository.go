package repository

import (
	"errors"
	"time"

	"github.com/FelipeK57/comandapro-api/internal/model"
	"github.com/FelipeK57/comandapro-api/prometheus"
	"gorm.io/gorm"
)

// SubscriptionRepository implements service.SubscriptionStore on GORM
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a SubscriptionRepository bound to db
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// FindByRestaurant returns the restaurant's subscription, or nil if none exists
func (r *SubscriptionRepository) FindByRestaurant(restaurantID uint) (*model.Subscription, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var subscription model.Subscription
	if err := r.db.Where("restaurant_id = ?", restaurantID).First(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscription, nil
}

// Save inserts or updates a subscription
func (r *SubscriptionRepository) Save(subscription *model.Subscription) error {
	defer prometheus.TrackDBOperation("save")(time.Now())
	return r.db.Save(subscription).Error
}
