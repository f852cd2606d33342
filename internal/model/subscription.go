package model

import (
	"time"

	"gorm.io/gorm"
)

// SubscriptionStatus tracks the billing state of a restaurant
type SubscriptionStatus string

const (
	SubscriptionActiva     SubscriptionStatus = "ACTIVA"
	SubscriptionSuspendida SubscriptionStatus = "SUSPENDIDA"
	SubscriptionVencida    SubscriptionStatus = "VENCIDA"
)

// IsValid reports whether the status is one of the known values
func (s SubscriptionStatus) IsValid() bool {
	return s == SubscriptionActiva || s == SubscriptionSuspendida || s == SubscriptionVencida
}

// Subscription represents a restaurant's service subscription. Each restaurant
// holds at most one.
type Subscription struct {
	ID           uint               `json:"id" gorm:"primaryKey"`
	RestaurantID uint               `json:"restaurant_id" gorm:"uniqueIndex;not null"`
	Status       SubscriptionStatus `json:"status" gorm:"type:varchar(20);not null"`
	StartDate    time.Time          `json:"start_date" gorm:"not null"`
	EndDate      time.Time          `json:"end_date" gorm:"not null"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	DeletedAt    gorm.DeletedAt     `json:"-" gorm:"index"`
}

// IsExpired reports whether the subscription period has ended
func (s *Subscription) IsExpired(now time.Time) bool {
	return now.After(s.EndDate)
}
