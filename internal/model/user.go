package model

import (
	"time"

	"gorm.io/gorm"
)

// UserRole identifies what an account is allowed to do inside its restaurant
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleMesero   UserRole = "MESERO"
	RoleCocinero UserRole = "COCINERO"
)

// IsValid reports whether the role is one of the known values
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMesero, RoleCocinero:
		return true
	}
	return false
}

// User represents a login identity bound to exactly one restaurant.
// Email is unique across all restaurants.
type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	FullName     string         `json:"full_name" gorm:"type:varchar(100);not null"`
	Email        string         `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	Password     string         `json:"-" gorm:"type:varchar(255);not null"`
	Role         UserRole       `json:"role" gorm:"type:varchar(20);not null"`
	Active       bool           `json:"active" gorm:"default:true"`
	RestaurantID uint           `json:"restaurant_id" gorm:"index;not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	Restaurant Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
}
