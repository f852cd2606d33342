package model

import (
	"time"

	"gorm.io/gorm"
)

// Restaurant represents a registered restaurant. It is the unit of data
// isolation: every table, product, order and user belongs to exactly one
// restaurant.
type Restaurant struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Email     string         `json:"email,omitempty" gorm:"type:varchar(100)"`
	Active    bool           `json:"active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
