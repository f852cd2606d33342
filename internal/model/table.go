package model

import (
	"time"

	"gorm.io/gorm"
)

// TableStatus identifies whether a table can receive a new order
type TableStatus string

const (
	TableDisponible TableStatus = "DISPONIBLE"
	TableOcupada    TableStatus = "OCUPADA"
)

// IsValid reports whether the status is one of the known values
func (s TableStatus) IsValid() bool {
	return s == TableDisponible || s == TableOcupada
}

// Table represents a physical table inside a restaurant
type Table struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RestaurantID uint           `json:"restaurant_id" gorm:"index;not null"`
	Number       string         `json:"number" gorm:"type:varchar(20);not null"`
	Status       TableStatus    `json:"status" gorm:"type:varchar(20);not null;default:'DISPONIBLE'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName keeps the plural "tables" used by the original schema
func (Table) TableName() string {
	return "tables"
}
