package model

import (
	"time"

	"gorm.io/gorm"
)

// ProductCategory groups menu items into the fixed set of menu sections
type ProductCategory string

const (
	CategoryEntradas          ProductCategory = "ENTRADAS"
	CategoryPlatosPrincipales ProductCategory = "PLATOS_PRINCIPALES"
	CategoryEnsaladas         ProductCategory = "ENSALADAS"
	CategoryPescados          ProductCategory = "PESCADOS"
	CategoryPostres           ProductCategory = "POSTRES"
	CategoryBebidas           ProductCategory = "BEBIDAS"
	CategoryPastas            ProductCategory = "PASTAS"
	CategoryLicores           ProductCategory = "LICORES"
	CategoryAdicionales       ProductCategory = "ADICIONALES"
)

// IsValid reports whether the category is one of the known values
func (c ProductCategory) IsValid() bool {
	switch c {
	case CategoryEntradas, CategoryPlatosPrincipales, CategoryEnsaladas,
		CategoryPescados, CategoryPostres, CategoryBebidas, CategoryPastas,
		CategoryLicores, CategoryAdicionales:
		return true
	}
	return false
}

// Product represents a menu item belonging to a restaurant
type Product struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	RestaurantID uint            `json:"restaurant_id" gorm:"index;not null"`
	Name         string          `json:"name" gorm:"type:varchar(255);not null"`
	Description  string          `json:"description,omitempty" gorm:"type:varchar(500)"`
	Price        float64         `json:"price" gorm:"not null"`
	Category     ProductCategory `json:"category" gorm:"type:varchar(30);not null"`
	ImageURL     string          `json:"image_url,omitempty" gorm:"type:varchar(500)"`
	Available    bool            `json:"available" gorm:"default:true"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `json:"-" gorm:"index"`
}
