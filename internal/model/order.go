package model

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus tracks an order from creation through payment
type OrderStatus string

const (
	OrderPendiente     OrderStatus = "PENDIENTE"
	OrderEnPreparacion OrderStatus = "EN_PREPARACION"
	OrderListo         OrderStatus = "LISTO"
	OrderEntregado     OrderStatus = "ENTREGADO"
	OrderCancelado     OrderStatus = "CANCELADO"
	OrderPagado        OrderStatus = "PAGADO"
)

// IsValid reports whether the status is one of the known values
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPendiente, OrderEnPreparacion, OrderListo, OrderEntregado,
		OrderCancelado, OrderPagado:
		return true
	}
	return false
}

// IsFinal reports whether the order can no longer change state
func (s OrderStatus) IsFinal() bool {
	return s == OrderCancelado || s == OrderPagado
}

// Order represents a customer order taken by a waiter at a table
type Order struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RestaurantID uint           `json:"restaurant_id" gorm:"index;not null"`
	WaiterID     uint           `json:"waiter_id" gorm:"index;not null"`
	TableID      uint           `json:"table_id" gorm:"index;not null"`
	Status       OrderStatus    `json:"status" gorm:"type:varchar(20);not null;default:'PENDIENTE'"`
	Subtotal     *float64       `json:"subtotal,omitempty"`
	Total        *float64       `json:"total,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	Waiter User  `json:"waiter,omitempty" gorm:"foreignKey:WaiterID"`
	Table  Table `json:"table,omitempty" gorm:"foreignKey:TableID"`
}

// TableName keeps the plural "orders" used by the original schema
func (Order) TableName() string {
	return "orders"
}
