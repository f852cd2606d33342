package repository

import (
	"github.com/FelipeK57/comandapro-api/internal/service"
	"gorm.io/gorm"
)

// GormTransactor implements service.Transactor with a database transaction.
// The stores handed to the callback are bound to the transaction, so a
// returned error rolls back every write made through them.
type GormTransactor struct {
	db *gorm.DB
}

// NewGormTransactor creates a GormTransactor bound to db
func NewGormTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// Transact runs fn inside a transaction
func (t *GormTransactor) Transact(fn func(users service.UserStore, restaurants service.RestaurantStore) error) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewUserRepository(tx), NewRestaurantRepository(tx))
	})
}
