package service

import (
	"github.com/FelipeK57/comandapro-api/internal/model"
)

// UserStore is the persistence boundary for users. Find methods return
// (nil, nil) when no row matches.
type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	ExistsByEmail(email string) (bool, error)
	FindAll() ([]model.User, error)
	// FindByRestaurant lists users of a restaurant; activeOnly limits the
	// result to active accounts.
	FindByRestaurant(restaurantID uint, activeOnly bool) ([]model.User, error)
	// FindByRole lists users with a role; restaurantID 0 means all restaurants.
	FindByRole(role model.UserRole, restaurantID uint) ([]model.User, error)
	CountByRestaurant(restaurantID uint, activeOnly bool) (int64, error)
	Save(user *model.User) error
	// Delete removes a user and reports whether a row existed
	Delete(id uint) (bool, error)
}

// RestaurantStore is the persistence boundary for restaurants
type RestaurantStore interface {
	FindByID(id uint) (*model.Restaurant, error)
	FindByName(name string) (*model.Restaurant, error)
	FindAll(activeOnly bool) ([]model.Restaurant, error)
	Save(restaurant *model.Restaurant) error
}

// TableStore is the persistence boundary for restaurant tables
type TableStore interface {
	FindByID(id uint) (*model.Table, error)
	// FindByRestaurant lists tables of a restaurant, optionally filtered by status
	FindByRestaurant(restaurantID uint, status *model.TableStatus) ([]model.Table, error)
	Save(table *model.Table) error
	Delete(id uint) (bool, error)
}

// ProductFilter narrows a product listing. Zero values mean "no filter".
type ProductFilter struct {
	Category      *model.ProductCategory
	AvailableOnly bool
	Name          string
	MinPrice      *float64
	MaxPrice      *float64
}

// ProductStore is the persistence boundary for menu products
type ProductStore interface {
	FindByID(id uint) (*model.Product, error)
	FindByRestaurant(restaurantID uint, filter ProductFilter) ([]model.Product, error)
	Save(product *model.Product) error
	Delete(id uint) (bool, error)
}

// OrderStore is the persistence boundary for orders
type OrderStore interface {
	FindByID(id uint) (*model.Order, error)
	FindByRestaurant(restaurantID uint, status *model.OrderStatus) ([]model.Order, error)
	Save(order *model.Order) error
	Delete(id uint) (bool, error)
}

// SubscriptionStore is the persistence boundary for subscriptions
type SubscriptionStore interface {
	FindByRestaurant(restaurantID uint) (*model.Subscription, error)
	Save(subscription *model.Subscription) error
}

// Transactor runs a function against transaction-bound stores. If the function
// returns an error every write inside it is rolled back.
type Transactor interface {
	Transact(fn func(users UserStore, restaurants RestaurantStore) error) error
}
