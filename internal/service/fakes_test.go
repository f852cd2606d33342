package service

import (
	"strings"

	"github.com/FelipeK57/comandapro-api/internal/model"
)

// In-memory store implementations backing the service tests.

type fakeUserStore struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]*model.User), nextID: 1}
}

func (f *fakeUserStore) FindByID(id uint) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeUserStore) FindByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) ExistsByEmail(email string) (bool, error) {
	u, _ := f.FindByEmail(email)
	return u != nil, nil
}

func (f *fakeUserStore) FindAll() ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) FindByRestaurant(restaurantID uint, activeOnly bool) ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		if u.RestaurantID != restaurantID {
			continue
		}
		if activeOnly && !u.Active {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) FindByRole(role model.UserRole, restaurantID uint) ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		if u.Role != role {
			continue
		}
		if restaurantID != 0 && u.RestaurantID != restaurantID {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) CountByRestaurant(restaurantID uint, activeOnly bool) (int64, error) {
	users, _ := f.FindByRestaurant(restaurantID, activeOnly)
	return int64(len(users)), nil
}

func (f *fakeUserStore) Save(user *model.User) error {
	if user.ID == 0 {
		user.ID = f.nextID
		f.nextID++
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) Delete(id uint) (bool, error) {
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

type fakeRestaurantStore struct {
	restaurants map[uint]*model.Restaurant
	nextID      uint
}

func newFakeRestaurantStore() *fakeRestaurantStore {
	return &fakeRestaurantStore{restaurants: make(map[uint]*model.Restaurant), nextID: 1}
}

func (f *fakeRestaurantStore) FindByID(id uint) (*model.Restaurant, error) {
	if r, ok := f.restaurants[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeRestaurantStore) FindByName(name string) (*model.Restaurant, error) {
	for _, r := range f.restaurants {
		if r.Name == name {
			copied := *r
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeRestaurantStore) FindAll(activeOnly bool) ([]model.Restaurant, error) {
	var out []model.Restaurant
	for _, r := range f.restaurants {
		if activeOnly && !r.Active {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRestaurantStore) Save(restaurant *model.Restaurant) error {
	if restaurant.ID == 0 {
		restaurant.ID = f.nextID
		f.nextID++
	}
	copied := *restaurant
	f.restaurants[restaurant.ID] = &copied
	return nil
}

type fakeTableStore struct {
	tables map[uint]*model.Table
	nextID uint
}

func newFakeTableStore() *fakeTableStore {
	return &fakeTableStore{tables: make(map[uint]*model.Table), nextID: 1}
}

func (f *fakeTableStore) FindByID(id uint) (*model.Table, error) {
	if t, ok := f.tables[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeTableStore) FindByRestaurant(restaurantID uint, status *model.TableStatus) ([]model.Table, error) {
	var out []model.Table
	for _, t := range f.tables {
		if t.RestaurantID != restaurantID {
			continue
		}
		if status != nil && t.Status != *status {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTableStore) Save(table *model.Table) error {
	if table.ID == 0 {
		table.ID = f.nextID
		f.nextID++
	}
	copied := *table
	f.tables[table.ID] = &copied
	return nil
}

func (f *fakeTableStore) Delete(id uint) (bool, error) {
	if _, ok := f.tables[id]; !ok {
		return false, nil
	}
	delete(f.tables, id)
	return true, nil
}

type fakeProductStore struct {
	products map[uint]*model.Product
	nextID   uint
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: make(map[uint]*model.Product), nextID: 1}
}

func (f *fakeProductStore) FindByID(id uint) (*model.Product, error) {
	if p, ok := f.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeProductStore) FindByRestaurant(restaurantID uint, filter ProductFilter) ([]model.Product, error) {
	var out []model.Product
	for _, p := range f.products {
		if p.RestaurantID != restaurantID {
			continue
		}
		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}
		if filter.AvailableOnly && !p.Available {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductStore) Save(product *model.Product) error {
	if product.ID == 0 {
		product.ID = f.nextID
		f.nextID++
	}
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductStore) Delete(id uint) (bool, error) {
	if _, ok := f.products[id]; !ok {
		return false, nil
	}
	delete(f.products, id)
	return true, nil
}

type fakeOrderStore struct {
	orders map[uint]*model.Order
	nextID uint
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[uint]*model.Order), nextID: 1}
}

func (f *fakeOrderStore) FindByID(id uint) (*model.Order, error) {
	if o, ok := f.orders[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeOrderStore) FindByRestaurant(restaurantID uint, status *model.OrderStatus) ([]model.Order, error) {
	var out []model.Order
	for _, o := range f.orders {
		if o.RestaurantID != restaurantID {
			continue
		}
		if status != nil && o.Status != *status {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderStore) Save(order *model.Order) error {
	if order.ID == 0 {
		order.ID = f.nextID
		f.nextID++
	}
	copied := *order
	f.orders[order.ID] = &copied
	return nil
}

func (f *fakeOrderStore) Delete(id uint) (bool, error) {
	if _, ok := f.orders[id]; !ok {
		return false, nil
	}
	delete(f.orders, id)
	return true, nil
}

type fakeSubscriptionStore struct {
	subscriptions map[uint]*model.Subscription
	nextID        uint
}

func newFakeSubscriptionStore() *fakeSubscriptionStore {
	return &fakeSubscriptionStore{subscriptions: make(map[uint]*model.Subscription), nextID: 1}
}

func (f *fakeSubscriptionStore) FindByRestaurant(restaurantID uint) (*model.Subscription, error) {
	for _, s := range f.subscriptions {
		if s.RestaurantID == restaurantID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeSubscriptionStore) Save(subscription *model.Subscription) error {
	if subscription.ID == 0 {
		subscription.ID = f.nextID
		f.nextID++
	}
	copied := *subscription
	f.subscriptions[subscription.ID] = &copied
	return nil
}

// fakeHasher produces reversible digests so tests can assert the plaintext
// never reaches the store.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Matches(password, digest string) bool {
	return digest == "hashed:"+password
}

// fakeTransactor passes the backing stores straight through. Rollback is not
// simulated; tests that need failure inject erroring stores instead.
type fakeTransactor struct {
	users       UserStore
	restaurants RestaurantStore
}

func (f *fakeTransactor) Transact(fn func(users UserStore, restaurants RestaurantStore) error) error {
	return fn(f.users, f.restaurants)
}
