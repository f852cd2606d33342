package handler

import (
	"github.com/FelipeK57/comandapro-api/internal/model"
	"github.com/FelipeK57/comandapro-api/internal/service"
)

// Slice-backed stores for the handler tests. IDs are assigned on first save.

type memUserStore struct {
	rows []model.User
}

func (m *memUserStore) FindByID(id uint) (*model.User, error) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			u := m.rows[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) FindByEmail(email string) (*model.User, error) {
	for i := range m.rows {
		if m.rows[i].Email == email {
			u := m.rows[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) ExistsByEmail(email string) (bool, error) {
	u, _ := m.FindByEmail(email)
	return u != nil, nil
}

func (m *memUserStore) FindAll() ([]model.User, error) {
	return append([]model.User(nil), m.rows...), nil
}

func (m *memUserStore) FindByRestaurant(restaurantID uint, activeOnly bool) ([]model.User, error) {
	var out []model.User
	for _, u := range m.rows {
		if u.RestaurantID == restaurantID && (!activeOnly || u.Active) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUserStore) FindByRole(role model.UserRole, restaurantID uint) ([]model.User, error) {
	var out []model.User
	for _, u := range m.rows {
		if u.Role == role && (restaurantID == 0 || u.RestaurantID == restaurantID) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUserStore) CountByRestaurant(restaurantID uint, activeOnly bool) (int64, error) {
	users, _ := m.FindByRestaurant(restaurantID, activeOnly)
	return int64(len(users)), nil
}

func (m *memUserStore) Save(user *model.User) error {
	if user.ID == 0 {
		user.ID = uint(len(m.rows) + 1)
		m.rows = append(m.rows, *user)
		return nil
	}
	for i := range m.rows {
		if m.rows[i].ID == user.ID {
			m.rows[i] = *user
			return nil
		}
	}
	m.rows = append(m.rows, *user)
	return nil
}

func (m *memUserStore) Delete(id uint) (bool, error) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memRestaurantStore struct {
	rows []model.Restaurant
}

func (m *memRestaurantStore) FindByID(id uint) (*model.Restaurant, error) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			r := m.rows[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (m *memRestaurantStore) FindByName(name string) (*model.Restaurant, error) {
	for i := range m.rows {
		if m.rows[i].Name == name {
			r := m.rows[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (m *memRestaurantStore) FindAll(activeOnly bool) ([]model.Restaurant, error) {
	var out []model.Restaurant
	for _, r := range m.rows {
		if !activeOnly || r.Active {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRestaurantStore) Save(restaurant *model.Restaurant) error {
	if restaurant.ID == 0 {
		restaurant.ID = uint(len(m.rows) + 1)
		m.rows = append(m.rows, *restaurant)
		return nil
	}
	for i := range m.rows {
		if m.rows[i].ID == restaurant.ID {
			m.rows[i] = *restaurant
			return nil
		}
	}
	m.rows = append(m.rows, *restaurant)
	return nil
}

type memTableStore struct {
	rows []model.Table
}

func (m *memTableStore) FindByID(id uint) (*model.Table, error) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			t := m.rows[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (m *memTableStore) FindByRestaurant(restaurantID uint, status *model.TableStatus) ([]model.Table, error) {
	var out []model.Table
	for _, t := range m.rows {
		if t.RestaurantID == restaurantID && (status == nil || t.Status == *status) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTableStore) Save(table *model.Table) error {
	if table.ID == 0 {
		table.ID = uint(len(m.rows) + 1)
		m.rows = append(m.rows, *table)
		return nil
	}
	for i := range m.rows {
		if m.rows[i].ID == table.ID {
			m.rows[i] = *table
			return nil
		}
	}
	m.rows = append(m.rows, *table)
	return nil
}

func (m *memTableStore) Delete(id uint) (bool, error) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memTransactor struct {
	users       service.UserStore
	restaurants service.RestaurantStore
}

func (m *memTransactor) Transact(fn func(users service.UserStore, restaurants service.RestaurantStore) error) error {
	return fn(m.users, m.restaurants)
}

// plainHasher keeps passwords readable so tests can assert on them
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "plain:" + password, nil
}

func (plainHasher) Matches(password, digest string) bool {
	return digest == "plain:"+password
}
