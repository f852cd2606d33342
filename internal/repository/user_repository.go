package repository

import (
	"errors"
	"time"

	"github.com/FelipeK57/comandapro-api/internal/model"
	"github.com/FelipeK57/comandapro-api/prometheus"
	"gorm.io/gorm"
)

// UserRepository implements service.UserStore on GORM
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository bound to db
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID returns the user with the given ID, or nil if none exists
func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the user with the given email, or nil if none exists
func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail reports whether a user with the email exists
func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var count int64
	if err := r.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll lists all users
func (r *UserRepository) FindAll() ([]model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var users []model.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByRestaurant lists users of a restaurant
func (r *UserRepository) FindByRestaurant(restaurantID uint, activeOnly bool) ([]model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	query := r.db.Where("restaurant_id = ?", restaurantID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	var users []model.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByRole lists users with a role; restaurantID 0 means all restaurants
func (r *UserRepository) FindByRole(role model.UserRole, restaurantID uint) ([]model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	query := r.db.Where("role = ?", role)
	if restaurantID != 0 {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	var users []model.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CountByRestaurant counts users of a restaurant
func (r *UserRepository) CountByRestaurant(restaurantID uint, activeOnly bool) (int64, error) {
	defer prometheus.TrackDBOperation("count")(time.Now())
	query := r.db.Model(&model.User{}).Where("restaurant_id = ?", restaurantID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save inserts or updates a user
func (r *UserRepository) Save(user *model.User) error {
	defer prometheus.TrackDBOperation("save")(time.Now())
	return r.db.Save(user).Error
}

// Delete soft-deletes a user and reports whether a row existed
func (r *UserRepository) Delete(id uint) (bool, error) {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := r.db.Delete(&model.User{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
