package repository

import (
	"errors"
	"time"

	"github.com/FelipeK57/comandapro-api/internal/model"
	"github.com/FelipeK57/comandapro-api/prometheus"
	"gorm.io/gorm"
)

// TableRepository implements service.TableStore on GORM
type TableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a TableRepository bound to db
func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{db: db}
}

// FindByID returns the table with the given ID, or nil if none exists
func (r *TableRepository) FindByID(id uint) (*model.Table, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var table model.Table
	if err := r.db.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &table, nil
}

// FindByRestaurant lists tables of a restaurant, optionally filtered by status
func (r *TableRepository) FindByRestaurant(restaurantID uint, status *model.TableStatus) ([]model.Table, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	query := r.db.Where("restaurant_id = ?", restaurantID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var tables []model.Table
	if err := query.Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// Save inserts or updates a table
func (r *TableRepository) Save(table *model.Table) error {
	defer prometheus.TrackDBOperation("save")(time.Now())
	return r.db.Save(table).Error
}

// Delete soft-deletes a table and reports whether a row existed
func (r *TableRepository) Delete(id uint) (bool, error) {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := r.db.Delete(&model.Table{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
