package service

import (
	"fmt"

	"github.com/FelipeK57/comandapro-api/internal/model"
)

// TableService manages the tables of a restaurant
type TableService struct {
	tables      TableStore
	restaurants RestaurantStore
}

// NewTableService wires a TableService
func NewTableService(tables TableStore, restaurants RestaurantStore) *TableService {
	return &TableService{tables: tables, restaurants: restaurants}
}

// CreateTable adds a table to a restaurant. New tables start DISPONIBLE.
func (s *TableService) CreateTable(restaurantID uint, number string) (*model.Table, error) {
	if isBlank(number) {
		return nil, &ValidationError{Message: "El número de la mesa es obligatorio"}
	}

	restaurant, err := s.restaurants.FindByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, &NotFoundError{Message: fmt.Sprintf("Restaurante no encontrado con ID: %d", restaurantID)}
	}

	table := &model.Table{
		RestaurantID: restaurantID,
		Number:       number,
		Status:       model.TableDisponible,
	}
	if err := s.tables.Save(table); err != nil {
		return nil, err
	}
	return table, nil
}

// GetTableByID returns a table or a NotFoundError
func (s *TableService) GetTableByID(id uint) (*model.Table, error) {
	table, err := s.tables.FindByID(id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, &NotFoundError{Message: "Mesa no encontrada"}
	}
	return table, nil
}

// GetTablesByRestaurant lists tables, optionally filtered by status
func (s *TableService) GetTablesByRestaurant(restaurantID uint, status *model.TableStatus) ([]model.Table, error) {
	if status != nil && !status.IsValid() {
		return nil, &ValidationError{Message: fmt.Sprintf("Estado de mesa no válido: %s", *status)}
	}
	return s.tables.FindByRestaurant(restaurantID, status)
}

// UpdateTableStatus marks a table DISPONIBLE or OCUPADA
func (s *TableService) UpdateTableStatus(id uint, status model.TableStatus) (*model.Table, error) {
	if !status.IsValid() {
		return nil, &ValidationError{Message: fmt.Sprintf("Estado de mesa no válido: %s", status)}
	}
	table, err := s.tables.FindByID(id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, &NotFoundError{Message: "Mesa no encontrada"}
	}
	table.Status = status
	if err := s.tables.Save(table); err != nil {
		return nil, err
	}
	return table, nil
}

// DeleteTable removes a table
func (s *TableService) DeleteTable(id uint) error {
	deleted, err := s.tables.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return &NotFoundError{Message: "Mesa no encontrada"}
	}
	return nil
}
