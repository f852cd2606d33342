package service

import "github.com/FelipeK57/comandapro-api/internal/model"

// RestaurantService manages restaurant entities. Restaurants are only created
// through registration; this service covers reads and updates.
type RestaurantService struct {
	restaurants RestaurantStore
}

// NewRestaurantService wires a RestaurantService
func NewRestaurantService(restaurants RestaurantStore) *RestaurantService {
	return &RestaurantService{restaurants: restaurants}
}

// GetRestaurantByID returns a restaurant or a NotFoundError
func (s *RestaurantService) GetRestaurantByID(id uint) (*model.Restaurant, error) {
	restaurant, err := s.restaurants.FindByID(id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, &NotFoundError{Message: "Restaurante no encontrado"}
	}
	return restaurant, nil
}

// GetAllRestaurants lists restaurants, optionally only active ones
func (s *RestaurantService) GetAllRestaurants(activeOnly bool) ([]model.Restaurant, error) {
	return s.restaurants.FindAll(activeOnly)
}

// UpdateRestaurantInput carries optional updates; nil fields are left unchanged
type UpdateRestaurantInput struct {
	Name  *string
	Email *string
}

// UpdateRestaurant applies a partial update. A name change checks the global
// uniqueness rule first.
func (s *RestaurantService) UpdateRestaurant(id uint, in UpdateRestaurantInput) (*model.Restaurant, error) {
	restaurant, err := s.restaurants.FindByID(id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, &NotFoundError{Message: "Restaurante no encontrado"}
	}

	if in.Name != nil && *in.Name != restaurant.Name {
		if isBlank(*in.Name) {
			return nil, &ValidationError{Message: "El nombre del restaurante es obligatorio"}
		}
		existing, err := s.restaurants.FindByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, &ConflictError{Message: "El nombre del restaurante ya está en uso"}
		}
		restaurant.Name = *in.Name
	}
	if in.Email != nil {
		restaurant.Email = *in.Email
	}

	if err := s.restaurants.Save(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// ToggleRestaurantStatus activates or deactivates a restaurant
func (s *RestaurantService) ToggleRestaurantStatus(id uint, active bool) (*model.Restaurant, error) {
	restaurant, err := s.restaurants.FindByID(id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, &NotFoundError{Message: "Restaurante no encontrado"}
	}
	restaurant.Active = active
	if err := s.restaurants.Save(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}
