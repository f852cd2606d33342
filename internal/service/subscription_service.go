package service

import (
	"fmt"
	"time"

	"github.com/FelipeK57/comandapro-api/internal/model"
)

// SubscriptionService manages the one subscription each restaurant holds
type SubscriptionService struct {
	subscriptions SubscriptionStore
	restaurants   RestaurantStore
}

// NewSubscriptionService wires a SubscriptionService
func NewSubscriptionService(subscriptions SubscriptionStore, restaurants RestaurantStore) *SubscriptionService {
	return &SubscriptionService{subscriptions: subscriptions, restaurants: restaurants}
}

// CreateSubscription opens an ACTIVA subscription for a restaurant
func (s *SubscriptionService) CreateSubscription(restaurantID uint, start, end time.Time) (*model.Subscription, error) {
	if !end.After(start) {
		return nil, &ValidationError{Message: "La fecha de fin debe ser posterior a la de inicio"}
	}

	restaurant, err := s.restaurants.FindByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, &NotFoundError{Message: fmt.Sprintf("Restaurante no encontrado con ID: %d", restaurantID)}
	}

	existing, err := s.subscriptions.FindByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError{Message: "El restaurante ya tiene una suscripción"}
	}

	subscription := &model.Subscription{
		RestaurantID: restaurantID,
		Status:       model.SubscriptionActiva,
		StartDate:    start,
		EndDate:      end,
	}
	if err := s.subscriptions.Save(subscription); err != nil {
		return nil, err
	}
	return subscription, nil
}

// GetSubscriptionByRestaurant returns the restaurant's subscription. A
// subscription past its end date is reported VENCIDA.
func (s *SubscriptionService) GetSubscriptionByRestaurant(restaurantID uint) (*model.Subscription, error) {
	subscription, err := s.subscriptions.FindByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, &NotFoundError{Message: "Suscripción no encontrada"}
	}

	if subscription.Status == model.SubscriptionActiva && subscription.IsExpired(time.Now()) {
		subscription.Status = model.SubscriptionVencida
		if err := s.subscriptions.Save(subscription); err != nil {
			return nil, err
		}
	}
	return subscription, nil
}

// UpdateSubscriptionStatus sets the subscription status of a restaurant
func (s *SubscriptionService) UpdateSubscriptionStatus(restaurantID uint, status model.SubscriptionStatus) (*model.Subscription, error) {
	if !status.IsValid() {
		return nil, &ValidationError{Message: fmt.Sprintf("Estado de suscripción no válido: %s", status)}
	}

	subscription, err := s.subscriptions.FindByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, &NotFoundError{Message: "Suscripción no encontrada"}
	}

	subscription.Status = status
	if err := s.subscriptions.Save(subscription); err != nil {
		return nil, err
	}
	return subscription, nil
}

// RenewSubscription extends the subscription to a new end date and reactivates it
func (s *SubscriptionService) RenewSubscription(restaurantID uint, end time.Time) (*model.Subscription, error) {
	subscription, err := s.subscriptions.FindByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, &NotFoundError{Message: "Suscripción no encontrada"}
	}
	if !end.After(time.Now()) {
		return nil, &ValidationError{Message: "La nueva fecha de fin debe ser futura"}
	}

	subscription.EndDate = end
	subscription.Status = model.SubscriptionActiva
	if err := s.subscriptions.Save(subscription); err != nil {
		return nil, err
	}
	return subscription, nil
}
