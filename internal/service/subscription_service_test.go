package service

import (
	"errors"
	"testing"
	"time"

	"github.com/FelipeK57/comandapro-api/internal/model"
)

func newTestSubscriptionService() (*SubscriptionService, *fakeSubscriptionStore, *fakeRestaurantStore) {
	subscriptions := newFakeSubscriptionStore()
	restaurants := newFakeRestaurantStore()
	return NewSubscriptionService(subscriptions, restaurants), subscriptions, restaurants
}

func TestCreateSubscription(t *testing.T) {
	svc, _, restaurants := newTestSubscriptionService()
	restaurantID := seedRestaurant(t, restaurants)

	start := time.Now()
	end := start.AddDate(0, 1, 0)

	sub, err := svc.CreateSubscription(restaurantID, start, end)
	if err != nil {
		t.Fatalf("create subscription: %v", err)
	}
	if sub.Status != model.SubscriptionActiva {
		t.Errorf("status = %q, want ACTIVA", sub.Status)
	}

	// A restaurant holds at most one subscription
	_, err = svc.CreateSubscription(restaurantID, start, end)
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("second create err = %v, want ConflictError", err)
	}
}

func TestCreateSubscriptionValidatesDates(t *testing.T) {
	svc, _, restaurants := newTestSubscriptionService()
	restaurantID := seedRestaurant(t, restaurants)

	start := time.Now()
	_, err := svc.CreateSubscription(restaurantID, start, start)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}

	_, err = svc.CreateSubscription(99, start, start.AddDate(0, 1, 0))
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("unknown restaurant err = %v, want NotFoundError", err)
	}
}

func TestGetSubscriptionMarksExpired(t *testing.T) {
	svc, subscriptions, restaurants := newTestSubscriptionService()
	restaurantID := seedRestaurant(t, restaurants)

	// Persisted as ACTIVA but already past its end date
	stale := &model.Subscription{
		RestaurantID: restaurantID,
		Status:       model.SubscriptionActiva,
		StartDate:    time.Now().AddDate(0, -2, 0),
		EndDate:      time.Now().AddDate(0, -1, 0),
	}
	if err := subscriptions.Save(stale); err != nil {
		t.Fatalf("seed subscription: %v", err)
	}

	sub, err := svc.GetSubscriptionByRestaurant(restaurantID)
	if err != nil {
		t.Fatalf("get subscription: %v", err)
	}
	if sub.Status != model.SubscriptionVencida {
		t.Errorf("status = %q, want VENCIDA", sub.Status)
	}

	// The transition is persisted, not just reported
	stored, _ := subscriptions.FindByRestaurant(restaurantID)
	if stored.Status != model.SubscriptionVencida {
		t.Errorf("stored status = %q, want VENCIDA", stored.Status)
	}
}

func TestRenewSubscriptionReactivates(t *testing.T) {
	svc, subscriptions, restaurants := newTestSubscriptionService()
	restaurantID := seedRestaurant(t, restaurants)

	expired := &model.Subscription{
		RestaurantID: restaurantID,
		Status:       model.SubscriptionVencida,
		StartDate:    time.Now().AddDate(0, -2, 0),
		EndDate:      time.Now().AddDate(0, -1, 0),
	}
	if err := subscriptions.Save(expired); err != nil {
		t.Fatalf("seed subscription: %v", err)
	}

	newEnd := time.Now().AddDate(0, 1, 0)
	sub, err := svc.RenewSubscription(restaurantID, newEnd)
	if err != nil {
		t.Fatalf("renew: %v", err)
	}
	if sub.Status != model.SubscriptionActiva {
		t.Errorf("status = %q, want ACTIVA after renew", sub.Status)
	}
	if !sub.EndDate.Equal(newEnd) {
		t.Errorf("end date = %v, want %v", sub.EndDate, newEnd)
	}

	// Renewal into the past is rejected
	if _, err := svc.RenewSubscription(restaurantID, time.Now().AddDate(0, 0, -1)); err == nil {
		t.Fatal("past end date accepted")
	}
}

func TestUpdateSubscriptionStatus(t *testing.T) {
	svc, _, restaurants := newTestSubscriptionService()
	restaurantID := seedRestaurant(t, restaurants)

	if _, err := svc.CreateSubscription(restaurantID, time.Now(), time.Now().AddDate(0, 1, 0)); err != nil {
		t.Fatalf("create subscription: %v", err)
	}

	sub, err := svc.UpdateSubscriptionStatus(restaurantID, model.SubscriptionSuspendida)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if sub.Status != model.SubscriptionSuspendida {
		t.Errorf("status = %q, want SUSPENDIDA", sub.Status)
	}

	if _, err := svc.UpdateSubscriptionStatus(restaurantID, "PAUSADA"); err == nil {
		t.Fatal("unknown status accepted")
	}

	_, err = svc.UpdateSubscriptionStatus(99, model.SubscriptionActiva)
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}
