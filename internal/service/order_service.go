package service

import (
	"fmt"

	"github.com/FelipeK57/comandapro-api/internal/model"
)

// OrderService manages customer orders. Creating an order occupies its table;
// delivering, cancelling or paying the order releases it.
type OrderService struct {
	orders OrderStore
	tables TableStore
	users  UserStore
}

// NewOrderService wires an OrderService
func NewOrderService(orders OrderStore, tables TableStore, users UserStore) *OrderService {
	return &OrderService{orders: orders, tables: tables, users: users}
}

// CreateOrderInput carries the fields needed to open an order
type CreateOrderInput struct {
	RestaurantID uint
	WaiterID     uint
	TableID      uint
	Subtotal     *float64
	Total        *float64
}

// CreateOrder opens a PENDIENTE order on an available table. The waiter and
// the table must both belong to the order's restaurant.
func (s *OrderService) CreateOrder(in CreateOrderInput) (*model.Order, error) {
	waiter, err := s.users.FindByID(in.WaiterID)
	if err != nil {
		return nil, err
	}
	if waiter == nil || waiter.RestaurantID != in.RestaurantID {
		return nil, &ValidationError{Message: fmt.Sprintf("Mesero no encontrado con ID: %d", in.WaiterID)}
	}

	table, err := s.tables.FindByID(in.TableID)
	if err != nil {
		return nil, err
	}
	if table == nil || table.RestaurantID != in.RestaurantID {
		return nil, &ValidationError{Message: fmt.Sprintf("Mesa no encontrada con ID: %d", in.TableID)}
	}
	if table.Status == model.TableOcupada {
		return nil, &ConflictError{Message: fmt.Sprintf("La mesa %s ya está ocupada", table.Number)}
	}

	order := &model.Order{
		RestaurantID: in.RestaurantID,
		WaiterID:     in.WaiterID,
		TableID:      in.TableID,
		Status:       model.OrderPendiente,
		Subtotal:     in.Subtotal,
		Total:        in.Total,
	}
	if err := s.orders.Save(order); err != nil {
		return nil, err
	}

	table.Status = model.TableOcupada
	if err := s.tables.Save(table); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrderByID returns an order or a NotFoundError
func (s *OrderService) GetOrderByID(id uint) (*model.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &NotFoundError{Message: "Orden no encontrada"}
	}
	return order, nil
}

// GetOrdersByRestaurant lists orders, optionally filtered by status
func (s *OrderService) GetOrdersByRestaurant(restaurantID uint, status *model.OrderStatus) ([]model.Order, error) {
	if status != nil && !status.IsValid() {
		return nil, &ValidationError{Message: fmt.Sprintf("Estado de orden no válido: %s", *status)}
	}
	return s.orders.FindByRestaurant(restaurantID, status)
}

// UpdateOrderStatus moves an order to a new status. Final orders cannot
// change; leaving the table is a side effect of ENTREGADO, CANCELADO and
// PAGADO.
func (s *OrderService) UpdateOrderStatus(id uint, status model.OrderStatus) (*model.Order, error) {
	if !status.IsValid() {
		return nil, &ValidationError{Message: fmt.Sprintf("Estado de orden no válido: %s", status)}
	}

	order, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &NotFoundError{Message: "Orden no encontrada"}
	}
	if order.Status.IsFinal() {
		return nil, &ConflictError{Message: fmt.Sprintf("La orden ya está en estado final: %s", order.Status)}
	}

	order.Status = status
	if err := s.orders.Save(order); err != nil {
		return nil, err
	}

	if status == model.OrderEntregado || status.IsFinal() {
		if err := s.releaseTable(order.TableID); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// UpdateOrderTotals sets the subtotal and total of an order
func (s *OrderService) UpdateOrderTotals(id uint, subtotal, total float64) (*model.Order, error) {
	if subtotal < 0 || total < 0 {
		return nil, &ValidationError{Message: "Los totales no pueden ser negativos"}
	}

	order, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &NotFoundError{Message: "Orden no encontrada"}
	}

	order.Subtotal = &subtotal
	order.Total = &total
	if err := s.orders.Save(order); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes an order
func (s *OrderService) DeleteOrder(id uint) error {
	deleted, err := s.orders.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return &NotFoundError{Message: "Orden no encontrada"}
	}
	return nil
}

func (s *OrderService) releaseTable(tableID uint) error {
	table, err := s.tables.FindByID(tableID)
	if err != nil || table == nil {
		return err
	}
	table.Status = model.TableDisponible
	return s.tables.Save(table)
}
