package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"brasserie/internal/domain"
)

type OrderService struct {
	repo      OrderRepository
	publisher EventPublisher
}

func NewOrderService(repo OrderRepository, publisher EventPublisher) *OrderService {
	return &OrderService{repo: repo, publisher: publisher}
}

// Open starts a dine-in order for serverID on the given table. The table is
// flipped to occupied inside the same storage transaction; if the order
// cannot be created the flag stays untouched.
func (s *OrderService) Open(ctx context.Context, tableID, serverID int, notes string) (*domain.Order, error) {
	order := &domain.Order{
		TableID:  tableID,
		ServerID: &serverID,
		Status:   domain.OrderOpen,
		Notes:    notes,
	}
	if err := s.repo.OpenOrder(order); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.OrderEvent{
		Type:    domain.EventOrderOpened,
		OrderID: order.ID,
		TableID: tableID,
	})
	return order, nil
}

// AddItem appends a line item. When unitPrice is zero the current dish price
// is captured as a snapshot; later dish price changes leave the item alone.
func (s *OrderService) AddItem(ctx context.Context, orderID, dishID, quantity int, unitPrice decimal.Decimal, notes string) (*domain.OrderItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", domain.ErrValidation)
	}
	if _, err := s.repo.GetOrder(orderID); err != nil {
		return nil, err
	}
	dish, err := s.repo.GetDish(dishID)
	if err != nil {
		return nil, err
	}

	if unitPrice.IsZero() {
		unitPrice = dish.Price
	}
	item := &domain.OrderItem{
		OrderID:   orderID,
		DishID:    dishID,
		DishName:  dish.Name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Notes:     notes,
	}
	if err := s.repo.AddOrderItem(item); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.OrderEvent{
		Type:     domain.EventItemAdded,
		OrderID:  orderID,
		DishID:   dishID,
		Quantity: quantity,
	})
	return item, nil
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	return s.repo.GetOrder(orderID)
}

func (s *OrderService) List(status string) ([]domain.Order, error) {
	if status != "" && !domain.ValidOrderStatus(status) {
		return nil, fmt.Errorf("unknown order status %q: %w", status, domain.ErrValidation)
	}
	return s.repo.ListOrders(status)
}

// Total is recomputed from the stored items on every call.
func (s *OrderService) Total(orderID int) (decimal.Decimal, error) {
	return s.repo.OrderTotal(orderID)
}

// SetStatus allows any transition among the known statuses; staff use it for
// manual corrections. PAID is normally reached through invoice generation.
func (s *OrderService) SetStatus(orderID int, status string) error {
	if !domain.ValidOrderStatus(status) {
		return fmt.Errorf("unknown order status %q: %w", status, domain.ErrValidation)
	}
	return s.repo.SetOrderStatus(orderID, status)
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	event.Timestamp = time.Now()
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		log.WithError(err).WithField("type", event.Type).Warn("Failed to publish order event")
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
