package services

import (
	"fmt"
	"log"
	"time"

	"boxful/internal/models"
	"boxful/internal/repositories"

	"github.com/google/uuid"
)

// OrderEventPublisher publishes order lifecycle events to the message broker.
type OrderEventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
}

// OrderService handles business logic related to shipment orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher OrderEventPublisher // may be nil when messaging is disabled
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// CreateOrder persists a new shipment order for the given user and publishes
// an order.created event. A publish failure does not fail the request; the
// order is already committed.
func (s *OrderService) CreateOrder(userID string, order *models.Order) (*models.Order, error) {
	order.ID = uuid.New().String()
	order.UserID = userID
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"orderID":       order.ID,
			"userID":        order.UserID,
			"scheduledDate": order.ScheduledDate.Format(time.RFC3339),
			"packages":      len(order.Products),
		}
		if err := s.publisher.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// ListOrdersByUser retrieves all orders owned by the given user.
func (s *OrderService) ListOrdersByUser(userID string) ([]models.Order, error) {
	orders, err := s.orderRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
