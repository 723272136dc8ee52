package services_test

import (
	"testing"
	"time"

	"boxful/internal/models"
	"boxful/internal/repositories"
	"boxful/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderEventPublisher is a mock implementation of services.OrderEventPublisher
type MockOrderEventPublisher struct {
	mock.Mock
}

func (m *MockOrderEventPublisher) PublishOrderCreated(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

func newTestOrder() *models.Order {
	return &models.Order{
		CollectionAddress:    "Av. Central 100, San Salvador",
		DestinationAddress:   "Calle Norte 5, Santa Ana",
		DestinationFirstName: "Jane",
		DestinationLastName:  "Doe",
		DestinationEmail:     "jane.doe@example.com",
		DestinationPhone:     "+50398765432",
		Department:           "Santa Ana",
		Province:             "Santa Ana",
		Reference:            "Blue gate",
		AddressReference:     "Next to the bakery",
		ScheduledDate:        time.Now().AddDate(0, 0, 3),
		Products: []models.OrderProduct{
			{Name: "Box", Weight: 2.5, Length: 30, Height: 20, Width: 15},
		},
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	orderRepo := repositories.NewMockOrderRepository()
	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderCreated", mock.Anything).Return(nil).Once()

	orderService := services.NewOrderService(orderRepo, publisher)

	created, err := orderService.CreateOrder("user-123", newTestOrder())
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user-123", created.UserID)
	publisher.AssertExpectations(t)

	stored, err := orderRepo.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", stored.UserID)
}

func TestOrderService_CreateOrder_NilPublisher(t *testing.T) {
	orderRepo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(orderRepo, nil)

	// Messaging disabled: order creation still succeeds
	created, err := orderService.CreateOrder("user-123", newTestOrder())
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestOrderService_ListOrdersByUser(t *testing.T) {
	orderRepo := repositories.NewMockOrderRepository()
	orderService := services.NewOrderService(orderRepo, nil)

	_, err := orderService.CreateOrder("user-a", newTestOrder())
	assert.NoError(t, err)
	_, err = orderService.CreateOrder("user-a", newTestOrder())
	assert.NoError(t, err)
	_, err = orderService.CreateOrder("user-b", newTestOrder())
	assert.NoError(t, err)

	ordersA, err := orderService.ListOrdersByUser("user-a")
	assert.NoError(t, err)
	assert.Len(t, ordersA, 2)

	ordersB, err := orderService.ListOrdersByUser("user-b")
	assert.NoError(t, err)
	assert.Len(t, ordersB, 1)

	// A user with no orders gets an empty list, not an error
	ordersC, err := orderService.ListOrdersByUser("user-c")
	assert.NoError(t, err)
	assert.Empty(t, ordersC)
}
