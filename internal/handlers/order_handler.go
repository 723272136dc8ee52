package handlers

import (
	"log"
	"time"

	"boxful/internal/models"
	"boxful/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for shipment orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app. All routes
// here assume the auth middleware has already run.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Post("/", h.HandleCreateOrder)
}

// CreateOrderProductRequest describes one package in a new order.
type CreateOrderProductRequest struct {
	Name   string  `json:"name" validate:"required"`
	Weight float64 `json:"weight" validate:"required,gt=0"`
	Length float64 `json:"length" validate:"required,gt=0"`
	Height float64 `json:"height" validate:"required,gt=0"`
	Width  float64 `json:"width" validate:"required,gt=0"`
}

// CreateOrderRequest represents the request body for creating an order.
type CreateOrderRequest struct {
	CollectionAddress    string                      `json:"collectionAddress" validate:"required"`
	DestinationAddress   string                      `json:"destinationAddress" validate:"required"`
	DestinationFirstName string                      `json:"destinationFirstName" validate:"required"`
	DestinationLastName  string                      `json:"destinationLastName" validate:"required"`
	DestinationEmail     string                      `json:"destinationEmail" validate:"required,email"`
	DestinationPhone     string                      `json:"destinationPhone" validate:"required"`
	Department           string                      `json:"department" validate:"required"`
	Province             string                      `json:"province" validate:"required"`
	Reference            string                      `json:"reference" validate:"required"`
	AddressReference     string                      `json:"addressReference" validate:"required"`
	AdditionalNotes      string                      `json:"additionalNotes"`
	ScheduledDate        string                      `json:"scheduledDate" validate:"required,datetime=2006-01-02"`
	Products             []CreateOrderProductRequest `json:"products" validate:"required,min=1,max=20,dive"`
}

// HandleCreateOrder creates a new shipment order owned by the
// authenticated user.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	// ScheduledDate is validated as an ISO-8601 date above
	scheduledDate, _ := time.Parse("2006-01-02", req.ScheduledDate)

	products := make([]models.OrderProduct, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, models.OrderProduct{
			Name:   p.Name,
			Weight: p.Weight,
			Length: p.Length,
			Height: p.Height,
			Width:  p.Width,
		})
	}

	order := models.Order{
		CollectionAddress:    req.CollectionAddress,
		DestinationAddress:   req.DestinationAddress,
		DestinationFirstName: req.DestinationFirstName,
		DestinationLastName:  req.DestinationLastName,
		DestinationEmail:     req.DestinationEmail,
		DestinationPhone:     req.DestinationPhone,
		Department:           req.Department,
		Province:             req.Province,
		Reference:            req.Reference,
		AddressReference:     req.AddressReference,
		AdditionalNotes:      req.AdditionalNotes,
		ScheduledDate:        scheduledDate,
		Products:             products,
	}

	userID, _ := c.Locals("user_id").(string)
	createdOrder, err := h.service.CreateOrder(userID, &order)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(createdOrder)
}

// HandleListOrders retrieves the orders owned by the authenticated user.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	orders, err := h.service.ListOrdersByUser(userID)
	if err != nil {
		log.Printf("Error listing orders for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
		})
	}
	return c.JSON(orders)
}
