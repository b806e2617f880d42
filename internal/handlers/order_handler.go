package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Heather-Rutherford/relational-databases-module-project/internal/models"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/services"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/validation"
)

// OrderHandler handles HTTP requests for orders and the order-product
// association.
type OrderHandler struct {
	service  *services.OrderService
	validate *validation.Validator
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, validate *validation.Validator) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/user/:user_id", h.HandleGetOrdersByUser)
	orderRoutes.Get("/:order_id/products", h.HandleGetProductsByOrder)
	orderRoutes.Get("/:order_id", h.HandleGetOrderByID)
	orderRoutes.Put("/:order_id/add_product/:product_id", h.HandleAddProductToOrder)
	orderRoutes.Delete("/:order_id/remove_product/:product_id", h.HandleRemoveProductFromOrder)
}

// HandleCreateOrder creates a new order for an existing user. The order
// date is assigned server-side.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var payload models.OrderPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing create order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Check(payload); err != nil {
		return respondError(c, err)
	}

	order, err := h.service.CreateOrder(payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrderByID retrieves an order with its associated products.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID, err := idParam(c, "order_id")
	if err != nil {
		return respondError(c, err)
	}
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// HandleAddProductToOrder associates a product with an order. Adding the
// same product twice is a conflict.
func (h *OrderHandler) HandleAddProductToOrder(c *fiber.Ctx) error {
	orderID, err := idParam(c, "order_id")
	if err != nil {
		return respondError(c, err)
	}
	productID, err := idParam(c, "product_id")
	if err != nil {
		return respondError(c, err)
	}

	order, err := h.service.AddProductToOrder(orderID, productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleRemoveProductFromOrder removes a product from an order.
func (h *OrderHandler) HandleRemoveProductFromOrder(c *fiber.Ctx) error {
	orderID, err := idParam(c, "order_id")
	if err != nil {
		return respondError(c, err)
	}
	productID, err := idParam(c, "product_id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.service.RemoveProductFromOrder(orderID, productID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product removed from order successfully",
	})
}

// HandleGetOrdersByUser retrieves every order placed by a user.
func (h *OrderHandler) HandleGetOrdersByUser(c *fiber.Ctx) error {
	userID, err := idParam(c, "user_id")
	if err != nil {
		return respondError(c, err)
	}
	orders, err := h.service.GetOrdersByUser(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleGetProductsByOrder retrieves the products associated with an order.
func (h *OrderHandler) HandleGetProductsByOrder(c *fiber.Ctx) error {
	orderID, err := idParam(c, "order_id")
	if err != nil {
		return respondError(c, err)
	}
	products, err := h.service.GetProductsByOrder(orderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}
