package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Heather-Rutherford/relational-databases-module-project/internal/models"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/services"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/validation"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validation.Validator
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, validate *validation.Validator) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	product, err := h.service.GetProductByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var payload models.ProductPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Check(payload); err != nil {
		return respondError(c, err)
	}

	product, err := h.service.CreateProduct(payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct fully replaces an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var payload models.ProductPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Check(payload); err != nil {
		return respondError(c, err)
	}

	product, err := h.service.UpdateProduct(id, payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.DeleteProduct(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}
