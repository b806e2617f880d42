// Package handlers exposes the HTTP surface. Handlers parse and validate
// request input, delegate to the service layer, and map each outcome to
// exactly one status: 404 for missing entities and empty collections,
// 409 for constraint conflicts, 422 for validation failures, 500 for
// anything else.
package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Heather-Rutherford/relational-databases-module-project/internal/apperrors"
	"github.com/Heather-Rutherford/relational-databases-module-project/internal/validation"
)

// respondError maps a service error onto the response. Validation errors
// serialize as the bare field-to-messages map so clients see every
// violation keyed by field name.
func respondError(c *fiber.Ctx, err error) error {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(validationErrs)
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	if errors.Is(err, apperrors.ErrConflict) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	log.Printf("Unexpected error handling %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
		"error":   err.Error(),
	})
}

// idParam parses a positive integer route parameter. A non-numeric value
// can never name an existing record, so it reads as not-found.
func idParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		return 0, apperrors.NotFound("invalid %s", name)
	}
	return uint(id), nil
}
