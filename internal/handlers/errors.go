package handlers

import (
	"errors"
	"log"

	"tienda/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondError maps the typed store errors onto HTTP statuses: validation
// failures and conflicts are client-caused (400/409), a miss is a normal
// negative result (404), storage failures are server-caused (500).
func respondError(c *fiber.Ctx, err error) error {
	var (
		validationErr *models.ValidationError
		notFoundErr   *models.NotFoundError
		conflictErr   *models.ConflictError
		storageErr    *models.StorageError
	)
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Validation failed",
			"errors":  validationErr.Fields,
		})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "error",
			"message": notFoundErr.Error(),
		})
	case errors.As(err, &conflictErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"status":  "error",
			"message": conflictErr.Error(),
		})
	case errors.As(err, &storageErr):
		log.Printf("Storage failure: %v", storageErr)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Storage failure",
		})
	default:
		log.Printf("Unexpected error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}
}
