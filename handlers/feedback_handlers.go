package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"app/forecast"
	"app/inventory"
	"app/models"
)

// Feedback and delivery requests are acknowledged but intentionally not
// persisted and never applied back to the table; the inventory model is
// read-only for the whole session.

// HandleSubmitFeedback accepts free-text feedback and returns a static
// acknowledgment with a reference ID.
// POST /api/v1/feedback
func HandleSubmitFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.FeedbackRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
		}

		if strings.TrimSpace(req.Message) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Feedback message is required"})
		}

		reference := uuid.New().String()
		log.Printf("Feedback %s received (%d chars)", reference, len(req.Message))

		return c.JSON(fiber.Map{
			"status":    "success",
			"message":   "Thanks! We'll look into it.",
			"reference": reference,
		})
	}
}

// HandlePlaceDeliveryRequest validates a delivery request against the
// table and acknowledges it. The requested product must exist; the
// quantity must be at least one.
// POST /api/v1/delivery-requests
func HandlePlaceDeliveryRequest(table *inventory.Table) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.DeliveryRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
		}

		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Address) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Name and delivery address are required"})
		}
		if req.Quantity < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Quantity must be at least 1"})
		}

		if _, err := forecast.Lookup(table.Products(), req.Product); err != nil {
			if errors.Is(err, forecast.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": fmt.Sprintf("Product %q not found", req.Product)})
			}
			log.Printf("Error validating delivery request product %q: %v", req.Product, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to validate product"})
		}

		reference := uuid.New().String()
		log.Printf("Delivery request %s: %d units of %q for %s", reference, req.Quantity, req.Product, req.Name)

		return c.JSON(fiber.Map{
			"status":    "success",
			"message":   fmt.Sprintf("Delivery request placed for %d units of %s!", req.Quantity, req.Product),
			"reference": reference,
		})
	}
}
