package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"app/config"
	"app/forecast"
	"app/inventory"
	"app/models"
)

// HandleGenerateInsight asks the Gemini API for a narrative read of the
// current forecast snapshot, optionally focused by a user question. The
// response is commentary for the dashboard only; it never feeds back
// into the forecast numbers.
// POST /api/v1/assistant/insight
func HandleGenerateInsight(table *inventory.Table) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.InsightRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
		}

		if config.AppConfig.GeminiAPIKey == "" {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "message": "Assistant is not configured"})
		}

		forecasted, err := forecast.Compute(table.Products())
		if err != nil {
			log.Printf("Error computing forecast for insight: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error()})
		}

		prompt := buildInsightPrompt(forecasted, req.Question)

		ctx := context.Background()
		client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
		if err != nil {
			log.Printf("Error creating Gemini client: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to initialize Gemini client"})
		}
		defer client.Close()

		model := client.GenerativeModel("gemini-1.5-pro-latest")
		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			log.Printf("Error generating insight: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to generate insight"})
		}

		return c.JSON(fiber.Map{"status": "success", "data": resp})
	}
}

// buildInsightPrompt renders the forecast snapshot as plain text for the
// model, followed by the user's question if any.
func buildInsightPrompt(forecasted []models.ForecastedProduct, question string) string {
	var b strings.Builder
	b.WriteString("You are an inventory analyst for a retail store. Current 7-day forecast:\n")
	for _, f := range forecasted {
		fmt.Fprintf(&b, "- %s (%s): %d in stock, %.1f expected demand, %.1f predicted left\n",
			f.Name, f.Category, f.CurrentStock, f.Expected7DayDemand, f.PredictedStockLeft)
	}
	if strings.TrimSpace(question) != "" {
		b.WriteString("\nQuestion: ")
		b.WriteString(question)
	} else {
		b.WriteString("\nSummarize the stockout risks in two or three sentences.")
	}
	return b.String()
}
