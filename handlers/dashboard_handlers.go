package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"app/config"
	"app/forecast"
	"app/inventory"
	"app/models"
	"app/utils"
)

// Handlers close over the immutable product table instead of reaching
// for package-global state; routes construct them once at startup.

// HandleGetKPIs returns the three headline widgets: total products, low
// stock items, total units in stock.
// GET /api/v1/dashboard/kpis
func HandleGetKPIs(table *inventory.Table) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary := forecast.KPIs(table.Products(), config.AppConfig.LowStockThreshold)
		return c.JSON(fiber.Map{"status": "success", "data": summary})
	}
}

// HandleGetForecastChart returns the data behind the "Predicted Stock
// Left After 7 Days" bar chart: every product with its forecast fields,
// ascending by predicted stock left so the most at-risk bars render
// first.
// GET /api/v1/dashboard/chart
func HandleGetForecastChart(table *inventory.Table) fiber.Handler {
	return func(c *fiber.Ctx) error {
		forecasted, err := forecast.Compute(table.Products())
		if err != nil {
			log.Printf("Error computing forecast for chart: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error()})
		}

		return c.JSON(fiber.Map{
			"status": "success",
			"title":  "Predicted Stock Left After 7 Days",
			"data":   forecast.RankByRisk(forecasted),
		})
	}
}

// HandleGetAlerts returns the stockout warning list: one entry per
// product whose predicted stock left falls below the at-risk threshold.
// An optional ?threshold= query overrides the configured default. When
// nothing is at risk the response carries the all-in-stock affirmation
// and an empty list.
// GET /api/v1/dashboard/alerts
func HandleGetAlerts(table *inventory.Table) fiber.Handler {
	return func(c *fiber.Ctx) error {
		threshold := config.AppConfig.AtRiskThreshold
		if raw := c.Query("threshold"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "threshold must be a number"})
			}
			threshold = v
		}

		forecasted, err := forecast.Compute(table.Products())
		if err != nil {
			log.Printf("Error computing forecast for alerts: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error()})
		}

		atRisk := forecast.AtRisk(forecasted, threshold)

		alerts := []models.StockAlert{}
		for _, f := range atRisk {
			alerts = append(alerts, models.StockAlert{
				Product:            f.Name,
				Category:           f.Category,
				PredictedStockLeft: f.PredictedStockLeft,
				Message:            fmt.Sprintf("%s may run out soon. Only %d units will be left after 7 days.", f.Name, int(f.PredictedStockLeft)),
			})
		}

		if len(alerts) == 0 {
			return c.JSON(fiber.Map{
				"status":  "success",
				"message": "All products are expected to stay in stock.",
				"alerts":  alerts,
			})
		}

		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Products at risk of stockout",
			"alerts":  alerts,
		})
	}
}

// HandleListProducts returns the full table with forecast fields,
// paginated with ?page= and ?pageSize=.
// GET /api/v1/products
func HandleListProducts(table *inventory.Table) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		pageSize := c.QueryInt("pageSize", 10)

		forecasted, err := forecast.Compute(table.Products())
		if err != nil {
			log.Printf("Error computing forecast for product list: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error()})
		}

		start, end := utils.PageBounds(len(forecasted), page, pageSize)

		return c.JSON(fiber.Map{
			"status":     "success",
			"data":       forecasted[start:end],
			"pagination": utils.CreatePagination(len(forecasted), page, pageSize),
		})
	}
}

// HandleGetProduct looks up a single product by name and returns its
// forecast rendered as the product checker's four emphasis rows. The
// levels are cosmetic display hints, not an alerting hierarchy.
// GET /api/v1/products/:name
func HandleGetProduct(table *inventory.Table) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := url.PathUnescape(c.Params("name"))
		if err != nil {
			name = c.Params("name")
		}

		product, err := forecast.Lookup(table.Products(), name)
		if err != nil {
			if errors.Is(err, forecast.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": fmt.Sprintf("Product %q not found", name)})
			}
			log.Printf("Error looking up product %q: %v", name, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to look up product"})
		}

		forecasted, err := forecast.Compute([]models.Product{product})
		if err != nil {
			log.Printf("Error computing forecast for product %q: %v", name, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error()})
		}
		f := forecasted[0]

		details := []models.ProductDetailField{
			{Level: "info", Label: "Product", Value: fmt.Sprintf("%s - Category: %s", f.Name, f.Category)},
			{Level: "success", Label: "Current Stock", Value: fmt.Sprintf("%d units", f.CurrentStock)},
			{Level: "warning", Label: "7-Day Demand", Value: fmt.Sprintf("%s units", formatUnits(f.Expected7DayDemand))},
			{Level: "error", Label: "Predicted Stock Left", Value: fmt.Sprintf("%s units", formatUnits(f.PredictedStockLeft))},
		}

		return c.JSON(fiber.Map{
			"status":  "success",
			"data":    f,
			"details": details,
		})
	}
}

// formatUnits renders a unit count without trailing zeros (14, not
// 14.000000).
func formatUnits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
