package routes

import (
	"github.com/gofiber/fiber/v2"

	"app/handlers"
	"app/inventory"
	"app/middleware"
)

// SetupRoutes defines all the routes for the application. The product
// table is passed in once; handlers close over it.
func SetupRoutes(app *fiber.App, table *inventory.Table) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// --- Dashboard Routes ---
	dashboard := api.Group("/dashboard")
	dashboard.Get("/kpis", handlers.HandleGetKPIs(table))
	dashboard.Get("/chart", handlers.HandleGetForecastChart(table))
	dashboard.Get("/alerts", handlers.HandleGetAlerts(table))

	// --- Product Routes ---
	api.Get("/products", handlers.HandleListProducts(table))
	api.Get("/products/:name", handlers.HandleGetProduct(table))

	// --- Feedback & Delivery ---
	api.Post("/feedback", handlers.HandleSubmitFeedback())
	api.Post("/delivery-requests", handlers.HandlePlaceDeliveryRequest(table))

	// --- Delivery Map ---
	api.Get("/map/delivery", handlers.HandleGetDeliveryMap())

	// --- Assistant (costs an API key, so it sits behind auth) ---
	assistant := api.Group("/assistant", middleware.Authenticate)
	assistant.Post("/insight", handlers.HandleGenerateInsight(table))
}
