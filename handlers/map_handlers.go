package handlers

import (
	"github.com/gofiber/fiber/v2"

	"app/models"
)

// The delivery route map is a fixed illustration of the warehouse and
// its customer zones. It is not derived from the product table.
var deliveryMap = models.DeliveryMap{
	Center:    models.MapPoint{Name: "Warehouse", Latitude: 17.385044, Longitude: 78.486671, Icon: "building", Color: "blue"},
	ZoomLevel: 12,
	Markers: []models.MapPoint{
		{Name: "Warehouse", Latitude: 17.385044, Longitude: 78.486671, Icon: "building", Color: "blue"},
		{Name: "Customer A", Latitude: 17.4000, Longitude: 78.4800, Icon: "truck", Color: "green"},
		{Name: "Customer B", Latitude: 17.3950, Longitude: 78.5000, Icon: "truck", Color: "green"},
		{Name: "Customer C", Latitude: 17.3900, Longitude: 78.4700, Icon: "truck", Color: "green"},
	},
	Routes: []models.MapRoute{
		{From: "Warehouse", To: "Customer A", Color: "orange"},
		{From: "Warehouse", To: "Customer B", Color: "orange"},
		{From: "Warehouse", To: "Customer C", Color: "orange"},
	},
}

// HandleGetDeliveryMap returns the static delivery route map.
// GET /api/v1/map/delivery
func HandleGetDeliveryMap() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "success", "data": deliveryMap})
	}
}
