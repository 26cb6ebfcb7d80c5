package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	Subject string `json:"sub"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Core Models ---

// Product is one row of the inventory table, loaded once at startup.
type Product struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	CurrentStock  int     `json:"current_stock"`
	AvgDailySales float64 `json:"avg_daily_sales"`
}

// ForecastedProduct is a Product with its derived forecast fields attached.
// Both fields are pure functions of the product's stock and sales rate.
type ForecastedProduct struct {
	Product
	Expected7DayDemand float64 `json:"expected_7_day_demand"`
	PredictedStockLeft float64 `json:"predicted_stock_left"`
}

// KPISummary holds the three headline widgets of the dashboard.
type KPISummary struct {
	TotalProducts int `json:"total_products"`
	LowStockCount int `json:"low_stock_count"`
	TotalUnits    int `json:"total_units"`
}

// StockAlert is one line of the stockout warning list.
type StockAlert struct {
	Product            string  `json:"product"`
	Category           string  `json:"category"`
	PredictedStockLeft float64 `json:"predicted_stock_left"`
	Message            string  `json:"message"`
}

// ProductDetailField is one of the four emphasis rows of the product
// checker. The level is purely cosmetic (info/success/warning/error).
type ProductDetailField struct {
	Level string `json:"level"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// --- Request DTOs ---

type FeedbackRequest struct {
	Message string `json:"message"`
}

type DeliveryRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type InsightRequest struct {
	Question string `json:"question"`
}

// --- Delivery Map ---

// MapPoint is a fixed marker on the delivery route map.
type MapPoint struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Icon      string  `json:"icon"`
	Color     string  `json:"color"`
}

// MapRoute is a line drawn between two markers on the map.
type MapRoute struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Color string `json:"color"`
}

// DeliveryMap is the static warehouse/customer map rendered by the
// dashboard. It is illustrative only and not derived from the table.
type DeliveryMap struct {
	Center    MapPoint   `json:"center"`
	ZoomLevel int        `json:"zoom_level"`
	Markers   []MapPoint `json:"markers"`
	Routes    []MapRoute `json:"routes"`
}
