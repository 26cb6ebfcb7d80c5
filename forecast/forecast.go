// Package forecast computes the dashboard's demand numbers: per-product
// 7-day expected demand, predicted remaining stock, headline KPIs and the
// at-risk classification. Every function here is a stateless pure
// transform over the table loaded at startup.
package forecast

import (
	"math"
	"sort"

	"app/models"
)

// ForecastDays is the fixed horizon of the flat linear forecast.
const ForecastDays = 7

// Default thresholds; both are overridable through configuration.
const (
	DefaultLowStockThreshold = 10
	DefaultAtRiskThreshold   = 5.0
)

// ValidateProduct checks one row against the record schema. The returned
// error is always a *MalformedRecordError carrying the given row number.
func ValidateProduct(p models.Product, row int) error {
	if p.Name == "" {
		return &MalformedRecordError{Row: row, Field: "name", Reason: "is empty"}
	}
	if p.CurrentStock < 0 {
		return &MalformedRecordError{Row: row, Field: "current_stock", Reason: "is negative"}
	}
	if p.AvgDailySales < 0 {
		return &MalformedRecordError{Row: row, Field: "avg_daily_sales", Reason: "is negative"}
	}
	if math.IsNaN(p.AvgDailySales) || math.IsInf(p.AvgDailySales, 0) {
		return &MalformedRecordError{Row: row, Field: "avg_daily_sales", Reason: "is not a finite number"}
	}
	return nil
}

// Compute attaches the derived forecast fields to every product:
//
//	expected_7_day_demand = avg_daily_sales * 7
//	predicted_stock_left  = max(current_stock - expected_7_day_demand, 0)
//
// Input order is preserved. The input slice is never modified, so
// repeated calls over the same table yield identical output. Invalid
// rows fail the whole call with a *MalformedRecordError.
func Compute(products []models.Product) ([]models.ForecastedProduct, error) {
	forecasted := make([]models.ForecastedProduct, 0, len(products))
	for i, p := range products {
		if err := ValidateProduct(p, i+1); err != nil {
			return nil, err
		}
		demand := p.AvgDailySales * ForecastDays
		forecasted = append(forecasted, models.ForecastedProduct{
			Product:            p,
			Expected7DayDemand: demand,
			PredictedStockLeft: math.Max(float64(p.CurrentStock)-demand, 0),
		})
	}
	return forecasted, nil
}

// KPIs summarises the table for the three headline widgets. A product is
// a low stock item when its current (not predicted) stock is below
// lowStockThreshold.
func KPIs(products []models.Product, lowStockThreshold int) models.KPISummary {
	summary := models.KPISummary{TotalProducts: len(products)}
	for _, p := range products {
		if p.CurrentStock < lowStockThreshold {
			summary.LowStockCount++
		}
		summary.TotalUnits += p.CurrentStock
	}
	return summary
}

// RankByRisk orders products ascending by predicted stock left, so the
// bar chart renders the products closest to stockout first. The sort is
// stable: ties keep their original relative order. The input slice is
// left untouched.
func RankByRisk(forecasted []models.ForecastedProduct) []models.ForecastedProduct {
	ranked := make([]models.ForecastedProduct, len(forecasted))
	copy(ranked, forecasted)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PredictedStockLeft < ranked[j].PredictedStockLeft
	})
	return ranked
}

// AtRisk returns the products whose predicted stock left falls below the
// threshold, in their original relative order. An empty result means
// every product is expected to stay in stock.
func AtRisk(forecasted []models.ForecastedProduct, threshold float64) []models.ForecastedProduct {
	atRisk := []models.ForecastedProduct{}
	for _, f := range forecasted {
		if f.PredictedStockLeft < threshold {
			atRisk = append(atRisk, f)
		}
	}
	return atRisk
}

// Lookup returns the first product whose name matches, scanning in table
// order, or ErrNotFound. First match is the deterministic policy for
// duplicate names.
func Lookup(products []models.Product, name string) (models.Product, error) {
	for _, p := range products {
		if p.Name == name {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}
