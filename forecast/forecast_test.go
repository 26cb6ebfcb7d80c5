package forecast

import (
	"errors"
	"testing"

	"app/models"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{Name: "A", Category: "X", CurrentStock: 20, AvgDailySales: 2},
		{Name: "B", Category: "Y", CurrentStock: 5, AvgDailySales: 3},
	}
}

func TestCompute(t *testing.T) {
	forecasted, err := Compute(sampleProducts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forecasted) != 2 {
		t.Fatalf("expected 2 products, got %d", len(forecasted))
	}

	a := forecasted[0]
	if a.Expected7DayDemand != 14 || a.PredictedStockLeft != 6 {
		t.Fatalf("A: expected demand=14 left=6, got demand=%v left=%v", a.Expected7DayDemand, a.PredictedStockLeft)
	}

	// B's raw prediction is 5-21 = -16; it must clamp to zero.
	b := forecasted[1]
	if b.Expected7DayDemand != 21 || b.PredictedStockLeft != 0 {
		t.Fatalf("B: expected demand=21 left=0, got demand=%v left=%v", b.Expected7DayDemand, b.PredictedStockLeft)
	}
}

func TestComputeZeroProduct(t *testing.T) {
	forecasted, err := Compute([]models.Product{{Name: "Z", Category: "X", CurrentStock: 0, AvgDailySales: 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if forecasted[0].Expected7DayDemand != 0 || forecasted[0].PredictedStockLeft != 0 {
		t.Fatalf("expected demand=0 left=0, got demand=%v left=%v", forecasted[0].Expected7DayDemand, forecasted[0].PredictedStockLeft)
	}
}

func TestComputeMalformed(t *testing.T) {
	cases := []struct {
		name    string
		product models.Product
		field   string
	}{
		{"negative stock", models.Product{Name: "A", CurrentStock: -1}, "current_stock"},
		{"negative sales", models.Product{Name: "A", AvgDailySales: -0.5}, "avg_daily_sales"},
		{"empty name", models.Product{CurrentStock: 1}, "name"},
	}

	for _, c := range cases {
		_, err := Compute([]models.Product{{Name: "OK", CurrentStock: 1}, c.product})
		if err == nil {
			t.Fatalf("%s: expected error, got nil", c.name)
		}
		var malformed *MalformedRecordError
		if !errors.As(err, &malformed) {
			t.Fatalf("%s: expected MalformedRecordError, got %T", c.name, err)
		}
		if malformed.Row != 2 {
			t.Fatalf("%s: expected row 2, got %d", c.name, malformed.Row)
		}
		if malformed.Field != c.field {
			t.Fatalf("%s: expected field %q, got %q", c.name, c.field, malformed.Field)
		}
	}
}

func TestComputeIsPure(t *testing.T) {
	products := sampleProducts()
	first, err := Compute(products)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Compute(products)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical output at %d, got %v and %v", i, first[i], second[i])
		}
	}
	if products[0].CurrentStock != 20 || products[1].CurrentStock != 5 {
		t.Fatalf("input slice was mutated: %v", products)
	}
}

func TestKPIs(t *testing.T) {
	summary := KPIs(sampleProducts(), DefaultLowStockThreshold)
	if summary.TotalProducts != 2 {
		t.Fatalf("expected totalProducts=2, got %d", summary.TotalProducts)
	}
	if summary.LowStockCount != 1 { // only B is below 10
		t.Fatalf("expected lowStockCount=1, got %d", summary.LowStockCount)
	}
	if summary.TotalUnits != 25 {
		t.Fatalf("expected totalUnits=25, got %d", summary.TotalUnits)
	}
}

func TestKPIsEmptyTable(t *testing.T) {
	summary := KPIs(nil, DefaultLowStockThreshold)
	if summary.TotalProducts != 0 || summary.LowStockCount != 0 || summary.TotalUnits != 0 {
		t.Fatalf("expected all-zero summary, got %+v", summary)
	}
}

func TestRankByRisk(t *testing.T) {
	forecasted, err := Compute(sampleProducts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ranked := RankByRisk(forecasted)
	if ranked[0].Name != "B" || ranked[1].Name != "A" {
		t.Fatalf("expected order [B A], got [%s %s]", ranked[0].Name, ranked[1].Name)
	}

	// The input must keep its original order.
	if forecasted[0].Name != "A" {
		t.Fatalf("input slice was reordered: %v", forecasted)
	}
}

func TestRankByRiskStableTies(t *testing.T) {
	// Both products clamp to zero predicted stock left.
	forecasted, err := Compute([]models.Product{
		{Name: "First", Category: "X", CurrentStock: 2, AvgDailySales: 3},
		{Name: "Second", Category: "X", CurrentStock: 1, AvgDailySales: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ranked := RankByRisk(forecasted)
	if ranked[0].Name != "First" || ranked[1].Name != "Second" {
		t.Fatalf("tie broke input order: [%s %s]", ranked[0].Name, ranked[1].Name)
	}
}

func TestAtRisk(t *testing.T) {
	forecasted, err := Compute(sampleProducts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	atRisk := AtRisk(forecasted, DefaultAtRiskThreshold)
	if len(atRisk) != 1 || atRisk[0].Name != "B" {
		t.Fatalf("expected [B], got %v", atRisk)
	}

	// A has exactly 6 left; a threshold of 6 still excludes it (strict <).
	if got := AtRisk(forecasted, 6); len(got) != 1 {
		t.Fatalf("threshold=6: expected 1 product, got %d", len(got))
	}
	if got := AtRisk(forecasted, 6.5); len(got) != 2 {
		t.Fatalf("threshold=6.5: expected 2 products, got %d", len(got))
	}
}

func TestAtRiskZeroStockProduct(t *testing.T) {
	forecasted, err := Compute([]models.Product{{Name: "Z", Category: "X", CurrentStock: 0, AvgDailySales: 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 0 < 5 puts the product at risk under the default threshold.
	if got := AtRisk(forecasted, DefaultAtRiskThreshold); len(got) != 1 {
		t.Fatalf("expected 1 product at risk, got %d", len(got))
	}
	// 0 < 0 is false, so a zero threshold excludes it.
	if got := AtRisk(forecasted, 0); len(got) != 0 {
		t.Fatalf("expected empty at-risk set, got %v", got)
	}
}

func TestAtRiskEmptyTable(t *testing.T) {
	if got := AtRisk(nil, DefaultAtRiskThreshold); len(got) != 0 {
		t.Fatalf("expected empty sequence, got %v", got)
	}
	if got := RankByRisk(nil); len(got) != 0 {
		t.Fatalf("expected empty sequence, got %v", got)
	}
}

func TestLookup(t *testing.T) {
	products := sampleProducts()

	p, err := Lookup(products, "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Category != "Y" {
		t.Fatalf("expected category Y, got %q", p.Category)
	}

	_, err = Lookup(products, "Z")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLookupFirstMatchWins(t *testing.T) {
	products := []models.Product{
		{Name: "Dup", Category: "first", CurrentStock: 1},
		{Name: "Dup", Category: "second", CurrentStock: 2},
	}

	p, err := Lookup(products, "Dup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Category != "first" {
		t.Fatalf("expected first match by document order, got %q", p.Category)
	}
}
