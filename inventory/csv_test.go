package inventory

import (
	"errors"
	"strings"
	"testing"

	"app/forecast"
	"app/models"
)

const validCSV = `Product,Category,Current_Stock,Avg_Daily_Sales
Milk,Dairy,25,4
Bread,Bakery,18,3.5
`

func TestReadCSV(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(validCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.Len())
	}

	products := table.Products()
	want := models.Product{Name: "Milk", Category: "Dairy", CurrentStock: 25, AvgDailySales: 4}
	if products[0] != want {
		t.Fatalf("expected %+v, got %+v", want, products[0])
	}
	if products[1].AvgDailySales != 3.5 {
		t.Fatalf("expected avg_daily_sales=3.5, got %v", products[1].AvgDailySales)
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("Product,Category,Current_Stock,Avg_Daily_Sales\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 0 {
		t.Fatalf("expected empty table, got %d rows", table.Len())
	}
}

func TestReadCSVMissingColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Product,Category,Current_Stock\nMilk,Dairy,25\n"))
	if err == nil || !strings.Contains(err.Error(), "Avg_Daily_Sales") {
		t.Fatalf("expected missing column error, got %v", err)
	}
}

func TestReadCSVEmptyFile(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	if err == nil {
		t.Fatalf("expected error for empty file")
	}
}

func TestReadCSVMalformedRows(t *testing.T) {
	cases := []struct {
		name  string
		row   string
		field string
	}{
		{"non-integer stock", "Milk,Dairy,many,4", "Current_Stock"},
		{"non-numeric sales", "Milk,Dairy,25,fast", "Avg_Daily_Sales"},
		{"negative stock", "Milk,Dairy,-3,4", "current_stock"},
		{"negative sales", "Milk,Dairy,25,-1", "avg_daily_sales"},
		{"blank product", ",Dairy,25,4", "Product"},
	}

	for _, c := range cases {
		data := "Product,Category,Current_Stock,Avg_Daily_Sales\nBread,Bakery,18,3.5\n" + c.row + "\n"
		_, err := ReadCSV(strings.NewReader(data))
		if err == nil {
			t.Fatalf("%s: expected error, got nil", c.name)
		}
		var malformed *forecast.MalformedRecordError
		if !errors.As(err, &malformed) {
			t.Fatalf("%s: expected MalformedRecordError, got %T (%v)", c.name, err, err)
		}
		if malformed.Row != 2 {
			t.Fatalf("%s: expected row 2, got %d", c.name, malformed.Row)
		}
		if malformed.Field != c.field {
			t.Fatalf("%s: expected field %q, got %q", c.name, c.field, malformed.Field)
		}
	}
}

func TestReadCSVReordersColumns(t *testing.T) {
	data := "Avg_Daily_Sales,Product,Current_Stock,Category\n2,Tea,12,Beverages\n"
	table, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := models.Product{Name: "Tea", Category: "Beverages", CurrentStock: 12, AvgDailySales: 2}
	if table.Products()[0] != want {
		t.Fatalf("expected %+v, got %+v", want, table.Products()[0])
	}
}

func TestNewTableCopiesInput(t *testing.T) {
	products := []models.Product{{Name: "Milk", Category: "Dairy", CurrentStock: 25, AvgDailySales: 4}}
	table := NewTable(products)

	products[0].CurrentStock = 0
	if table.Products()[0].CurrentStock != 25 {
		t.Fatalf("table shares storage with caller's slice")
	}
}
