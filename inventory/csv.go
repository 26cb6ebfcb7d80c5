package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"app/forecast"
	"app/models"
)

// Required columns of the source file, matched case-insensitively
// against the header row in any column order.
var requiredColumns = []string{"Product", "Category", "Current_Stock", "Avg_Daily_Sales"}

// LoadCSV reads the product table from a CSV file with the fixed column
// set Product, Category, Current_Stock, Avg_Daily_Sales. Types are
// converted and validated here, at load time; the first bad row fails
// the whole load with a *forecast.MalformedRecordError.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory file: %w", err)
	}
	defer f.Close()

	table, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// ReadCSV parses CSV data from any reader. Split out from LoadCSV so
// tests can feed it strings directly.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("inventory file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := map[string]int{}
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[strings.ToLower(name)]; !ok {
			return nil, fmt.Errorf("inventory file is missing column %q", name)
		}
	}

	var products []models.Product
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++

		p, err := parseRow(record, columns, row)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return NewTable(products), nil
}

func parseRow(record []string, columns map[string]int, row int) (models.Product, error) {
	field := func(name string) (string, bool) {
		i := columns[strings.ToLower(name)]
		if i >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[i]), true
	}

	var p models.Product
	var ok bool

	if p.Name, ok = field("Product"); !ok || p.Name == "" {
		return p, &forecast.MalformedRecordError{Row: row, Field: "Product", Reason: "is missing"}
	}
	if p.Category, ok = field("Category"); !ok {
		return p, &forecast.MalformedRecordError{Row: row, Field: "Category", Reason: "is missing"}
	}

	raw, ok := field("Current_Stock")
	if !ok || raw == "" {
		return p, &forecast.MalformedRecordError{Row: row, Field: "Current_Stock", Reason: "is missing"}
	}
	stock, err := strconv.Atoi(raw)
	if err != nil {
		return p, &forecast.MalformedRecordError{Row: row, Field: "Current_Stock", Reason: "is not an integer"}
	}
	p.CurrentStock = stock

	raw, ok = field("Avg_Daily_Sales")
	if !ok || raw == "" {
		return p, &forecast.MalformedRecordError{Row: row, Field: "Avg_Daily_Sales", Reason: "is missing"}
	}
	sales, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return p, &forecast.MalformedRecordError{Row: row, Field: "Avg_Daily_Sales", Reason: "is not a number"}
	}
	p.AvgDailySales = sales

	if err := forecast.ValidateProduct(p, row); err != nil {
		return p, err
	}
	return p, nil
}
