package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"app/config"
	"app/database"
	"app/inventory"
	"app/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	if err := config.Load(); err != nil {
		log.Fatal(err)
	}

	// Load the product table once; it is immutable for the lifetime of
	// the process.
	table, err := loadTable()
	if err != nil {
		log.Fatalf("Failed to load inventory table: %v", err)
	}
	log.Printf("Loaded inventory table with %d products", table.Len())

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app, table)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}

// loadTable reads the product table from the configured source: a CSV
// file by default, or Postgres when INVENTORY_SOURCE=postgres.
func loadTable() (*inventory.Table, error) {
	if os.Getenv("INVENTORY_SOURCE") == "postgres" {
		databaseURL := os.Getenv("DATABASE_URL")
		if databaseURL == "" {
			log.Fatal("DATABASE_URL is not set")
		}

		ctx := context.Background()
		pool, err := database.Connect(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		defer pool.Close()

		return inventory.LoadPostgres(ctx, pool)
	}

	dataFile := os.Getenv("DATA_FILE")
	if dataFile == "" {
		dataFile = "retail_data.csv"
	}
	return inventory.LoadCSV(dataFile)
}
