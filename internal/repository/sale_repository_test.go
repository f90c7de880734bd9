package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/inmoval/api/internal/config"
	"github.com/inmoval/api/internal/database"
)

// getTestConfig returns database configuration for integration tests.
func getTestConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:     getEnvOrDefault("DB_HOST", "localhost"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
		Name:     getEnvOrDefault("DB_NAME", "inmoval"),
		User:     getEnvOrDefault("DB_USER", "postgres"),
		Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
		PoolMin:  2,
		PoolMax:  5,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// setupTestRepository creates a test database connection and repository.
func setupTestRepository(t *testing.T) (SaleRepository, *database.Database) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := getTestConfig()

	db, err := database.NewPostgresPool(ctx, cfg)
	if err != nil {
		t.Fatalf("Failed to create database connection: %v", err)
	}

	return NewSaleRepository(db), db
}

// insertTestSale inserts a comparable sale row for testing and registers
// cleanup.
func insertTestSale(t *testing.T, db *database.Database, id, country, propertyType string, saleDate time.Time) {
	t.Helper()

	ctx := context.Background()
	query := `
		INSERT INTO comparable_sales
			(id, address, property_type, total_area, price_usd, price_per_sqm_usd,
			 latitude, longitude, sale_date, country, stratum)
		VALUES ($1, '123 Test St', $2, 120, 150000, 1250, 4.7110, -74.0721, $3, $4, NULL)
	`
	_, err := db.Pool.Exec(ctx, query, id, propertyType, saleDate, country)
	if err != nil {
		t.Fatalf("Failed to insert test sale: %v", err)
	}

	t.Cleanup(func() {
		_, _ = db.Pool.Exec(context.Background(), "DELETE FROM comparable_sales WHERE id = $1", id)
	})
}

func TestFindRecentSales_FiltersByDate(t *testing.T) {
	repo, db := setupTestRepository(t)
	defer db.Close()

	now := time.Now()
	insertTestSale(t, db, "test-recent", "CO", "house", now.AddDate(0, -2, 0))
	insertTestSale(t, db, "test-old", "CO", "house", now.AddDate(0, -36, 0))

	sales, err := repo.FindRecentSales(context.Background(), "CO", nil, now.AddDate(0, -24, 0))
	if err != nil {
		t.Fatalf("FindRecentSales failed: %v", err)
	}

	for _, s := range sales {
		if s.ID == "test-old" {
			t.Error("Expected stale sale to be excluded")
		}
	}

	found := false
	for _, s := range sales {
		if s.ID == "test-recent" {
			found = true
			if s.Source != "database" {
				t.Errorf("Expected source database, got %s", s.Source)
			}
		}
	}
	if !found {
		t.Error("Expected recent sale to be returned")
	}
}

func TestFindRecentSales_FiltersByCountry(t *testing.T) {
	repo, db := setupTestRepository(t)
	defer db.Close()

	now := time.Now()
	insertTestSale(t, db, "test-co", "CO", "house", now.AddDate(0, -1, 0))
	insertTestSale(t, db, "test-pe", "PE", "house", now.AddDate(0, -1, 0))

	sales, err := repo.FindRecentSales(context.Background(), "CO", nil, now.AddDate(0, -24, 0))
	if err != nil {
		t.Fatalf("FindRecentSales failed: %v", err)
	}

	for _, s := range sales {
		if s.Country != "CO" {
			t.Errorf("Expected only CO sales, got %s", s.Country)
		}
	}
}

func TestFindRecentSales_FiltersByPropertyType(t *testing.T) {
	repo, db := setupTestRepository(t)
	defer db.Close()

	now := time.Now()
	insertTestSale(t, db, "test-house", "CO", "house", now.AddDate(0, -1, 0))
	insertTestSale(t, db, "test-office", "CO", "office", now.AddDate(0, -1, 0))

	sales, err := repo.FindRecentSales(context.Background(), "CO", []string{"house"}, now.AddDate(0, -24, 0))
	if err != nil {
		t.Fatalf("FindRecentSales failed: %v", err)
	}

	for _, s := range sales {
		if s.PropertyType != "house" {
			t.Errorf("Expected only house sales, got %s", s.PropertyType)
		}
	}
}

func TestFindRecentSales_EmptyResultIsNotError(t *testing.T) {
	repo, db := setupTestRepository(t)
	defer db.Close()

	sales, err := repo.FindRecentSales(context.Background(), "ZZ", nil, time.Now())
	if err != nil {
		t.Fatalf("FindRecentSales failed: %v", err)
	}

	if sales == nil {
		t.Error("Expected empty slice, got nil")
	}
	if len(sales) != 0 {
		t.Errorf("Expected no sales, got %d", len(sales))
	}
}
