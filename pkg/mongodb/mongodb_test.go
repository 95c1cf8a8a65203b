package mongodb

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Database != "bistroBossDB" {
		t.Errorf("Expected database 'bistroBossDB', got '%s'", cfg.Database)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("Expected max retries 3, got %d", cfg.MaxRetries)
	}
}

func TestConnect_InvalidURI(t *testing.T) {
	cfg := &Config{
		URI:      "not-a-mongodb-uri",
		Database: "test",
	}

	_, err := Connect(context.Background(), cfg)
	if err == nil {
		t.Error("Expected error for invalid URI, got nil")
	}
}

func TestConnect_Integration(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test. Set INTEGRATION_TEST=true to run")
	}

	cfg := DefaultConfig()
	if uri := os.Getenv("TEST_MONGODB_URI"); uri != "" {
		cfg.URI = uri
	}
	cfg.Database = "bistro_boss_test"
	cfg.MaxRetries = 1
	cfg.RetryInterval = 500 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := Connect(ctx, cfg)
	if err != nil {
		t.Fatalf("Failed to connect to mongodb: %v", err)
	}
	defer db.Close(context.Background())

	if err := db.Ping(ctx); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
	if db.Collection("users").Name() != "users" {
		t.Error("Expected users collection handle")
	}
}
