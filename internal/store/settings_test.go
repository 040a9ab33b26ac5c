package store

import "testing"

func TestSettingsRepo(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepo(db)

	// Missing key reads as empty.
	value, err := repo.Get("units")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "" {
		t.Errorf("Expected empty value for missing key, got %q", value)
	}

	if err := repo.Set("units", "metric"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, _ = repo.Get("units")
	if value != "metric" {
		t.Errorf("Expected metric, got %q", value)
	}

	// Upsert overwrites.
	if err := repo.Set("units", "imperial"); err != nil {
		t.Fatalf("Second Set failed: %v", err)
	}
	value, _ = repo.Get("units")
	if value != "imperial" {
		t.Errorf("Expected imperial, got %q", value)
	}

	if err := repo.Delete("units"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	value, _ = repo.Get("units")
	if value != "" {
		t.Errorf("Expected empty value after delete, got %q", value)
	}
}
