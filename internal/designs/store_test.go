// store_test.go - Tests for the DuckDB-backed saved-design store
package designs

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

const testConfiguration = `{"slot_1":{"color":null,"iconId":"A01"},"slot_2":{"color":"#1EA7FF","iconId":"B02"},"slot_3":{"color":null,"iconId":"C03"},"slot_4":{"color":null,"iconId":"D04"}}`

// createTestStore creates a temporary design store for testing
func createTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "designs.duckdb"))
	if err != nil {
		t.Fatalf("Failed to create design store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_Create(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	design, err := store.Create(ctx, "cust-1", "My keypad", "PKP-2200-SI", testConfiguration)
	if err != nil {
		t.Fatalf("Failed to create design: %v", err)
	}

	if design.ID == "" {
		t.Error("Expected a generated id")
	}
	if design.CustomerID != "cust-1" {
		t.Errorf("Expected customer cust-1, got %s", design.CustomerID)
	}
	if design.ModelCode != "PKP-2200-SI" {
		t.Errorf("Expected model PKP-2200-SI, got %s", design.ModelCode)
	}
	if design.CreatedAt.IsZero() || design.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}
	if !design.CreatedAt.Equal(design.UpdatedAt) {
		t.Error("Expected created and updated timestamps to match on insert")
	}
}

func TestStore_Get(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "cust-1", "My keypad", "PKP-2200-SI", testConfiguration)
	if err != nil {
		t.Fatalf("Failed to create design: %v", err)
	}

	t.Run("returns the stored design", func(t *testing.T) {
		fetched, err := store.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("Failed to get design: %v", err)
		}
		if fetched.Name != "My keypad" {
			t.Errorf("Expected name 'My keypad', got %s", fetched.Name)
		}
		if fetched.Configuration != testConfiguration {
			t.Errorf("Expected stored configuration to round trip, got %s", fetched.Configuration)
		}
		if !fetched.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("Expected created at %v, got %v", created.CreatedAt, fetched.CreatedAt)
		}
	})

	t.Run("unknown id is ErrNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "no-such-id")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestStore_ListByCustomer(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		if _, err := store.Create(ctx, "cust-1", name, "PKP-2200-SI", testConfiguration); err != nil {
			t.Fatalf("Failed to create design %s: %v", name, err)
		}
	}
	if _, err := store.Create(ctx, "cust-2", "Other customer", "PKP-2300-SI", testConfiguration); err != nil {
		t.Fatalf("Failed to create design: %v", err)
	}

	t.Run("returns only the customer's designs", func(t *testing.T) {
		designs, err := store.ListByCustomer(ctx, "cust-1", 0)
		if err != nil {
			t.Fatalf("Failed to list designs: %v", err)
		}
		if len(designs) != 3 {
			t.Fatalf("Expected 3 designs, got %d", len(designs))
		}
		for _, design := range designs {
			if design.CustomerID != "cust-1" {
				t.Errorf("Expected only cust-1 designs, got %s", design.CustomerID)
			}
		}
	})

	t.Run("orders most recently updated first", func(t *testing.T) {
		designs, err := store.ListByCustomer(ctx, "cust-1", 0)
		if err != nil {
			t.Fatalf("Failed to list designs: %v", err)
		}
		for i := 1; i < len(designs); i++ {
			if designs[i].UpdatedAt.After(designs[i-1].UpdatedAt) {
				t.Error("Expected descending updated-at order")
			}
		}
	})

	t.Run("respects the limit", func(t *testing.T) {
		designs, err := store.ListByCustomer(ctx, "cust-1", 2)
		if err != nil {
			t.Fatalf("Failed to list designs: %v", err)
		}
		if len(designs) != 2 {
			t.Errorf("Expected 2 designs, got %d", len(designs))
		}
	})

	t.Run("unknown customer lists nothing", func(t *testing.T) {
		designs, err := store.ListByCustomer(ctx, "cust-999", 0)
		if err != nil {
			t.Fatalf("Failed to list designs: %v", err)
		}
		if len(designs) != 0 {
			t.Errorf("Expected no designs, got %d", len(designs))
		}
	})
}

func TestStore_Update(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "cust-1", "Before", "PKP-2200-SI", testConfiguration)
	if err != nil {
		t.Fatalf("Failed to create design: %v", err)
	}

	t.Run("replaces mutable fields", func(t *testing.T) {
		updated, err := store.Update(ctx, created.ID, "After", "PKP-2300-SI", testConfiguration)
		if err != nil {
			t.Fatalf("Failed to update design: %v", err)
		}
		if updated.Name != "After" {
			t.Errorf("Expected name 'After', got %s", updated.Name)
		}
		if updated.ModelCode != "PKP-2300-SI" {
			t.Errorf("Expected model PKP-2300-SI, got %s", updated.ModelCode)
		}
		if updated.UpdatedAt.Before(created.UpdatedAt) {
			t.Error("Expected updated-at to move forward")
		}
		if !updated.CreatedAt.Equal(created.CreatedAt) {
			t.Error("Expected created-at to be preserved")
		}
	})

	t.Run("unknown id is ErrNotFound", func(t *testing.T) {
		_, err := store.Update(ctx, "no-such-id", "Name", "PKP-2200-SI", testConfiguration)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestStore_Delete(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "cust-1", "Doomed", "PKP-2200-SI", testConfiguration)
	if err != nil {
		t.Fatalf("Failed to create design: %v", err)
	}

	t.Run("removes the design", func(t *testing.T) {
		if err := store.Delete(ctx, created.ID); err != nil {
			t.Fatalf("Failed to delete design: %v", err)
		}
		if _, err := store.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected the design to be gone, got %v", err)
		}
	})

	t.Run("unknown id is ErrNotFound", func(t *testing.T) {
		if err := store.Delete(ctx, "no-such-id"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "designs.duckdb")

	store1, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	created, err := store1.Create(context.Background(), "cust-1", "Durable", "PKP-2500-SI", testConfiguration)
	if err != nil {
		t.Fatalf("Failed to create design: %v", err)
	}
	store1.Close()

	store2, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer store2.Close()

	fetched, err := store2.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Failed to get design after reopen: %v", err)
	}
	if fetched.Name != "Durable" {
		t.Errorf("Expected the design to survive a reopen, got %+v", fetched)
	}
}
