package storage

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/vovakirdan/wander/internal/wander"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.wander/wander.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".wander", "wander.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	gens := []wander.Generation{
		{Seed: 11, Agents: 10, Resolution: 10},
		{Seed: -42, Agents: 35, Resolution: 50},
		{Seed: 7, Agents: 0, Resolution: 1},
	}
	var ids []int64
	for _, g := range gens {
		id, err := store.SaveGeneration(g, "terminal")
		if err != nil {
			t.Fatalf("SaveGeneration() failed: %v", err)
		}
		ids = append(ids, id)
	}

	recent, err := store.RecentGenerations(10)
	if err != nil {
		t.Fatalf("RecentGenerations() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 generations, got %d", len(recent))
	}

	// Newest first
	if recent[0].Generation != gens[2] || recent[2].Generation != gens[0] {
		t.Errorf("unexpected order: %+v", recent)
	}
	if recent[0].Source != "terminal" {
		t.Errorf("source = %q, expected terminal", recent[0].Source)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	entry, err := store.GenerationByID(ids[1])
	if err != nil {
		t.Fatalf("GenerationByID() failed: %v", err)
	}
	if entry.Generation != gens[1] {
		t.Errorf("GenerationByID = %+v, expected %+v", entry.Generation, gens[1])
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveGeneration(wander.Generation{Seed: int64(i), Agents: 1, Resolution: 2}, "window"); err != nil {
			t.Fatalf("SaveGeneration() failed: %v", err)
		}
	}

	recent, err := store.RecentGenerations(5)
	if err != nil {
		t.Fatalf("RecentGenerations() failed: %v", err)
	}
	if len(recent) != 5 {
		t.Errorf("Expected 5 generations, got %d", len(recent))
	}
	if recent[0].Generation.Seed != 14 {
		t.Errorf("newest seed = %d, expected 14", recent[0].Generation.Seed)
	}

	// Non-positive limit falls back to 10
	recent, _ = store.RecentGenerations(0)
	if len(recent) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(recent))
	}
}

func TestStoreGenerationNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GenerationByID(999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreCountAndClear(t *testing.T) {
	store := openTestStore(t)

	n, err := store.CountGenerations()
	if err != nil || n != 0 {
		t.Fatalf("CountGenerations() = %d, %v; expected 0", n, err)
	}

	store.SaveGeneration(wander.Generation{Seed: 1, Agents: 2, Resolution: 3}, "ssh:alice")
	store.SaveGeneration(wander.Generation{Seed: 4, Agents: 5, Resolution: 6}, "ssh:bob")

	if n, _ = store.CountGenerations(); n != 2 {
		t.Errorf("CountGenerations() = %d, expected 2", n)
	}

	if err := store.ClearGenerations(); err != nil {
		t.Fatalf("ClearGenerations() failed: %v", err)
	}
	if n, _ = store.CountGenerations(); n != 0 {
		t.Errorf("CountGenerations() after clear = %d, expected 0", n)
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			//nolint:errcheck // counted below
			store.SaveGeneration(wander.Generation{Seed: int64(i), Agents: i, Resolution: i + 1}, "ssh:load")
		}(i)
	}
	wg.Wait()

	if n, _ := store.CountGenerations(); n != 8 {
		t.Errorf("CountGenerations() = %d, expected 8", n)
	}
}
