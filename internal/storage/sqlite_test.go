package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func run(gameID string, score, combo, rings int) RunEntry {
	return RunEntry{
		GameID:    gameID,
		Score:     score,
		BestCombo: combo,
		Rings:     rings,
		Wave:      1,
		Duration:  600,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun(run("orbit", score, 3, 8)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	// Different game id
	if _, err := store.SaveRun(run("other", 500, 1, 2)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("orbit", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending by score
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	// Run details round-trip
	if runs[0].BestCombo != 3 || runs[0].Rings != 8 || runs[0].Duration != 600 {
		t.Errorf("Run details lost: %+v", runs[0])
	}

	otherRuns, err := store.TopRuns("other", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(otherRuns) != 1 {
		t.Errorf("Expected 1 run for other game, got %d", len(otherRuns))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun(run("orbit", (i+1)*100, i, i))
	}

	runs, err := store.TopRuns("orbit", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}

	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	high, err := store.HighScore("orbit")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(run("orbit", 100, 2, 4))
	store.SaveRun(run("orbit", 300, 7, 12))
	store.SaveRun(run("orbit", 200, 4, 9))

	high, err = store.HighScore("orbit")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	combo, err := store.BestCombo("orbit")
	if err != nil {
		t.Fatalf("BestCombo() failed: %v", err)
	}
	if combo != 7 {
		t.Errorf("Expected best combo of 7, got %d", combo)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(run("orbit", 100, 1, 1))
	store.SaveRun(run("orbit", 200, 2, 2))
	store.SaveRun(run("other", 300, 3, 3))

	if err := store.ClearRuns("orbit"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	orbitRuns, _ := store.TopRuns("orbit", 10)
	if len(orbitRuns) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(orbitRuns))
	}

	otherRuns, _ := store.TopRuns("other", 10)
	if len(otherRuns) != 1 {
		t.Errorf("Other game runs should not be affected by clear")
	}
}

func TestStoreAllRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 20; i++ {
		store.SaveRun(run("orbit", i*10, i, i))
	}

	runs, err := store.AllRuns("orbit")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}

	if len(runs) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(runs))
	}
}

func TestStoreGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(run("orbit", 100, 2, 5))
	store.SaveRun(run("orbit", 300, 6, 15))

	stats, err := store.GetGameStats("orbit")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.RunsCount != 2 {
		t.Errorf("RunsCount: got %d, want 2", stats.RunsCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore: got %d, want 300", stats.HighScore)
	}
	if stats.BestCombo != 6 {
		t.Errorf("BestCombo: got %d, want 6", stats.BestCombo)
	}
	if stats.TotalRings != 20 {
		t.Errorf("TotalRings: got %d, want 20", stats.TotalRings)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
