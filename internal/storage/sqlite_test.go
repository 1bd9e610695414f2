package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{GameID: "glide", Score: 12, Length: 13}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.RaiseBestScore("glide", 15); err != nil {
		t.Fatalf("RaiseBestScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore("glide")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 15 {
		t.Errorf("BestScore() = %d after reopen, expected 15", best)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "glide", Score: 10, Length: 11, Duration: 30 * time.Second},
		{GameID: "glide", Score: 5, Length: 6, Duration: 1500 * time.Millisecond},
		{GameID: "glide", Score: 20, Length: 21, Duration: time.Minute},
		{GameID: "other", Score: 50, Length: 51},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("glide", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	expected := []int{20, 10, 5}
	for i, want := range expected {
		if top[i].Score != want {
			t.Errorf("top[%d].Score = %d, expected %d", i, top[i].Score, want)
		}
	}
	if top[0].Length != 21 || top[0].Duration != time.Minute {
		t.Errorf("top[0] = %+v, expected length 21 and 1m duration", top[0])
	}
	if top[2].Duration != 1500*time.Millisecond {
		t.Errorf("top[2].Duration = %s, expected 1.5s", top[2].Duration)
	}
	if top[0].GameID != "glide" || top[0].ID == 0 {
		t.Errorf("top[0] = %+v, expected a stored glide run", top[0])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{GameID: "test", Score: (i + 1) * 100})
	}

	tests := []struct {
		limit    int
		expected int
	}{
		{3, 3},
		{10, 5},
		{0, 5}, // non-positive falls back to 10
	}

	for _, tc := range tests {
		runs, err := store.TopRuns("test", tc.limit)
		if err != nil {
			t.Fatalf("TopRuns(%d) failed: %v", tc.limit, err)
		}
		if len(runs) != tc.expected {
			t.Errorf("TopRuns(%d) returned %d runs, expected %d", tc.limit, len(runs), tc.expected)
		}
	}
}

func TestStoreTopRunsTieOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveRun(Run{GameID: "glide", Score: 7, Length: 1})
	store.SaveRun(Run{GameID: "glide", Score: 7, Length: 2})

	runs, err := store.TopRuns("glide", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if runs[0].ID != first {
		t.Errorf("tied runs should list the earlier one first, got ID %d", runs[0].ID)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("glide")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "glide", Score: 100})
	store.SaveRun(Run{GameID: "glide", Score: 300})
	store.SaveRun(Run{GameID: "glide", Score: 200})

	high, err = store.HighScore("glide")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "glide", Score: 100})
	store.SaveRun(Run{GameID: "glide", Score: 200})
	store.SaveRun(Run{GameID: "other", Score: 300})
	store.RaiseBestScore("glide", 250)
	store.RaiseBestScore("other", 300)

	if err := store.ClearRuns("glide"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("glide", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 glide runs after clear, got %d", len(runs))
	}
	if best, _ := store.BestScore("glide"); best != 0 {
		t.Errorf("BestScore() = %d after clear, expected 0", best)
	}

	// Other games are not affected
	others, _ := store.TopRuns("other", 10)
	if len(others) != 1 {
		t.Errorf("other runs should not be affected by clearing glide")
	}
	if best, _ := store.BestScore("other"); best != 300 {
		t.Errorf("BestScore(other) = %d, expected 300", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("glide")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty game = %+v", empty)
	}

	store.SaveRun(Run{GameID: "glide", Score: 4, Length: 5, Duration: 10 * time.Second})
	store.SaveRun(Run{GameID: "glide", Score: 8, Length: 12, Duration: 20 * time.Second})

	stats, err := store.Stats("glide")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 8 || stats.AvgScore != 6 {
		t.Errorf("Stats() = %+v, expected 2 games, high 8, avg 6", stats)
	}
	if stats.LongestSnake != 12 || stats.TotalPlayTime != 30*time.Second {
		t.Errorf("Stats() = %+v, expected longest 12 and 30s played", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
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
