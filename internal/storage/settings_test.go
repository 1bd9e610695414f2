package storage

import "testing"

func TestStoreIntSettings(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.GetInt("volume"); err != nil || ok {
		t.Fatalf("GetInt() on missing key = ok %v, err %v", ok, err)
	}

	if err := store.SetInt("volume", 7); err != nil {
		t.Fatalf("SetInt() failed: %v", err)
	}
	if err := store.SetInt("volume", 3); err != nil {
		t.Fatalf("SetInt() failed: %v", err)
	}

	v, ok, err := store.GetInt("volume")
	if err != nil || !ok || v != 3 {
		t.Errorf("GetInt() = %d, %v, %v, expected 3, true, nil", v, ok, err)
	}
}

func TestStoreRaiseBestScore(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		raise    int
		expected int
	}{
		{5, 5},
		{3, 5}, // never lowered
		{5, 5},
		{9, 9},
		{0, 9},
	}

	for _, tc := range tests {
		if err := store.RaiseBestScore("glide", tc.raise); err != nil {
			t.Fatalf("RaiseBestScore(%d) failed: %v", tc.raise, err)
		}
		best, err := store.BestScore("glide")
		if err != nil {
			t.Fatalf("BestScore() failed: %v", err)
		}
		if best != tc.expected {
			t.Errorf("after RaiseBestScore(%d): BestScore() = %d, expected %d", tc.raise, best, tc.expected)
		}
	}
}

func TestStoreBestScoreIncludesHistory(t *testing.T) {
	store := openTestStore(t)

	store.RaiseBestScore("glide", 4)
	store.SaveRun(Run{GameID: "glide", Score: 11})

	best, err := store.BestScore("glide")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 11 {
		t.Errorf("BestScore() = %d, expected the run history maximum 11", best)
	}
}
