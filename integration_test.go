package main

import (
	"context"
	"testing"
)

func TestExampleInputs(t *testing.T) {
	cfg := DefaultConfig()
	wantProduct := 56 * 62
	if testing.Short() {
		cfg.ExtendedCount = 0
		wantProduct = 1
	}

	for _, path := range []string{"testdata/example.txt", "testdata/example.json"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			bps, err := LoadBlueprints(path)
			if err != nil {
				t.Fatalf("LoadBlueprints: %v", err)
			}
			rep, err := Solve(context.Background(), bps, cfg)
			if err != nil {
				t.Fatalf("Solve: %v", err)
			}
			t.Logf("%s: quality=%d extended=%d total=%dms", path, rep.Quality, rep.ExtendedProd, rep.TotalMs)

			if rep.Quality != 33 {
				t.Errorf("quality: got %d, want 33", rep.Quality)
			}
			if rep.ExtendedProd != wantProduct {
				t.Errorf("extended product: got %d, want %d", rep.ExtendedProd, wantProduct)
			}
			for i, b := range rep.Blueprints {
				if b.ID != i+1 {
					t.Errorf("blueprint %d has id %d", i, b.ID)
				}
			}
		})
	}
}
