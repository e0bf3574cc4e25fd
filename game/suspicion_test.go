package game

import (
	"testing"
)

// TestAddSuspicionClamps ensures the meter never leaves its bounds for any
// sequence of deltas.
func TestAddSuspicionClamps(t *testing.T) {
	cfg := DefaultConfig()

	sequences := [][]float64{
		{0, 1, 2, 3},
		{3, 3, 3, 3, 3},
		{-1, -2, -3},
		{10, -20, 30, -40},
		{0.3, -0.2, 1.2, 2.0, -5, 7, 7, 7},
	}

	for i, deltas := range sequences {
		current := cfg.SuspicionMin
		for j, delta := range deltas {
			current = AddSuspicion(cfg, current, delta)
			if current < cfg.SuspicionMin || current > cfg.SuspicionMax {
				t.Fatalf("sequence %d step %d: suspicion %v outside [%v, %v]",
					i, j, current, cfg.SuspicionMin, cfg.SuspicionMax)
			}
		}
	}
}

func TestAddSuspicionBoundaries(t *testing.T) {
	cfg := DefaultConfig()

	if got := AddSuspicion(cfg, 9.5, 3); got != cfg.SuspicionMax {
		t.Fatalf("expected clamp to %v, got %v", cfg.SuspicionMax, got)
	}
	if got := AddSuspicion(cfg, 0.1, -5); got != cfg.SuspicionMin {
		t.Fatalf("expected clamp to %v, got %v", cfg.SuspicionMin, got)
	}
	if got := AddSuspicion(cfg, 4, 2); got != 6 {
		t.Fatalf("expected 6, got %v", got)
	}
}
