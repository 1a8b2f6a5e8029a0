package randutil

import "testing"

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()

	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if a.Int63() != b.Int63() {
			t.Fatal("identical seeds must produce identical sequences")
		}
	}
}

func TestAdjacentSeedsDiverge(t *testing.T) {
	t.Parallel()

	a := New(42)
	b := New(43)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Int63() == b.Int63() {
			same++
		}
	}
	if same > 0 {
		t.Errorf("adjacent seeds shared %d of 100 values", same)
	}
}

func TestDeriveProducesDistinctSeeds(t *testing.T) {
	t.Parallel()

	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		s := Derive(7, i)
		if seen[s] {
			t.Fatalf("trial %d produced a duplicate derived seed", i)
		}
		seen[s] = true
	}
}
