package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 64; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
	if a.Seed() != 42 {
		t.Fatalf("Seed() = %d, want 42", a.Seed())
	}
}

func TestIntNNonPositive(t *testing.T) {
	r := NewRNG(1)
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	if got := r.IntN(-3); got != 0 {
		t.Fatalf("IntN(-3) = %d, want 0", got)
	}
}

func TestResolveSeed(t *testing.T) {
	if got := ResolveSeed(7); got != 7 {
		t.Fatalf("ResolveSeed(7) = %d", got)
	}
	if got := ResolveSeed(0); got == 0 {
		t.Fatal("ResolveSeed(0) must pick a non-zero seed")
	}
}
