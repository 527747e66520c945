package engine

import (
	"math/rand"
	"testing"
	"time"
)

func TestChooseMoveCountFixed(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for k := 0; k <= 5; k++ {
		if got := ChooseMoveCount(rnd, k, k); got != k {
			t.Errorf("ChooseMoveCount(%d, %d) = %d, want %d", k, k, got, k)
		}
	}
}

func TestChooseMoveCountRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	seen := make(map[int]bool)

	for i := 0; i < 10000; i++ {
		got := ChooseMoveCount(rnd, 2, 5)
		if got < 2 || got > 5 {
			t.Fatalf("ChooseMoveCount(2, 5) = %d, outside [2, 5]", got)
		}
		seen[got] = true
	}

	if !seen[2] || !seen[5] {
		t.Errorf("10000 draws should cover both endpoints, saw %v", seen)
	}
}

func TestComputeWaitNoJitter(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		if got := ComputeWait(rnd, 3*time.Minute, 0); got != 180*time.Second {
			t.Fatalf("ComputeWait(3m, 0) = %v, want 3m0s", got)
		}
	}
}

func TestComputeWaitJitterBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	lo, hi := 153*time.Second, 207*time.Second

	for i := 0; i < 10000; i++ {
		got := ComputeWait(rnd, 3*time.Minute, 0.15)
		if got < lo || got > hi {
			t.Fatalf("ComputeWait(3m, 0.15) = %v, outside [%v, %v]", got, lo, hi)
		}
	}
}

func TestComputeWaitFloor(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	if got := ComputeWait(rnd, time.Millisecond, 0); got != minWait {
		t.Errorf("ComputeWait(1ms, 0) = %v, want floor %v", got, minWait)
	}
	for i := 0; i < 1000; i++ {
		if got := ComputeWait(rnd, 50*time.Millisecond, 1); got < minWait {
			t.Fatalf("ComputeWait(50ms, 1) = %v, below floor %v", got, minWait)
		}
	}
}
