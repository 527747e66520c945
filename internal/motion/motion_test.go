package motion

import (
	"math/rand"
	"testing"
	"time"
)

func TestSamplePointStaysInsideMargin(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	bounds := Bounds{Width: 1920, Height: 1080}

	for _, margin := range []int{0, 5, 100} {
		for i := 0; i < 10000; i++ {
			pt, err := SamplePoint(rnd, bounds, margin)
			if err != nil {
				t.Fatalf("SamplePoint(margin=%d) unexpected error: %v", margin, err)
			}
			if pt.X < margin || pt.X >= bounds.Width-margin {
				t.Fatalf("x=%d outside [%d, %d)", pt.X, margin, bounds.Width-margin)
			}
			if pt.Y < margin || pt.Y >= bounds.Height-margin {
				t.Fatalf("y=%d outside [%d, %d)", pt.Y, margin, bounds.Height-margin)
			}
		}
	}
}

func TestSamplePointRejectsOversizedMargin(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	bounds := Bounds{Width: 100, Height: 100}

	for _, margin := range []int{50, 60, 1000} {
		if _, err := SamplePoint(rnd, bounds, margin); err == nil {
			t.Errorf("expected error for margin %d on %dx%d screen", margin, bounds.Width, bounds.Height)
		}
	}
}

func TestValidateMargin(t *testing.T) {
	if err := ValidateMargin(Bounds{Width: 100, Height: 100}, 49); err != nil {
		t.Errorf("margin 49 on 100x100 should be valid: %v", err)
	}
	if err := ValidateMargin(Bounds{Width: 100, Height: 100}, 50); err == nil {
		t.Error("margin 50 on 100x100 should be rejected")
	}
}

func TestCurveSampleCount(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	curve := NewCurve(rnd, Point{0, 0}, Point{100, 0}, 100*time.Millisecond)

	if curve.Len() != 11 {
		t.Fatalf("expected 11 samples for a 100ms curve, got %d", curve.Len())
	}

	var samples []Point
	for {
		pt, _, ok := curve.Next()
		if !ok {
			break
		}
		samples = append(samples, pt)
	}
	if len(samples) != 11 {
		t.Fatalf("expected 11 samples from iteration, got %d", len(samples))
	}

	first, last := samples[0], samples[len(samples)-1]
	if abs(first.X) > 2 || abs(first.Y) > 2 {
		t.Errorf("first sample %v should be within 2px of the start", first)
	}
	if abs(last.X-100) > 2 || abs(last.Y) > 2 {
		t.Errorf("last sample %v should be within 2px of the end", last)
	}

	// Intermediate samples stay within the straight-line bounding range
	// expanded by the control point spread plus jitter.
	for _, pt := range samples {
		if pt.X < -35 || pt.X > 135 {
			t.Errorf("sample x=%d strayed outside the expanded range", pt.X)
		}
		if pt.Y < -40 || pt.Y > 40 {
			t.Errorf("sample y=%d strayed outside the expanded range", pt.Y)
		}
	}
}

func TestCurveMinimumSteps(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	curve := NewCurve(rnd, Point{0, 0}, Point{10, 10}, time.Millisecond)
	if curve.Len() != 11 {
		t.Errorf("very short curves should still produce 11 samples, got %d", curve.Len())
	}
}

func TestCurveStepDelay(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	curve := NewCurve(rnd, Point{0, 0}, Point{200, 50}, 200*time.Millisecond)

	if curve.Len() != 21 {
		t.Fatalf("expected 21 samples for a 200ms curve, got %d", curve.Len())
	}
	for {
		_, delay, ok := curve.Next()
		if !ok {
			break
		}
		if delay != 10*time.Millisecond {
			t.Fatalf("expected 10ms step delay, got %v", delay)
		}
	}
}

func TestCurveDeterministic(t *testing.T) {
	// Same seed should produce the same trajectory.
	collect := func(seed int64) []Point {
		rnd := rand.New(rand.NewSource(seed))
		curve := NewCurve(rnd, Point{10, 20}, Point{300, 400}, 150*time.Millisecond)
		var pts []Point
		for {
			pt, _, ok := curve.Next()
			if !ok {
				break
			}
			pts = append(pts, pt)
		}
		return pts
	}

	a, b := collect(12345), collect(12345)
	if len(a) != len(b) {
		t.Fatalf("sample counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
