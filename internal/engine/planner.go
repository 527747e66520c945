package engine

import (
	"math/rand"
	"time"
)

// minWait is the floor applied to every computed cycle wait.
const minWait = 100 * time.Millisecond

// ChooseMoveCount picks a move count uniformly from [min, max] inclusive.
// When min >= max it returns min unchanged.
func ChooseMoveCount(rnd *rand.Rand, min, max int) int {
	if min >= max {
		return min
	}
	return min + rnd.Intn(max-min+1)
}

// ComputeWait returns the pause before the next cycle: the base interval
// scaled by a uniform factor in [1-jitter, 1+jitter], floored at 100ms.
func ComputeWait(rnd *rand.Rand, base time.Duration, jitter float64) time.Duration {
	wait := base
	if jitter > 0 {
		u := (rnd.Float64()*2 - 1) * jitter
		wait = time.Duration(float64(base) * (1 + u))
	}
	if wait < minWait {
		wait = minWait
	}
	return wait
}
