// Package engine drives the move/press/wait cycle until cancelled.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/mkarsten/fidget/internal/config"
	"github.com/mkarsten/fidget/internal/idle"
	"github.com/mkarsten/fidget/internal/input"
	"github.com/mkarsten/fidget/internal/motion"
)

// Engine owns the cycle loop. All waiting happens in cancellable sleeps,
// so cancellation latency is bounded by a single in-flight sleep.
type Engine struct {
	cfg  config.Config
	log  *zap.Logger
	in   input.Injector
	rnd  *rand.Rand
	gate *idle.Gate
}

// New builds an engine over the given injector and random source.
func New(cfg config.Config, log *zap.Logger, in input.Injector, rnd *rand.Rand) *Engine {
	e := &Engine{cfg: cfg, log: log, in: in, rnd: rnd}
	if cfg.OnlyWhenIdle {
		e.gate = idle.NewGate(cfg.IdleThreshold, log)
	}
	return e
}

// Run executes cycles until ctx is cancelled. It fails up front if the
// configured margin leaves no usable area on the current screen.
func (e *Engine) Run(ctx context.Context) error {
	w, h := e.in.ScreenSize()
	if err := motion.ValidateMargin(motion.Bounds{Width: w, Height: h}, e.cfg.Margin); err != nil {
		return err
	}

	e.log.Info("starting",
		zap.Duration("interval", e.cfg.Interval),
		zap.Float64("jitter", e.cfg.Jitter),
		zap.Int("min_moves", e.cfg.MinMoves),
		zap.Int("max_moves", e.cfg.MaxMoves),
		zap.Duration("move_delay", e.cfg.MoveDelay),
		zap.String("press_mode", string(e.cfg.PressMode)),
		zap.String("key", e.cfg.Key),
		zap.Bool("dry_run", e.cfg.DryRun),
	)

	for ctx.Err() == nil {
		count := ChooseMoveCount(e.rnd, e.cfg.MinMoves, e.cfg.MaxMoves)
		e.log.Info("cycle planned", zap.Int("moves", count))

		if e.gate == nil || e.gate.ShouldSimulate() {
			completed := e.runMoves(ctx, count)
			if ctx.Err() != nil {
				break
			}
			if completed && e.cfg.PressMode == config.PressPerCycle {
				e.press("after sequence")
			}
		}

		wait := ComputeWait(e.rnd, e.cfg.Interval, e.cfg.Jitter)
		e.log.Info("cycle complete",
			zap.Duration("next_in", wait),
			zap.Time("next_at", time.Now().Add(wait)),
		)
		if !sleep(ctx, wait) {
			break
		}
	}

	e.log.Info("stopped")
	return nil
}

// runMoves performs count moves in order and reports whether all of them
// completed. A failed move abandons the rest of the cycle; the loop itself
// survives to the next scheduled cycle.
func (e *Engine) runMoves(ctx context.Context, count int) bool {
	for i := 0; i < count; i++ {
		if ctx.Err() != nil {
			return false
		}
		if err := e.performMove(ctx, i, count); err != nil {
			e.log.Warn("move failed; abandoning remaining moves this cycle",
				zap.Int("move", i+1), zap.Error(err))
			return false
		}
		if i < count-1 && !sleep(ctx, e.cfg.MoveDelay) {
			return false
		}
	}
	return true
}

// performMove samples a target and walks one curved trajectory to it from
// the pointer's current position, queried fresh.
func (e *Engine) performMove(ctx context.Context, index, total int) error {
	w, h := e.in.ScreenSize()
	target, err := motion.SamplePoint(e.rnd, motion.Bounds{Width: w, Height: h}, e.cfg.Margin)
	if err != nil {
		return err
	}

	duration := e.cfg.MoveDurationMin
	if spread := e.cfg.MoveDurationMax - e.cfg.MoveDurationMin; spread > 0 {
		duration += time.Duration(e.rnd.Int63n(int64(spread)))
	}

	if e.cfg.DryRun {
		e.log.Info("dry run: would move",
			zap.Int("move", index+1), zap.Int("of", total),
			zap.Int("x", target.X), zap.Int("y", target.Y),
			zap.Duration("over", duration))
	} else {
		x, y := e.in.Position()
		curve := motion.NewCurve(e.rnd, motion.Point{X: x, Y: y}, target, duration)
		for {
			pt, delay, ok := curve.Next()
			if !ok {
				break
			}
			if err := e.in.Move(pt.X, pt.Y); err != nil {
				return err
			}
			if !sleep(ctx, delay) {
				return nil
			}
		}
		e.log.Info("moved",
			zap.Int("move", index+1), zap.Int("of", total),
			zap.Int("x", target.X), zap.Int("y", target.Y),
			zap.Duration("over", duration))
	}

	if ctx.Err() == nil && e.cfg.PressMode == config.PressPerMove {
		e.press(fmt.Sprintf("after move %d", index+1))
	}
	return nil
}

// press emits the configured key press. Failures are logged as warnings
// and never propagated.
func (e *Engine) press(when string) {
	if e.cfg.DryRun {
		e.log.Info("dry run: would press key",
			zap.String("key", e.cfg.Key), zap.String("when", when))
		return
	}
	if err := e.in.KeyTap(e.cfg.Key); err != nil {
		e.log.Warn("key press failed", zap.String("key", e.cfg.Key), zap.Error(err))
		return
	}
	e.log.Info("pressed key", zap.String("key", e.cfg.Key), zap.String("when", when))
}

// sleep blocks for d or until ctx is cancelled, reporting whether the full
// duration elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
