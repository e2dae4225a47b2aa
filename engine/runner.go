package engine

import (
	"context"
	"log"
	"time"
)

// ExitReason tells why Run returned
type ExitReason uint8

const (
	ExitQuit     ExitReason = iota // The step asked to stop
	ExitCanceled                   // The context was canceled
	ExitFatal                      // A step failed; the error is a *FatalLoopError
)

func (r ExitReason) String() string {
	switch r {
	case ExitQuit:
		return "quit"
	case ExitCanceled:
		return "canceled"
	case ExitFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// StepFunc runs one frame. It returns false to stop the loop after this frame.
type StepFunc func() (bool, error)

// WaitFunc blocks for d or until ctx is done
type WaitFunc func(ctx context.Context, d time.Duration) error

// Runner drives a StepFunc at a fixed rate with drift correction.
// Cancellation and quit are only observed between frames.
type Runner struct {
	interval time.Duration
	clock    TimeProvider
	wait     WaitFunc

	frames uint64
}

// NewRunner creates a runner ticking every interval on clock
func NewRunner(interval time.Duration, clock TimeProvider) *Runner {
	return &Runner{
		interval: interval,
		clock:    clock,
		wait:     timerWait,
	}
}

// SetWait replaces the sleep primitive; tests pair it with MockTimeProvider
func (r *Runner) SetWait(w WaitFunc) {
	r.wait = w
}

// Frames returns the number of completed frames
func (r *Runner) Frames() uint64 {
	return r.frames
}

// Run steps until the step stops, ctx is canceled, or a step fails
func (r *Runner) Run(ctx context.Context, step StepFunc) (ExitReason, error) {
	next := r.clock.Now().Add(r.interval)

	for {
		if ctx.Err() != nil {
			return ExitCanceled, nil
		}

		var keepRunning bool
		err := SafeStep(r.frames, func() error {
			var stepErr error
			keepRunning, stepErr = step()
			return stepErr
		})
		if err != nil {
			log.Printf("engine: %v", err)
			return ExitFatal, err
		}
		r.frames++

		if !keepRunning {
			return ExitQuit, nil
		}

		now := r.clock.Now()
		// Skip missed frames instead of bursting to catch up
		if now.Sub(next) > r.interval*2 {
			next = now.Add(r.interval)
		}

		if d := next.Sub(now); d > 0 {
			if err := r.wait(ctx, d); err != nil {
				return ExitCanceled, nil
			}
		}
		next = next.Add(r.interval)
	}
}

func timerWait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
