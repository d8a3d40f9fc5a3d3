// Package loop provides the main game loop and state management.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/tomz197/snake/internal/input"
)

// InputSource yields the input events that arrived since the last poll.
// Poll must not block.
type InputSource interface {
	Poll() []input.Event
}

// Renderer draws one frame.
type Renderer interface {
	Render(f Frame) error
}

// Clock abstracts wall time so the loop can be driven deterministically.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// Run drives c with the standard Input → Update → Draw cycle until the player
// quits or ctx is done; both count as a normal stop and return nil.
// A nil clock uses wall time.
//
// The frame rate is capped at Settings.MaxFPS. Session ticks happen at most
// once per frame and no sooner than Settings.TickDelay after the previous one.
func Run(ctx context.Context, c *Controller, src InputSource, r Renderer, clock Clock) error {
	if clock == nil {
		clock = realClock{}
	}
	frameTime := c.Settings().FrameTime()
	tickDelay := c.Settings().TickDelay

	lastTick := clock.Now()

	for c.Running() {
		if ctx.Err() != nil {
			return nil
		}
		frameStart := clock.Now()

		// ===== INPUT PHASE =====
		for _, ev := range src.Poll() {
			c.Handle(ev)
			if !c.Running() {
				return nil
			}
		}

		// ===== UPDATE PHASE =====
		if c.Mode() == ModePlaying {
			if frameStart.Sub(lastTick) >= tickDelay {
				c.Tick()
				lastTick = frameStart
			}
		} else {
			// The first tick of a new session waits a full delay
			lastTick = frameStart
		}

		// ===== DRAW PHASE =====
		if err := r.Render(c.Frame()); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := clock.Now().Sub(frameStart)
		if elapsed < frameTime {
			clock.Sleep(frameTime - elapsed)
		}
	}

	return nil
}
