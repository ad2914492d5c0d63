package timer

import (
	"context"
	"time"

	"github.com/oshokin/screen-timer/internal/device"
)

// Buttons reports presses since the previous poll.
type Buttons interface {
	Poll() (a, b bool)
}

// quitter is implemented by inputs that can ask the loop to stop.
type quitter interface {
	Done() <-chan struct{}
}

// Loop polls buttons and advances the timer until ctx is canceled or the
// buttons ask to quit. Every pass handles pending presses before the tick.
func Loop(ctx context.Context, s *State, buttons Buttons, clock device.Clock, poll time.Duration) {
	var done <-chan struct{}
	if q, ok := buttons.(quitter); ok {
		done = q.Done()
	}

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		Pass(ctx, s, buttons, clock.Now())

		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case <-ticker.C:
		}
	}
}

// Pass runs one iteration of the poll loop at now.
func Pass(ctx context.Context, s *State, buttons Buttons, now time.Time) {
	a, b := buttons.Poll()

	if a {
		Process(ctx, s, Event{Kind: EventButtonA, At: now})
	}

	if b {
		Process(ctx, s, Event{Kind: EventButtonB, At: now})
	}

	Process(ctx, s, Event{Kind: EventTick, At: now})
}
