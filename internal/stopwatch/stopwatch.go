package stopwatch

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

const tickInterval = time.Second

// Stopwatch counts whole seconds of one game. It runs at most once: Start after Stop is a no-op.
type Stopwatch struct {
	clock  clock.Clock
	onTick func(elapsed int)

	mu      sync.Mutex
	elapsed int
	started bool
	stopped bool
	done    chan struct{}
}

// New - creates a stopped watch. onTick, if not nil, receives the new value after every tick
// from the watch's own goroutine.
func New(clk clock.Clock, onTick func(elapsed int)) *Stopwatch {
	if clk == nil {
		clk = clock.New()
	}

	return &Stopwatch{
		clock:  clk,
		onTick: onTick,
		done:   make(chan struct{}),
	}
}

// Start - begins ticking once per second.
func (that *Stopwatch) Start() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.started || that.stopped {
		return
	}

	that.started = true
	ticker := that.clock.Ticker(tickInterval)

	go that.run(ticker)
}

func (that *Stopwatch) run(ticker *clock.Ticker) {
	defer ticker.Stop()

	for {
		select {
		case <-that.done:
			return
		case <-ticker.C:
			elapsed, ok := that.tick()
			if !ok {
				return
			}

			if that.onTick != nil {
				that.onTick(elapsed)
			}
		}
	}
}

func (that *Stopwatch) tick() (int, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.stopped {
		return that.elapsed, false
	}

	that.elapsed++

	return that.elapsed, true
}

// Stop - cancels the ticking and returns the final value. Further calls return the same value.
// Once Stop has returned, Elapsed never changes.
func (that *Stopwatch) Stop() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.stopped {
		that.stopped = true
		close(that.done)
	}

	return that.elapsed
}

func (that *Stopwatch) Elapsed() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.elapsed
}

func (that *Stopwatch) IsRunning() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.started && !that.stopped
}
