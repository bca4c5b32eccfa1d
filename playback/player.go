package playback

import (
	"context"
	"sync"
	"time"

	"github.com/abbykyun/daa-visual/trace"
)

// Player is the replay cursor over one run. It is safe for concurrent use;
// at most one Play loop runs at a time.
type Player struct {
	mu       sync.Mutex
	run      *trace.Run
	interval time.Duration
	cursor   int  // index of the last applied step, -1 before the first
	reset    bool // Reset was called; run is gone
	cancel   context.CancelFunc
	gen      uint64 // bumped by every Play start
}

// NewPlayer returns a Player positioned before the first step of run.
func NewPlayer(run *trace.Run, opts ...Option) (*Player, error) {
	if run == nil || len(run.Trace) == 0 {
		return nil, ErrNoRun
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Player{run: run, interval: cfg.Interval, cursor: -1}, nil
}

// Interval returns the Play tick interval.
func (p *Player) Interval() time.Duration { return p.interval }

// Current returns the view at the cursor without moving it.
func (p *Player) Current() View {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.viewLocked()
}

// Step advances the cursor by one and returns the new view. At the last step
// the cursor stays put, the last view is returned again and advanced is false.
// After Reset it returns ErrNoRun.
func (p *Player) Step() (v View, advanced bool, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.run == nil {
		return p.viewLocked(), false, ErrNoRun
	}
	v, advanced = p.stepLocked()

	return v, advanced, nil
}

// Seek moves the cursor to index i; -1 rewinds to the ready state.
func (p *Player) Seek(i int) (View, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.run == nil {
		return p.viewLocked(), ErrNoRun
	}
	if i < -1 || i >= len(p.run.Trace) {
		return p.viewLocked(), ErrIndexOutOfRange
	}
	p.cursor = i

	return p.viewLocked(), nil
}

// Rewind stops playback and moves the cursor before the first step, keeping
// the run.
func (p *Player) Rewind() View {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	p.cursor = -1

	return p.viewLocked()
}

// Reset stops playback and drops the run. The player is inert afterwards;
// build a new one for the next run.
func (p *Player) Reset() View {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	p.run = nil
	p.cursor = -1
	p.reset = true

	return p.viewLocked()
}

// Pause stops a running Play loop. It is a no-op when not playing.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
}

// Playing reports whether a Play loop is running.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.cancel != nil
}

// Play advances one step per interval, calling emit with each view, until
// the last step has been emitted, Pause/Reset is called, or ctx is done.
//
// Pause, Reset and reaching the end return nil; cancellation of ctx returns
// ctx.Err(). emit is called without the player's lock held.
func (p *Player) Play(ctx context.Context, emit func(View)) error {
	p.mu.Lock()
	if p.run == nil {
		p.mu.Unlock()
		return ErrNoRun
	}
	if p.cancel != nil {
		p.mu.Unlock()
		return ErrAlreadyPlaying
	}
	loopCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		// After a Pause a newer loop may own p.cancel.
		if p.gen == gen {
			p.stopLocked()
		}
		p.mu.Unlock()
		cancel()
	}()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-loopCtx.Done():
			return ctx.Err()
		case <-ticker.C:
			v, ok, last := p.tick(loopCtx)
			if !ok {
				return ctx.Err()
			}
			emit(v)
			if last {
				return nil
			}
		}
	}
}

// tick performs one timed step. ok is false when the loop was stopped in the
// meantime; last reports that the final step is now applied.
func (p *Player) tick(ctx context.Context) (v View, ok, last bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ctx.Err() != nil || p.run == nil {
		return View{}, false, false
	}
	v, _ = p.stepLocked()

	return v, true, p.cursor >= len(p.run.Trace)-1
}

func (p *Player) stepLocked() (View, bool) {
	if p.run == nil {
		return p.viewLocked(), false
	}
	last := len(p.run.Trace) - 1
	if p.cursor >= last {
		p.cursor = last
		return p.viewLocked(), false
	}
	p.cursor++

	return p.viewLocked(), true
}

func (p *Player) stopLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *Player) viewLocked() View {
	if p.run == nil {
		status := StatusNoRun
		if p.reset {
			status = StatusReset
		}
		return View{Index: -1, Status: status}
	}

	return Render(p.run, p.cursor)
}
