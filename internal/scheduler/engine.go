// Package scheduler emits day-rollover events so the UI can refresh
// today-anchored windows while the program stays open across midnight.
package scheduler

import (
	"sync"
	"sync/atomic"
	"time"
)

type RolloverEvent struct {
	// DateKey names the new day in YYYY-MM-DD form.
	DateKey string
	At      time.Time
}

// Engine sleeps until the next local midnight, emits a RolloverEvent, and
// repeats. Sends are non-blocking: a slow consumer loses events rather than
// stalling the loop, and Dropped reports how many.
type Engine struct {
	mu      sync.Mutex
	out     chan RolloverEvent
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
	nowFn   func() time.Time
}

func NewEngine(bufferSize int) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		out:    make(chan RolloverEvent, bufferSize),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
		nowFn:  time.Now,
	}
}

func (e *Engine) C() <-chan RolloverEvent {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		now := e.nowFn()
		next := nextMidnight(now)
		timer = resetTimer(timer, next.Sub(now))

		select {
		case <-timer.C:
			at := e.nowFn()
			ev := RolloverEvent{DateKey: at.Format("2006-01-02"), At: at}
			select {
			case e.out <- ev:
			default:
				atomic.AddUint64(&e.dropped, 1)
			}
		case <-e.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

// nextMidnight returns the first instant of the day after now, in now's
// location. AddDate keeps this correct across daylight-saving changes.
func nextMidnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if d < 0 {
		d = 0
	}
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
