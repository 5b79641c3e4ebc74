package engine

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidInterval is returned when the tick interval is not positive
var ErrInvalidInterval = errors.New("tick interval must be positive")

// State is the run state of a Scheduler
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

/*
Scheduler runs tick at a fixed interval while Running.

All of its state is guarded by mu, which it shares with its owner; start and stop
must be called with mu held, and the timer goroutine takes mu before every tick.
Each start opens a new epoch, so a timer left over from an earlier run can never tick.
*/
type Scheduler struct {
	mu   sync.Locker
	tick func()

	state    State
	interval time.Duration
	epoch    uint64
	cancel   chan struct{}
}

func newScheduler(mu sync.Locker, tick func()) *Scheduler {
	return &Scheduler{mu: mu, tick: tick}
}

// start ticks once right away and then every interval until stop.
// While already running it only updates the interval, which applies from the next re-arm.
func (s *Scheduler) start(interval time.Duration) error {
	if interval <= 0 {
		return errors.Wrapf(ErrInvalidInterval, "[Start] interval=%v", interval)
	}
	s.interval = interval
	if s.state == Running {
		return nil
	}

	s.state = Running
	s.epoch++
	s.cancel = make(chan struct{})

	s.tick()
	go s.run(s.epoch, s.cancel, interval)
	return nil
}

// stop cancels the next tick; once it returns no tick of the current run can fire
func (s *Scheduler) stop() {
	if s.state == Stopped {
		return
	}
	s.state = Stopped
	close(s.cancel)
	s.cancel = nil
}

func (s *Scheduler) run(epoch uint64, cancel <-chan struct{}, interval time.Duration) {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-cancel:
			return
		case <-timer.C:
		}

		s.mu.Lock()
		// stop may have won the lock while the timer fired
		if s.state != Running || s.epoch != epoch {
			s.mu.Unlock()
			return
		}
		s.tick()
		next := s.interval
		s.mu.Unlock()

		timer.Reset(next)
	}
}
