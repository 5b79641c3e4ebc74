// Package engine drives a Life-like automaton: it owns the grid, the active rule set,
// the generation counter and the play/pause scheduler, and notifies observers.
package engine

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

const (
	// DefaultDensity is the probability a cell starts alive after Randomize
	DefaultDensity = 0.5
	// DefaultInterval is the tick period used by hosts that do not choose one
	DefaultInterval = 500 * time.Millisecond
)

// Engine is one independent simulation. All methods are safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	grid       *model.Grid
	rules      rules.RuleSet
	generation int
	observers  []Observer
	rng        *rand.Rand
	scheduler  *Scheduler
}

// Option configures an Engine at construction
type Option func(*Engine)

// WithRules sets the initial rule set; the default is Conway's B3/S23
func WithRules(rs rules.RuleSet) Option {
	return func(e *Engine) {
		e.rules = rs
	}
}

// WithRand sets the random source used by Randomize
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// New creates a stopped engine with an all-dead rows x cols grid at generation 0
func New(rows, cols int, opts ...Option) (*Engine, error) {
	grid, err := model.NewGrid(rows, cols)
	if err != nil {
		return nil, errors.Wrap(err, "[New] failed to create grid")
	}

	e := &Engine{
		grid:  grid,
		rules: rules.Conway(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.scheduler = newScheduler(&e.mu, e.tickLocked)
	return e, nil
}

// tickLocked computes one generation, counts it and notifies observers
func (e *Engine) tickLocked() {
	model.NextGeneration(e.grid, e.rules)
	e.generation++
	e.notifyLocked()
}

func (e *Engine) notifyLocked() {
	if len(e.observers) == 0 {
		return
	}
	snapshot := e.grid.Snapshot()
	for _, o := range e.observers {
		o.OnTick(snapshot, e.generation)
	}
}

// OnTick registers an observer; observers are called in registration order
func (e *Engine) OnTick(o Observer) {
	if o == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, o)
}

// Refresh notifies observers with the current grid without advancing it
func (e *Engine) Refresh() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notifyLocked()
}

// ToggleCell flips one cell; the change shows up from the next generation computed
func (e *Engine) ToggleCell(row, col int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Toggle(row, col)
}

// SetCell sets one cell alive or dead
func (e *Engine) SetCell(row, col int, alive bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Set(row, col, alive)
}

// Place stamps a pattern with its top-left corner at (row, col)
func (e *Engine) Place(p model.Pattern, row, col int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Place(p, row, col)
}

// Randomize sets every cell alive with probability density
func (e *Engine) Randomize(density float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Randomize(density, e.rng)
}

// Reset stops the scheduler, kills every cell, zeroes the generation and notifies observers
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scheduler.stop()
	e.grid.Clear()
	e.generation = 0
	e.notifyLocked()
}

// SetRules replaces the rule set from comma-separated survive and birth counts.
// On error the active rule set is unchanged.
func (e *Engine) SetRules(surviveText, birthText string) error {
	rs, err := rules.Parse(surviveText, birthText)
	if err != nil {
		return errors.Wrap(err, "[SetRules] rule set not changed")
	}
	e.setRuleSet(rs)
	return nil
}

// SetRuleString replaces the rule set from B/S notation, e.g. "B36/S23"
func (e *Engine) SetRuleString(notation string) error {
	rs, err := rules.ParseNotation(notation)
	if err != nil {
		return errors.Wrap(err, "[SetRuleString] rule set not changed")
	}
	e.setRuleSet(rs)
	return nil
}

func (e *Engine) setRuleSet(rs rules.RuleSet) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = rs
}

// Rules returns the active rule set
func (e *Engine) Rules() rules.RuleSet {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rules
}

// Start ticks once immediately, then every interval until Stop or Reset.
// Calling Start while running only changes the interval, from the next tick on.
func (e *Engine) Start(interval time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scheduler.start(interval)
}

// Stop pauses the simulation. No tick fires after Stop returns; a tick already
// in progress completes first.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scheduler.stop()
}

// Step advances exactly one generation whether or not the scheduler is running
func (e *Engine) Step() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickLocked()
}

// Running reports whether the scheduler is ticking
func (e *Engine) Running() bool {
	return e.State() == Running
}

// State returns the scheduler state
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scheduler.state
}

// Interval returns the most recently requested tick interval, zero if never started
func (e *Engine) Interval() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scheduler.interval
}

// Generation returns the number of generations computed since creation or the last Reset
func (e *Engine) Generation() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}

// Snapshot returns a copy of the current grid
func (e *Engine) Snapshot() model.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Snapshot()
}

// Dimensions returns the fixed grid size
func (e *Engine) Dimensions() (rows, cols int) {
	return e.grid.GetRows(), e.grid.GetCols()
}
