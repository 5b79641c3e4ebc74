package engine

import (
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

type tick struct {
	snapshot   model.Snapshot
	generation int
}

// recorder collects every notification; it is only read after the engine stops ticking
type recorder struct {
	mu    sync.Mutex
	ticks []tick
}

func (r *recorder) OnTick(s model.Snapshot, generation int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks = append(r.ticks, tick{snapshot: s, generation: generation})
}

func (r *recorder) all() []tick {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]tick(nil), r.ticks...)
}

func newEngine(t *testing.T, rows, cols int, opts ...Option) *Engine {
	t.Helper()
	e, err := New(rows, cols, opts...)
	require.NoError(t, err)
	t.Cleanup(e.Stop)
	return e
}

func placeBlinker(t *testing.T, e *Engine) {
	t.Helper()
	require.NoError(t, e.Place(model.Blinker, 5, 4))
}

func assertHorizontalBlinker(t *testing.T, s model.Snapshot) {
	t.Helper()
	assert.Equal(t, 3, s.Population())
	for col := 4; col <= 6; col++ {
		assert.True(t, s.Alive(5, col), "row 5 col %d", col)
	}
}

func assertVerticalBlinker(t *testing.T, s model.Snapshot) {
	t.Helper()
	assert.Equal(t, 3, s.Population())
	for row := 4; row <= 6; row++ {
		assert.True(t, s.Alive(row, 5), "row %d col 5", row)
	}
}

func TestNew(t *testing.T) {
	e := newEngine(t, 4, 6)
	rows, cols := e.Dimensions()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 6, cols)
	assert.Zero(t, e.Generation())
	assert.Equal(t, Stopped, e.State())
	assert.Equal(t, rules.Conway(), e.Rules())
	assert.Zero(t, e.Snapshot().Population())
}

func TestNewInvalidDimensions(t *testing.T) {
	_, err := New(0, 10)
	assert.ErrorIs(t, err, model.ErrInvalidDimension)
}

func TestStepBlinker(t *testing.T) {
	e := newEngine(t, 10, 10)
	rec := &recorder{}
	e.OnTick(rec)
	placeBlinker(t, e)

	e.Step()
	assertVerticalBlinker(t, e.Snapshot())
	e.Step()
	assertHorizontalBlinker(t, e.Snapshot())

	ticks := rec.all()
	require.Len(t, ticks, 2)
	assert.Equal(t, 1, ticks[0].generation)
	assert.Equal(t, 2, ticks[1].generation)
	assertVerticalBlinker(t, ticks[0].snapshot)
	assert.Equal(t, Stopped, e.State())
}

func TestObserversInRegistrationOrder(t *testing.T) {
	e := newEngine(t, 3, 3)
	var order []string
	e.OnTick(ObserverFunc(func(model.Snapshot, int) { order = append(order, "a") }))
	e.OnTick(nil)
	e.OnTick(ObserverFunc(func(model.Snapshot, int) { order = append(order, "b") }))

	e.Step()
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestDirectMutationDoesNotNotify(t *testing.T) {
	e := newEngine(t, 3, 3)
	rec := &recorder{}
	e.OnTick(rec)

	require.NoError(t, e.ToggleCell(1, 1))
	require.NoError(t, e.SetCell(0, 0, true))
	require.NoError(t, e.Randomize(0.5))
	assert.Empty(t, rec.all())

	e.Refresh()
	ticks := rec.all()
	require.Len(t, ticks, 1)
	assert.Zero(t, ticks[0].generation)
	assert.True(t, ticks[0].snapshot.Equal(e.Snapshot()))
}

func TestToggleCell(t *testing.T) {
	e := newEngine(t, 3, 3)
	require.NoError(t, e.ToggleCell(2, 1))
	assert.True(t, e.Snapshot().Alive(2, 1))
	require.NoError(t, e.ToggleCell(2, 1))
	assert.False(t, e.Snapshot().Alive(2, 1))

	assert.ErrorIs(t, e.ToggleCell(3, 0), model.ErrOutOfBounds)
	assert.ErrorIs(t, e.SetCell(0, -1, true), model.ErrOutOfBounds)
}

func TestRandomize(t *testing.T) {
	e := newEngine(t, 8, 5, WithRand(rand.New(rand.NewPCG(1, 1))))

	require.NoError(t, e.Randomize(1))
	assert.Equal(t, 40, e.Snapshot().Population())
	require.NoError(t, e.Randomize(0))
	assert.Zero(t, e.Snapshot().Population())
	assert.ErrorIs(t, e.Randomize(1.5), model.ErrInvalidDensity)
}

func TestRandomizeSeeded(t *testing.T) {
	a := newEngine(t, 10, 10, WithRand(rand.New(rand.NewPCG(5, 5))))
	b := newEngine(t, 10, 10, WithRand(rand.New(rand.NewPCG(5, 5))))
	require.NoError(t, a.Randomize(DefaultDensity))
	require.NoError(t, b.Randomize(DefaultDensity))
	assert.True(t, a.Snapshot().Equal(b.Snapshot()))
}

func TestSetRules(t *testing.T) {
	e := newEngine(t, 5, 5)
	require.NoError(t, e.SetRules("2, 3, 3", " 3,6 "))
	assert.Equal(t, rules.HighLife(), e.Rules())

	require.NoError(t, e.SetRuleString("B3/S23"))
	assert.Equal(t, rules.Conway(), e.Rules())
}

func TestSetRulesInvalidKeepsPreviousRules(t *testing.T) {
	e := newEngine(t, 10, 10)
	placeBlinker(t, e)

	err := e.SetRules("3,x,5", "3")
	require.Error(t, err)
	assert.ErrorIs(t, err, rules.ErrInvalidRule)
	var ruleErr *rules.InvalidRuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "x", ruleErr.Token)

	assert.ErrorIs(t, e.SetRuleString("B3/S2x"), rules.ErrInvalidRule)
	assert.Equal(t, rules.Conway(), e.Rules())

	e.Step()
	assertVerticalBlinker(t, e.Snapshot())
}

func TestWithRules(t *testing.T) {
	e := newEngine(t, 3, 3, WithRules(rules.RuleSet{}))
	require.NoError(t, e.Randomize(1))
	e.Step()
	assert.Zero(t, e.Snapshot().Population())
}

func TestRulesApplyFromNextGeneration(t *testing.T) {
	e := newEngine(t, 3, 3)
	require.NoError(t, e.SetCell(1, 1, true))
	e.Step()
	assert.Zero(t, e.Snapshot().Population())

	require.NoError(t, e.SetRuleString("B/S0"))
	require.NoError(t, e.SetCell(1, 1, true))
	e.Step()
	assert.True(t, e.Snapshot().Alive(1, 1))
}

func TestStartInvalidInterval(t *testing.T) {
	e := newEngine(t, 3, 3)
	assert.ErrorIs(t, e.Start(0), ErrInvalidInterval)
	assert.ErrorIs(t, e.Start(-time.Second), ErrInvalidInterval)
	assert.False(t, e.Running())
	assert.Zero(t, e.Generation())
}

func TestStartTicksImmediately(t *testing.T) {
	e := newEngine(t, 10, 10)
	placeBlinker(t, e)

	require.NoError(t, e.Start(time.Hour))
	assert.True(t, e.Running())
	assert.Equal(t, 1, e.Generation())
	assertVerticalBlinker(t, e.Snapshot())

	// idempotent, only the interval changes
	require.NoError(t, e.Start(2*time.Hour))
	assert.Equal(t, 1, e.Generation())
	assert.Equal(t, 2*time.Hour, e.Interval())
}

func TestStartThenStopNoFurtherTicks(t *testing.T) {
	e := newEngine(t, 10, 10)
	require.NoError(t, e.Randomize(DefaultDensity))

	require.NoError(t, e.Start(time.Millisecond))
	e.Stop()
	assert.False(t, e.Running())
	gen := e.Generation()
	assert.Equal(t, 1, gen)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, gen, e.Generation())

	e.Stop()
	assert.Equal(t, gen, e.Generation())
}

func TestRunningStopsCleanly(t *testing.T) {
	e := newEngine(t, 10, 10)
	require.NoError(t, e.Start(time.Millisecond))
	require.Eventually(t, func() bool { return e.Generation() >= 5 }, 2*time.Second, time.Millisecond)

	e.Stop()
	gen := e.Generation()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, gen, e.Generation())
}

func TestStepWhileRunningKeepsState(t *testing.T) {
	e := newEngine(t, 5, 5)
	require.NoError(t, e.Start(time.Hour))
	e.Step()
	assert.Equal(t, 2, e.Generation())
	assert.True(t, e.Running())
}

func TestScheduledMatchesManualStepping(t *testing.T) {
	seed := func() *rand.Rand { return rand.New(rand.NewPCG(11, 13)) }

	scheduled := newEngine(t, 20, 20, WithRand(seed()))
	manual := newEngine(t, 20, 20, WithRand(seed()))
	require.NoError(t, scheduled.Randomize(0.35))
	require.NoError(t, manual.Randomize(0.35))

	rec := &recorder{}
	scheduled.OnTick(rec)
	require.NoError(t, scheduled.Start(time.Millisecond))
	require.Eventually(t, func() bool { return scheduled.Generation() >= 10 }, 2*time.Second, time.Millisecond)
	scheduled.Stop()

	ticks := rec.all()
	require.Len(t, ticks, scheduled.Generation())
	for i, tk := range ticks {
		manual.Step()
		assert.Equal(t, i+1, tk.generation)
		assert.True(t, manual.Snapshot().Equal(tk.snapshot), "generation %d differs", tk.generation)
	}
	assert.Equal(t, scheduled.Generation(), manual.Generation())
	assert.True(t, manual.Snapshot().Equal(scheduled.Snapshot()))
}

func TestReset(t *testing.T) {
	e := newEngine(t, 10, 10)
	rec := &recorder{}
	e.OnTick(rec)
	require.NoError(t, e.Randomize(1))
	require.NoError(t, e.Start(time.Hour))
	e.Step()

	e.Reset()
	assert.False(t, e.Running())
	assert.Zero(t, e.Generation())
	assert.Zero(t, e.Snapshot().Population())

	ticks := rec.all()
	last := ticks[len(ticks)-1]
	assert.Zero(t, last.generation)
	assert.Zero(t, last.snapshot.Population())

	// the grid is usable again after a reset
	placeBlinker(t, e)
	e.Step()
	assert.Equal(t, 1, e.Generation())
	assertVerticalBlinker(t, e.Snapshot())
}

func TestEnginesAreIndependent(t *testing.T) {
	a := newEngine(t, 10, 10)
	b := newEngine(t, 10, 10)
	placeBlinker(t, a)
	require.NoError(t, b.SetRuleString("B/S"))

	a.Step()
	assert.Equal(t, 1, a.Generation())
	assert.Zero(t, b.Generation())
	assert.Zero(t, b.Snapshot().Population())
	assert.Equal(t, rules.Conway(), a.Rules())
}
