package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*engine.Engine,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	rs, err := config.RuleSet()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] invalid rule")
	}

	seed := config.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	eng, err := engine.New(config.Rows, config.Cols,
		engine.WithRules(rs),
		engine.WithRand(rand.New(rand.NewPCG(seed, seed))),
	)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to create engine")
	}

	if err = seedGrid(eng, config); err != nil {
		return nil, nil, nil, err
	}

	renderer := &model.TerminalRenderer{ClearScreen: config.ClearScreen}
	stats := utils.NewStats()

	return eng, renderer, stats, nil
}

// seedGrid fills the grid with random life or centers the configured pattern
func seedGrid(eng *engine.Engine, config utils.Config) error {
	if config.Pattern == "" || config.Pattern == utils.PatternRandom {
		return errors.Wrap(eng.Randomize(config.RandomDensity), "[seedGrid] randomize")
	}

	pattern, ok := model.LookupPattern(config.Pattern)
	if !ok {
		return errors.Errorf("[seedGrid] unknown pattern %q", config.Pattern)
	}
	rows, cols := eng.Dimensions()
	row := (rows - pattern.Height()) / 2
	col := (cols - pattern.Width()) / 2
	return errors.Wrapf(eng.Place(pattern, row, col), "[seedGrid] place %s", pattern.Name)
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, eng *engine.Engine) {
	snapshot := eng.Snapshot()
	fmt.Printf("Rule: %s | Interval: %v | Seed pattern: %s\n",
		eng.Rules(), config.FrameRate, config.Pattern)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		snapshot.GetRows(), snapshot.GetCols(), snapshot.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Println()
}

// checkStopConditions determines if the game should stop
func checkStopConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StopOnStagnation && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}

// gameMonitor observes every tick: it keeps stats, tracks stagnation and
// reports the first stop condition on halt
type gameMonitor struct {
	config        utils.Config
	stats         *utils.Stats
	history       *model.History
	stagnantCount int
	quiet         bool
	halt          chan<- string
}

func newGameMonitor(config utils.Config, stats *utils.Stats, halt chan<- string) *gameMonitor {
	return &gameMonitor{
		config:  config,
		stats:   stats,
		history: model.NewHistory(config.StagnationThreshold),
		halt:    halt,
	}
}

func (m *gameMonitor) OnTick(s model.Snapshot, generation int) {
	livingCells := s.Population()
	density := float64(livingCells) / float64(s.GetRows()*s.GetCols()) * 100

	m.stats.Observe(generation, livingCells, time.Now())

	if m.history.Record(s) {
		m.stagnantCount++
	} else {
		m.stagnantCount = 0
	}

	status := "Active"
	if m.stagnantCount > 0 {
		status = fmt.Sprintf("Stagnant (%d)", m.stagnantCount)
	}
	if livingCells == 0 {
		status = "Extinct"
	}
	if !m.quiet {
		displayGameStatus(generation, livingCells, density, status, m.stats)
	}

	if stop, reason := checkStopConditions(livingCells, m.stagnantCount, generation, m.config); stop {
		// only the first reason matters; the engine stops shortly after
		select {
		case m.halt <- reason:
		default:
		}
	}
}
