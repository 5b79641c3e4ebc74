package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/utils"
)

const configFile = "config.json"

var errHalted = errors.New("simulation halted")

// runUntilDone blocks until the monitor reports a stop condition or ctx is cancelled,
// then stops the engine and returns the stop reason, if any
func runUntilDone(ctx context.Context, eng *engine.Engine, halt <-chan string) (string, error) {
	var (
		reason    string
		eg, egCtx = errgroup.WithContext(ctx)
	)

	eg.Go(func() error {
		select {
		case reason = <-halt:
			return errHalted
		case <-egCtx.Done():
			return nil
		}
	})
	eg.Go(func() error {
		<-egCtx.Done()
		eng.Stop()
		return nil
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, errHalted) {
		return "", err
	}
	return reason, nil
}

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	if err = config.Validate(); err != nil {
		fmt.Println("Invalid configuration:", err)
		os.Exit(1)
	}

	eng, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Println("Failed to initialize game:", err)
		os.Exit(1)
	}
	displayGameInfo(config, eng)

	// Handle Ctrl+C gracefully
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	halt := make(chan string, 1)
	eng.OnTick(renderer)
	eng.OnTick(newGameMonitor(config, stats, halt))

	if err = eng.Start(config.FrameRate); err != nil {
		fmt.Println("Failed to start:", err)
		os.Exit(1)
	}

	reason, err := runUntilDone(ctx, eng, halt)
	switch {
	case err != nil:
		fmt.Println("\nSimulation failed:", err)
	case reason != "":
		fmt.Printf("\n🏁 Stopped due to %s\n", reason)
	default:
		fmt.Println("\n🛑 Shutting down gracefully...")
	}
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		eng.Generation(), stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
