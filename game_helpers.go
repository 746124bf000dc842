package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifeboard/canvas"
	"github.com/sheikhrachel/lifeboard/model"
	"github.com/sheikhrachel/lifeboard/utils"
)

// newRandom returns the generator threaded through board construction
func newRandom(config utils.Config) *rand.Rand {
	seed := config.RandomSeed()
	log.WithField("seed", seed).Debug("random source")
	return rand.New(rand.NewSource(seed))
}

// runTerminal renders generations on the terminal until interrupted
func runTerminal(config utils.Config) (*model.Simulation, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[runTerminal] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[runTerminal] failed to initialize screen")
	}
	defer screen.Fini()

	// the screen owns the terminal, so logs only go to a file when one is configured
	closer, err := utils.SetupLogging(config, nil)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	dims := model.Dimensions{Width: config.Width, Height: config.Height}
	if config.FitsTerminal() {
		dims = model.TerminalDimensions(screen)
	}

	sim, err := model.NewSimulation(config, dims, newRandom(config))
	if err != nil {
		return nil, err
	}

	var (
		renderer = model.NewTerminalRenderer(screen)
		quit     = make(chan struct{})
		sigChan  = make(chan os.Signal, 1)
	)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go pollQuitKeys(screen, quit)

	for {
		sim.View(func(current *model.Board, _ *model.History) {
			renderer.Display(current, sim.Status())
		})
		if sim.Done() {
			log.WithFields(sim.Stats().Fields()).Info("reached maximum generations")
			return sim, nil
		}

		select {
		case <-quit:
			return sim, nil
		case sig := <-sigChan:
			log.WithField("signal", sig.String()).Info("shutting down")
			return sim, nil
		case <-time.After(config.FrameRate):
		}

		sim.Step()
	}
}

// pollQuitKeys closes quit when Esc, q or Ctrl+C is pressed
func pollQuitKeys(screen tcell.Screen, quit chan<- struct{}) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				close(quit)
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// runCanvas opens the fade-trail window and blocks until it is closed
func runCanvas(config utils.Config) (*model.Simulation, error) {
	closer, err := utils.SetupLogging(config, os.Stderr)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	dims := model.Dimensions{Width: config.Width, Height: config.Height}
	sim, err := model.NewSimulation(config, dims, newRandom(config))
	if err != nil {
		return nil, err
	}

	if err = canvas.Run(sim, config.CellSize); err != nil {
		return nil, errors.Wrap(err, "[runCanvas] window closed with error")
	}
	return sim, nil
}

// displayFinalStats prints a summary once the screen has been released
func displayFinalStats(stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
