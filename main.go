package main

import (
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/sheikhrachel/lifeboard/model"
	"github.com/sheikhrachel/lifeboard/utils"
)

func main() {
	config, err := utils.ParseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	var sim *model.Simulation
	switch config.Mode {
	case utils.ModeCanvas:
		sim, err = runCanvas(config)
	default:
		sim, err = runTerminal(config)
	}
	if err != nil {
		log.WithError(err).Error("game of life stopped")
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	displayFinalStats(sim.Stats())
}
