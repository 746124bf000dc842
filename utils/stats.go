package utils

import (
	"time"

	"github.com/apex/log"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	Population           int
	Density              float64 // percentage of living cells
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a generation that took duration to compute and contains population living cells out of area
func (s *Stats) Update(generation, population, area int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	if area > 0 {
		s.Density = float64(population) / float64(area) * 100
	}
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns how long the stats have been collected
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

// Fields exposes the stats as structured log fields
func (s *Stats) Fields() log.Fields {
	return log.Fields{
		"generation":     s.TotalGenerations,
		"population":     s.Population,
		"density":        s.Density,
		"avg_population": s.AveragePopulation,
		"gen_per_sec":    s.GenerationsPerSecond,
	}
}
