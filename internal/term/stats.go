package term

import (
	"fmt"
	"time"
)

// Stats tracks run statistics for the terminal front end.
type Stats struct {
	Generations          int
	GenerationsPerSecond float64
	AveragePopulation    float64
	StartTime            time.Time
}

// NewStats starts a statistics window at the current time.
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation with its population and frame duration.
func (s *Stats) Update(generation, population int, frame time.Duration) {
	s.Generations = generation
	if frame > 0 {
		s.GenerationsPerSecond = 1.0 / frame.Seconds()
	}

	// Simple moving average for population.
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = s.AveragePopulation*0.9 + float64(population)*0.1
	}
}

// Status returns the per-frame status line.
func (s *Stats) Status(population int) string {
	return fmt.Sprintf("gen %d | pop %d | %.1f gen/sec", s.Generations, population, s.GenerationsPerSecond)
}

// Summary returns the end-of-run summary line.
func (s *Stats) Summary() string {
	return fmt.Sprintf("%d generations in %.1fs | avg population %.1f",
		s.Generations, time.Since(s.StartTime).Seconds(), s.AveragePopulation)
}
