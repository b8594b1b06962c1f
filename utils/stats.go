package utils

import (
	"time"

	"go.uber.org/zap"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	StartTime            time.Time
	lastUpdate           time.Time
}

func NewStats() *Stats {
	now := time.Now()
	return &Stats{StartTime: now, lastUpdate: now}
}

// Update records one observed generation
func (s *Stats) Update(generation int, population int) {
	now := time.Now()
	s.UpdateWithDuration(generation, population, now.Sub(s.lastUpdate))
	s.lastUpdate = now
}

// UpdateWithDuration records one generation that took duration to produce
func (s *Stats) UpdateWithDuration(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	s.PeakPopulation = max(s.PeakPopulation, population)

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Fields returns the stats as log fields
func (s *Stats) Fields() []zap.Field {
	return []zap.Field{
		zap.Int("generations", s.TotalGenerations),
		zap.Int("peak_population", s.PeakPopulation),
		zap.Float64("avg_population", s.AveragePopulation),
		zap.Float64("gen_per_sec", s.GenerationsPerSecond),
		zap.Duration("runtime", time.Since(s.StartTime)),
	}
}
