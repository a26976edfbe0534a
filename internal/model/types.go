// Package model defines shared data structures.
package model

import "time"

// Config defines monitor settings after config file and flag merging.
type Config struct {
	ReportEvery time.Duration
	MouseMotion bool
	LogFile     string
	LogPretty   bool
}

// DemoConfig defines the synthetic streams fed through the tracker by the
// demo command.
type DemoConfig struct {
	Duration   time.Duration
	Seed       int64
	KeyboardHz float64
	MouseHz    float64
	Jitter     float64
}
