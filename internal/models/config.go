package models

import "time"

// PreloadConfig contains runtime options for warming hero images.
type PreloadConfig struct {
	Proxies       []string
	Timeout       time.Duration
	UserAgents    []string
	Concurrency   int
	RatePerSecond float64
}
