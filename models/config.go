// Package models defines data structures for configuration.
package models

import "time"

// FetchConfig holds runtime configuration for fetch operations.
// All values come from CLI flags, not external config files.
type FetchConfig struct {
	Start       int
	End         int
	Delay       time.Duration
	URLTemplate string
	Selector    string
	OutputDir   string
}
