// Package config provides viper-based configuration for the tscsym commands.
package config

// Logging defaults.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Output defaults.
const (
	DefaultColor = "auto"
)

// Generator defaults.
const (
	DefaultManifest = "symbols.yaml"
)
