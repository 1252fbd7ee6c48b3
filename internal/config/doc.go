// Package config loads the service configuration from environment
// variables, command-line flags, an optional JSON file, and built-in
// defaults, merging the sources in that priority order.
package config
