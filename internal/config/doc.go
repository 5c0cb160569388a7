// SPDX-License-Identifier: Apache-2.0

// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with mergo in priority order (earlier sources win for
// non-zero fields): environment, flags, JSON file. The merged configuration
// is defaulted and validated before use; startup aborts on validation
// failure.
package config
