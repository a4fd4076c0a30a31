// SPDX-License-Identifier: MIT

// Package config loads the gematria CLI configuration.
//
// Sources, lowest precedence first: built-in defaults, an optional YAML file,
// environment variables prefixed GEMATRIA_ (nested keys joined by "_", e.g.
// GEMATRIA_LOG_LEVEL), and finally explicit overrides from command-line flags.
// The merged result is validated once; an invalid value fails at startup.
package config
