// Package config manages settings for a run. Values come, in order of
// precedence, from command-line flags, DISTMAN_* environment variables,
// ~/.distman/config.yaml and built-in defaults.
package config
