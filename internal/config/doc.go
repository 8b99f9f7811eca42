// Package config loads and validates application configuration from the
// environment, with optional .env support for local development.
package config
