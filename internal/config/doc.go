// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings needed by different components while keeping
// configuration details separate from business logic.
//
// Precedence, highest first: TASKR_* environment variables (a .env file in
// the working directory is loaded into the environment first), an optional
// config.yaml, then built-in defaults.
package config
