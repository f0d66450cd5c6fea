// Package config provides configuration loading and validation for
// applications embedding querykit's instrumentation.
//
// It uses Viper to load configuration from a config.yml file and environment
// variables, with an optional .env file loaded through godotenv. Environment
// variables override file values using the QUERYKIT_ prefix with
// underscore-separated paths (e.g., QUERYKIT_LOGGING_LEVEL).
//
// # Usage
//
//	cfg, err := config.Load("reporting")
//	if err != nil { ... }
//	shutdown, err := config.Setup(ctx, cfg)
//	defer shutdown(ctx)
package config
