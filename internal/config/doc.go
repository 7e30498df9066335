// Package config loads runtime configuration for the onboarding CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config (see parseJson).
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags).
//
// Later sources override earlier ones.
//
// Supported flags
//
//	-d string   path of the SQLite profile database
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text or json
//
// Environment
//
//	ONBOARDING_DB, ONBOARDING_LOG_LEVEL, ONBOARDING_LOG_FORMAT
//
// # JSON schema
//
//	{
//	  "database_path": "onboarding.db",
//	  "log_level": "warn",
//	  "log_format": "text"
//	}
package config
