// Package config loads runtime configuration for the CampusLink client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   base URL of the backend REST endpoint
//	-t int      request timeout (seconds)
//	-d string   path to the local credential database
//	-k string   path to the credential encryption key file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_url": "https://events.lau.edu",
//	  "request_timeout": "10s",
//	  "database_path": "campuslink.db",
//	  "key_path": "campuslink.key"
//	}
package config
