// Package config loads runtime configuration for the railticket CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed with RAILTICKET_ (see parseEnv). A .env
//     file in the working directory is loaded first, without overriding
//     variables already present.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-d string   local SQLite database path
//	-k string   secret for the local encrypted records
//	-t int      backend request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-l string   log level
//
// # Environment
//
//	RAILTICKET_SERVER_ENDPOINT_ADDR, RAILTICKET_DATABASE_PATH,
//	RAILTICKET_SECRET, RAILTICKET_REQUEST_TIMEOUT ("10s"),
//	RAILTICKET_ONLINE_CHECK_INTERVAL ("3s"), RAILTICKET_LOG_LEVEL
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": "railticket.db",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s"
//	}
//
// The secret is required; (*Config).Validate returns common.ErrMissingSecret
// without it.
package config
