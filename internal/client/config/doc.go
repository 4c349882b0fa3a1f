// Package config loads runtime configuration for the mymoney CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, optionally loaded from a .env file (see
//     parseEnv): MYMONEY_STORE_ADDR, MYMONEY_LOCAL_DB_PATH,
//     MYMONEY_REQUEST_TIMEOUT.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the remote data store
//	-d string   path of the local SQLite file
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "store_addr": "http://127.0.0.1:3000",
//	  "local_db_path": "mymoney.db",
//	  "request_timeout": "10s"
//	}
package config
