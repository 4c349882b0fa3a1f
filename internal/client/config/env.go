package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with MYMONEY_* environment variables. A .env file in
// the working directory is loaded first when present; errors are ignored
// since the file is optional.
//
// Recognized variables:
//
//	MYMONEY_STORE_ADDR       base URL of the remote data store
//	MYMONEY_LOCAL_DB_PATH    path of the local SQLite file
//	MYMONEY_REQUEST_TIMEOUT  per-request deadline, Go duration syntax
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("MYMONEY_STORE_ADDR"); v != "" {
		cfg.StoreAddr = v
	}
	if v := os.Getenv("MYMONEY_LOCAL_DB_PATH"); v != "" {
		cfg.LocalDBPath = v
	}
	if v := os.Getenv("MYMONEY_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}
