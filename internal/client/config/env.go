package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/railticket/internal/common"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with RAILTICKET_* environment variables. A .env
// file in the working directory is read first; variables already set in the
// process environment win over it. Unset variables leave fields untouched.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: common.EnvPrefix}); err != nil {
		panic(err)
	}
}
