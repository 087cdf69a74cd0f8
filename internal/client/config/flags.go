package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/railticket/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server
//	-d string   path of the local SQLite database
//	-k string   secret for the local encrypted records
//	-t int      backend request timeout (in seconds)
//	-i int      online check interval (in seconds)
//	-l string   log level
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.Pick, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.Pick(os.Args[1:], "a", "d", "k", "t", "i", "l")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database file")
	fs.StringVar(&cfg.Secret, "k", cfg.Secret, "secret for local encrypted records")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "backend request timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
