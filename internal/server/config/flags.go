package config

import (
	"flag"
	"os"
	"time"

	"digidiary/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-m string   store backend: "rest" or "postgres"
//	-d string   PostgreSQL DSN (postgres backend)
//	-r string   REST data service base URL (rest backend)
//	-k string   REST data service API key
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//
// Args are first filtered through flagx.FilterArgs so flags owned by other
// packages (like -c/-config) do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-d", "-r", "-k", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.StoreBackend, "m", config.StoreBackend, "store backend (rest|postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RestBaseURL, "r", config.RestBaseURL, "REST data service base URL")
	fs.StringVar(&config.RestAPIKey, "k", config.RestAPIKey, "REST data service API key")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidity) * time.Minute
}
