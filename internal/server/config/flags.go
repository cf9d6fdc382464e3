package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/r2vault/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-i string   R2 account id
//	-k string   R2 access key id
//	-p string   R2 secret access key
//	-e string   explicit S3-compatible endpoint
//	-g string   bucket region
//
// os.Args is first filtered with flagx.FilterArgs so flags owned by other
// config stages (like -c/-config) do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-i", "-k", "-p", "-e", "-g"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidityDuration := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")

	fs.StringVar(&config.R2AccountID, "i", config.R2AccountID, "R2 account id")
	fs.StringVar(&config.R2AccessKeyID, "k", config.R2AccessKeyID, "R2 access key id")
	fs.StringVar(&config.R2SecretAccessKey, "p", config.R2SecretAccessKey, "R2 secret access key")
	fs.StringVar(&config.R2Endpoint, "e", config.R2Endpoint, "S3-compatible endpoint")
	fs.StringVar(&config.R2Region, "g", config.R2Region, "bucket region")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Minute
}
